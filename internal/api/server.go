package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/prigest/internal/config"
	"github.com/dgallion1/prigest/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for prigest.
type Server struct {
	router   chi.Router
	sessions *session.Store
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions: sessions,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/files", s.handleUpload)

		r.Route("/api/files/{fileID}", func(r chi.Router) {
			r.Get("/", s.handleFileInfo)
			r.Delete("/", s.handleDeleteFile)
			r.Get("/report", s.handleReport)
			r.Get("/records", s.handleRecords)
			r.Get("/tables/{dataTag}/{headerTag}", s.handleTagTable)

			r.Route("/{family}", func(r chi.Router) {
				r.Get("/table", s.handleTable)
				r.Get("/entities", s.handleEntities)
				r.Get("/histogram/{attr}", s.handleHistogram)
				r.Get("/categories/{attr}", s.handleCategories)
				r.Get("/summary", s.handleSummary)
				r.Get("/export.{format}", s.handleExport)
				r.Get("/locations", s.handleLocations)
			})
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
