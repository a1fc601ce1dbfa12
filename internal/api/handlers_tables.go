package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/prigest/internal/dataset"
	"github.com/dgallion1/prigest/internal/entity"
	"github.com/dgallion1/prigest/internal/export"
	"github.com/dgallion1/prigest/internal/logging"
	"github.com/dgallion1/prigest/internal/record"
	"github.com/dgallion1/prigest/internal/session"
	"github.com/dgallion1/prigest/internal/stats"
	"github.com/dgallion1/prigest/internal/table"
	"github.com/go-chi/chi/v5"
)

// familyTable resolves {fileID} and {family} to a labeled table. Header
// errors are reported as 404: the family is unavailable in this file.
func (s *Server) familyTable(w http.ResponseWriter, r *http.Request) (*session.Session, record.Family, *table.Labeled, bool) {
	sess, ok := s.session(w, r)
	if !ok {
		return nil, record.Family{}, nil, false
	}

	fam, ok := record.FamilyByName(chi.URLParam(r, "family"))
	if !ok {
		jsonError(w, "unknown family: "+chi.URLParam(r, "family"), http.StatusNotFound)
		return nil, record.Family{}, nil, false
	}

	t, err := sess.Data.Family(fam)
	if err != nil {
		s.writeTableError(w, r, sess, fam.Name, err)
		return nil, record.Family{}, nil, false
	}
	return sess, fam, t, true
}

func (s *Server) writeTableError(w http.ResponseWriter, r *http.Request, sess *session.Session, name string, err error) {
	var missing *table.MissingHeaderError
	var invalid *table.InvalidHeaderError
	if errors.As(err, &missing) || errors.As(err, &invalid) {
		logging.FromContext(r.Context(), s.log).Info("table unavailable",
			"file_id", sess.ID, "table", name, "reason", err)
		jsonError(w, fmt.Sprintf("%s data unavailable: %s", name, err), http.StatusNotFound)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) entityTable(w http.ResponseWriter, r *http.Request) (*session.Session, entity.Config, *entity.Table, bool) {
	sess, fam, t, ok := s.familyTable(w, r)
	if !ok {
		return nil, nil, nil, false
	}
	cfg := entity.ForFamily(fam.Name)
	return sess, cfg, sess.Data.EntityTable(t, cfg), true
}

// checkKind rejects an attribute the family configures with another kind.
func checkKind(w http.ResponseWriter, cfg entity.Config, attr string, want entity.Kind) bool {
	if a, ok := cfg.Lookup(attr); ok && a.Kind != want {
		jsonError(w, fmt.Sprintf("attribute %q is %s, not %s", attr, a.Kind, want), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	_, _, t, ok := s.familyTable(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// handleTagTable projects any data tag onto any header tag.
func (s *Server) handleTagTable(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	dataTag, headerTag := chi.URLParam(r, "dataTag"), chi.URLParam(r, "headerTag")
	for _, tag := range []string{dataTag, headerTag} {
		if _, err := strconv.Atoi(tag); err != nil {
			jsonError(w, "record tags must be integers", http.StatusBadRequest)
			return
		}
	}

	t, err := sess.Data.LabeledTable(dataTag, headerTag)
	if err != nil {
		s.writeTableError(w, r, sess, "tag "+dataTag, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	_, _, et, ok := s.entityTable(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":       et.Len(),
		"attributes": et.Columns(),
	})
}

func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	bins := s.cfg.DefaultBins
	if v := r.URL.Query().Get("bins"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, "bins must be an integer", http.StatusBadRequest)
			return
		}
		bins = n
	}
	rng, err := parseRange(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, cfg, et, ok := s.entityTable(w, r)
	if !ok {
		return
	}

	attr := chi.URLParam(r, "attr")
	if !checkKind(w, cfg, attr, entity.Numeric) {
		return
	}
	h, err := dataset.NumericHistogram(et, attr, bins, rng)
	if err != nil {
		writeStatsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"attribute": attr,
		"histogram": h,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	_, cfg, et, ok := s.entityTable(w, r)
	if !ok {
		return
	}

	attr := chi.URLParam(r, "attr")
	if !checkKind(w, cfg, attr, entity.Categorical) {
		return
	}
	counts, err := dataset.CategoryCounts(et, attr)
	if err != nil {
		writeStatsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"attribute":  attr,
		"categories": counts,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	_, _, et, ok := s.entityTable(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": dataset.SummaryStatistics(et),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, fam, t, ok := s.familyTable(w, r)
	if !ok {
		return
	}

	name := fmt.Sprintf("%s-%s.%s", trimExt(sess.Data.Info().FileName), fam.Name, format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	err = export.Write(w, format, export.Tabular{
		Title:   fmt.Sprintf("%s (%s)", sess.Data.Info().FileName, fam.Name),
		Columns: t.Columns,
		Rows:    t.Rows,
	})
	if err != nil {
		// Headers are already sent; log only.
		logging.FromContext(r.Context(), s.log).Error("export failed",
			"file_id", sess.ID, "format", format, "error", err)
	}
}

// handleLocations serves stem positions as GeoJSON.
func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	sess, fam, _, ok := s.familyTable(w, r)
	if !ok {
		return
	}
	if fam != record.Tree {
		jsonError(w, "locations are recorded for stems only", http.StatusNotFound)
		return
	}

	locs, err := sess.Data.TreeLocations()
	if err != nil {
		s.writeTableError(w, r, sess, fam.Name, err)
		return
	}
	points := make([]export.Point, len(locs))
	for i, l := range locs {
		points[i] = export.Point{ID: l.Tree, Latitude: l.Latitude, Longitude: l.Longitude, Properties: l.Attributes}
	}

	var buf bytes.Buffer
	if err := export.GeoJSON(&buf, points); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	name := trimExt(sess.Data.Info().FileName) + "-tree-locations.geojson"
	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(buf.Bytes())
}

func parseRange(r *http.Request) (*stats.Range, error) {
	q := r.URL.Query()
	minStr, maxStr := q.Get("min"), q.Get("max")
	if minStr == "" && maxStr == "" {
		return nil, nil
	}
	if minStr == "" || maxStr == "" {
		return nil, errors.New("min and max must be given together")
	}
	lo, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid min: %w", err)
	}
	hi, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid max: %w", err)
	}
	return &stats.Range{Min: lo, Max: hi}, nil
}

func writeStatsError(w http.ResponseWriter, err error) {
	var binErr *stats.InvalidBinCountError
	var rngErr *stats.InvalidRangeError
	switch {
	case errors.Is(err, dataset.ErrAttributeNotPresent):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &binErr), errors.As(err, &rngErr):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
