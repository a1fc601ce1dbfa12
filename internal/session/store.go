package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/prigest/internal/dataset"
	"github.com/google/uuid"
)

// Session is one loaded file.
type Session struct {
	ID        string
	Data      *dataset.Dataset
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store is a thread-safe in-memory session registry with TTL eviction.
// Sessions never share state; each holds its own immutable dataset.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time
}

func NewStore(ttl time.Duration, log *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// Put registers a dataset under a new random ID.
func (s *Store) Put(ds *dataset.Dataset) *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Data:      ds,
		CreatedAt: now,
		lastSeen:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns a session by ID and refreshes its idle timer.
func (s *Store) Get(id string) *Session {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	s.mu.Lock()
	sess := s.sessions[id]
	s.mu.Unlock()

	if sess != nil {
		sess.touch(s.now())
	}
	return sess
}

// Delete removes a session. It reports whether one existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup removes sessions idle for longer than the TTL.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run evicts expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Cleanup(); n > 0 {
				s.log.Info("evicted idle sessions", "count", n, "remaining", s.Len())
			}
		}
	}
}
