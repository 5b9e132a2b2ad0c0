// Package api exposes the engine over HTTP. It is a thin display/persistence
// adapter: every mutating request runs the calendar sync, dispatches, saves
// the snapshot, and journals the headline.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atelierlabs/atelier/internal/engine"
	"github.com/atelierlabs/atelier/internal/store"
)

// Server handles HTTP requests for a single game slot. The engine has no
// internal locking, so the server serializes all access with one mutex.
type Server struct {
	mu        sync.Mutex
	eng       *engine.Engine
	db        store.Store
	slot      string
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates an API server around an engine and its store.
func NewServer(eng *engine.Engine, db store.Store, slot string) *Server {
	return &Server{
		eng:       eng,
		db:        db,
		slot:      slot,
		logger:    log.New(os.Stdout, "[API] ", log.LstdFlags),
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/choices", s.handleChoices)
		r.Get("/journal", s.handleJournal)
		r.Post("/actions/{id}", s.handleAction)
		r.Post("/day/advance", s.handleAdvance)
		r.Post("/reset", s.handleReset)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	day := s.eng.State().Day
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
		"day":            day,
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncAndPersist()
	s.writeJSON(w, http.StatusOK, s.eng.State())
}

func (s *Server) handleChoices(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncAndPersist()
	s.writeJSON(w, http.StatusOK, map[string]any{"choices": s.eng.Choices()})
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := s.db.Journal(s.slot, limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "internal", "failed to read journal")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"journal": entries})
}

type actionRequest struct {
	Params map[string]any `json:"params"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "id")

	var req actionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncAndPersist()

	res, err := s.eng.Dispatch(actionID, req.Params)
	if err != nil {
		s.persist("action", res.Message)
		s.writeRuleError(w, err)
		return
	}

	s.persist("action", res.Message)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": res.Message,
		"choices": res.Choices,
		"state":   s.eng.State(),
	})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncAndPersist()

	res, err := s.eng.ManualAdvance()
	if err != nil {
		s.writeRuleError(w, err)
		return
	}

	s.persist("rollover", res.Message)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": res.Message,
		"choices": res.Choices,
		"state":   s.eng.State(),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteSnapshot(s.slot); err != nil {
		s.logger.Printf("reset: delete snapshot failed: %v", err)
	}
	res := s.eng.Reset()
	s.persist("reset", res.Message)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": res.Message,
		"choices": res.Choices,
		"state":   s.eng.State(),
	})
}

// syncAndPersist fires the calendar rollover if the real date moved, saving
// and journaling its outcome.
func (s *Server) syncAndPersist() {
	if res, rolled := s.eng.SyncDay(); rolled {
		s.persist("rollover", res.Message)
	}
}

// persist saves the snapshot and, when there is a headline, journals it.
// Persistence failures are logged, not surfaced: the in-memory session stays
// authoritative.
func (s *Server) persist(kind, message string) {
	data, err := s.eng.Snapshot()
	if err != nil {
		s.logger.Printf("snapshot encode failed: %v", err)
		return
	}
	if err := s.db.SaveSnapshot(s.slot, data); err != nil {
		s.logger.Printf("snapshot save failed: %v", err)
	}
	if message == "" {
		return
	}
	entry := store.JournalEntry{
		Slot:    s.slot,
		Day:     s.eng.State().Day,
		Kind:    kind,
		Message: message,
	}
	if err := s.db.AppendJournal(entry); err != nil {
		s.logger.Printf("journal append failed: %v", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("write response failed: %v", err)
	}
}
