// internal/httpserver/server.go
//
// Read-only debug HTTP server for a running hangman session.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, access log).
//   - Public endpoint: GET /health.
//   - Debug endpoints (token-gated when a secret is set):
//       GET /debug/session       latest published snapshot
//       GET /debug/session/{id}  snapshot of one session
//       GET /debug/words         word count per category
//       GET /debug/rounds        recent finished rounds (?limit=N)
//
// Notes:
//   - Nothing here mutates game state; the console loop is the only writer.
//   - Snapshots never carry the secret word while a round is in progress.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/ledger"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// RoundLister lists finished rounds. *ledger.Ledger satisfies it.
type RoundLister interface {
	Recent(ctx context.Context, limit int) ([]ledger.Result, error)
}

// Server bundles router, snapshot store, catalog and ledger.
type Server struct {
	r       *chi.Mux
	store   store.Store
	catalog *words.Catalog
	rounds  RoundLister
	secret  []byte
	srv     *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
// An empty secret leaves /debug/* open; rounds may be nil.
func New(st store.Store, catalog *words.Catalog, rounds RoundLister, secret string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, catalog: catalog, rounds: rounds, secret: []byte(secret)}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                // add X-Request-ID
	s.r.Use(chimw.Recoverer)                // recover from panics
	s.r.Use(chimw.Timeout(5 * time.Second)) // bound handler time
	s.r.Use(hlog.NewHandler(log.Logger))    // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))  // one line per request
	s.r.Use(jsonContentType)                // default JSON responses

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/debug", func(r chi.Router) {
		r.Use(s.requireToken())
		r.Get("/session", s.handleSession)
		r.Get("/session/{id}", s.handleSessionByID)
		r.Get("/words", s.handleWords)
		r.Get("/rounds", s.handleRounds)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start begins serving HTTP on addr. It returns nil after Shutdown.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("req_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("debug request")
}

// ------------------------------ handlers -----------------------------------

// handleSession returns the most recently published snapshot.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Latest(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no_session")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load snapshot")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// handleSessionByID returns the snapshot published for one session ID.
func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no_session")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load snapshot")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// handleWords returns the word count per category.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.catalog.Stats())
}

// handleRounds lists recent finished rounds; ?limit caps the count (default 20, max 100).
func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	if s.rounds == nil {
		_ = json.NewEncoder(w).Encode([]ledger.Result{})
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, 100)
	}
	rows, err := s.rounds.Recent(r.Context(), limit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("list rounds")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
