// Package httpview serves the latest published planner.View as read-only JSON.
// It never touches the model; the single writer hands it snapshots.
package httpview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"wedding-planner/internal/planner"
)

type Server struct {
	view   atomic.Pointer[planner.View]
	router chi.Router
	log    zerolog.Logger
	srv    *http.Server
}

// New builds a server holding initial as its first view.
func New(initial planner.View, log zerolog.Logger) *Server {
	s := &Server{log: log.With().Str("component", "httpview").Logger()}
	s.view.Store(&initial)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(s.accessLog)

	r.Get("/health", s.health)
	r.Get("/view", s.fullView)
	r.Get("/persons", s.persons)
	r.Get("/tables", s.tables)
	r.Get("/wedding", s.wedding)
	s.router = r
	return s
}

// Publish replaces the served view. Safe to call from the writer while
// requests are in flight.
func (s *Server) Publish(v planner.View) {
	s.view.Store(&v)
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("View server listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "version": s.view.Load().Version})
}

func (s *Server) fullView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.view.Load())
}

func (s *Server) persons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.view.Load().Persons)
}

func (s *Server) tables(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.view.Load().Tables)
}

func (s *Server) wedding(w http.ResponseWriter, _ *http.Request) {
	v := s.view.Load()
	if v.Wedding == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no current wedding"})
		return
	}
	writeJSON(w, http.StatusOK, v.Wedding)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Msg("Request served")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
