// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes suggestion lookups and query history over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/typeahead/internal/history"
	"github.com/pdiddy/typeahead/internal/logger"
	"github.com/pdiddy/typeahead/internal/suggest"
	"github.com/pdiddy/typeahead/pkg/types"
)

const defaultShutdownGrace = 5 * time.Second

// Server wires the suggestion catalog and the history store into an HTTP
// API. The history store may be nil; the history endpoints then report 404.
type Server struct {
	catalog      *suggest.Catalog
	history      *history.Store
	defaultLimit int
	log          *log.Logger
}

// New builds a server. defaultLimit applies when a request carries no limit
// parameter.
func New(catalog *suggest.Catalog, hist *history.Store, matchCfg types.MatchConfig) *Server {
	limit := matchCfg.MaxResults
	if limit <= 0 {
		limit = 10
	}
	return &Server{
		catalog:      catalog,
		history:      hist,
		defaultLimit: limit,
		log:          logger.New("server"),
	}
}

// Handler returns the route table wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /suggest", s.handleSuggest)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	if s.history != nil {
		mux.HandleFunc("POST /submit", s.handleSubmit)
		mux.HandleFunc("POST /select", s.handleSelect)
		mux.HandleFunc("GET /recent", s.handleRecent)
	}
	return s.logRequests(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured grace period.
func (s *Server) Run(ctx context.Context, cfg types.ServerConfig) error {
	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	grace := cfg.ShutdownGrace
	if grace <= 0 {
		grace = defaultShutdownGrace
	}

	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "grace", grace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type suggestResponse struct {
	Query       string             `json:"query"`
	Count       int                `json:"count"`
	Suggestions []types.Suggestion `json:"suggestions"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := s.parseLimit(r.URL.Query().Get("limit"))

	results := s.catalog.Lookup(r.Context(), q, limit)
	if results == nil {
		results = []types.Suggestion{}
	}
	writeJSON(w, http.StatusOK, suggestResponse{
		Query:       q,
		Count:       len(results),
		Suggestions: results,
	})
}

// parseLimit applies the default for a missing parameter and clamps
// malformed or negative values to zero.
func (s *Server) parseLimit(raw string) int {
	if raw == "" {
		return s.defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

type submitRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.history.RecordQuery(r.Context(), req.Query); err != nil {
		s.log.Error("recording query", "err", err)
		writeError(w, http.StatusInternalServerError, "could not record query")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type selectRequest struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Query string `json:"query"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	sel := types.Selection{SuggestionID: req.ID, Text: req.Text, Term: req.Query}
	if err := s.history.RecordSelection(r.Context(), sel); err != nil {
		s.log.Error("recording selection", "err", err)
		writeError(w, http.StatusInternalServerError, "could not record selection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type recentResponse struct {
	Count  int                 `json:"count"`
	Recent []types.RecentQuery `json:"recent"`
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	limit := s.parseLimit(r.URL.Query().Get("limit"))

	recent, err := s.history.Recent(r.Context(), prefix, limit)
	if err != nil {
		s.log.Error("querying history", "err", err)
		writeError(w, http.StatusInternalServerError, "could not query history")
		return
	}
	if recent == nil {
		recent = []types.RecentQuery{}
	}
	writeJSON(w, http.StatusOK, recentResponse{Count: len(recent), Recent: recent})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"candidates": s.catalog.Size(r.Context()),
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
