package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uitrail/uitrail/pkg/model"
)

// resolveRequest is the body of POST /api/v1/resolve. Snapshot carries an
// inline document (or bare tree); Ref points at a tree loaded earlier over
// MCP. Exactly one of the two must be set.
type resolveRequest struct {
	Snapshot  json.RawMessage `json:"snapshot,omitempty"`
	Ref       string          `json:"ref,omitempty"`
	Target    int             `json:"target,omitempty"`
	Text      string          `json:"text,omitempty"`
	Exact     bool            `json:"exact,omitempty"`
	Boundary  int             `json:"boundary,omitempty"`
	Base      string          `json:"base,omitempty"`
	Separator string          `json:"separator,omitempty"`
}

// serveHTTP runs the plain HTTP API until SIGINT or SIGTERM.
func (s *Server) serveHTTP() error {
	r := chi.NewRouter()
	r.Post("/api/v1/resolve", s.handleHTTPResolve)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.HTTPPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		s.log.Info("shutting down http api")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.log.Error("http api shutdown", "err", err)
		}
	}()

	s.log.Info("http api listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHTTPResolve(w http.ResponseWriter, r *http.Request) {
	var body resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var snap *model.Snapshot
	switch {
	case len(body.Snapshot) > 0:
		doc, err := model.Parse(body.Snapshot)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid snapshot: %v", err), http.StatusBadRequest)
			return
		}
		snap = model.Index(&doc.Root)
	case body.Ref != "":
		_, snap = s.cache.get(body.Ref)
		if snap == nil {
			http.Error(w, fmt.Sprintf("unknown or expired ref %q", body.Ref), http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "snapshot or ref is required", http.StatusBadRequest)
		return
	}

	target, err := findTarget(snap, body.Target, body.Text, body.Exact)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := s.runResolve(snap, target, body.Boundary, body.Base, body.Separator)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("resolve response encode", "err", err)
	}
}
