// Package server exposes the scan engine over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/greencloud/gcrs/internal/config"
	"github.com/greencloud/gcrs/internal/inventory"
)

// Server serves scan and summary requests over HTTP.
type Server struct {
	cfg     *config.Config
	tables  *inventory.Tables
	version string
}

// New constructs a Server. tables may be nil to use the defaults.
func New(cfg *config.Config, tables *inventory.Tables, version string) *Server {
	if tables == nil {
		tables = inventory.DefaultTables()
	}
	return &Server{cfg: cfg, tables: tables, version: version}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /scan", s.handleScan)
	mux.HandleFunc("POST /scan/summary", s.handleScanSummary)
	return mux
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("http server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
