// Package server serves the built site locally for previewing.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// New returns an http.Server serving dir on addr.
func New(addr, dir string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           Router(dir),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Router builds the preview router: request logging plus a file server
// over the output directory.
func Router(dir string) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(dir)))
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// requestLogger logs each request with method, path, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
