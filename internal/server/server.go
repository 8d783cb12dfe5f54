// Package server exposes the pyramid over HTTP.
//
// Routes:
//
//	GET /                  HTML page with the pyramid, detail card and brands
//	GET /pyramid.svg       rendered SVG (?selected=&hovered=&style=&interactive=)
//	GET /api/health        liveness and level count
//	GET /api/levels        all levels with group and bankability
//	GET /api/levels/{id}   one level
//	GET /api/brands        manufacturers of ?band=
//	GET /api/layout        layout JSON (?selected=&hovered=)
//	GET /api/stats         request, render and cache counters
//
// The catalog is held behind an atomic pointer so [Server.SetCatalog] (used
// by the file watcher) never blocks requests.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tierpyramid/pkg/buildinfo"
	"github.com/matzehuels/tierpyramid/pkg/observability"
	"github.com/matzehuels/tierpyramid/pkg/pipeline"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves one catalog.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	stats    *observability.Counters
	catalog  atomic.Pointer[tier.Catalog]
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the options every request starts from (geometry, style).
func WithDefaults(o pipeline.Options) Option { return func(s *Server) { s.defaults = o } }

// WithStats exposes counters at /api/stats.
func WithStats(c *observability.Counters) Option { return func(s *Server) { s.stats = c } }

// New builds a server for c.
func New(c tier.Catalog, runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{runner: runner, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	s.catalog.Store(&c)
	s.router = s.routes()
	return s
}

// Catalog returns the catalog currently served.
func (s *Server) Catalog() tier.Catalog { return *s.catalog.Load() }

// SetCatalog swaps the served catalog.
func (s *Server) SetCatalog(c tier.Catalog) { s.catalog.Store(&c) }

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/", s.handleIndex)
	r.Get("/pyramid.svg", s.handleSVG)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/levels", s.handleLevels)
		r.Get("/levels/{id}", s.handleLevel)
		r.Get("/brands", s.handleBrands)
		r.Get("/layout", s.handleLayout)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// logRequests logs every request and reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		dur := time.Since(start)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		observability.HTTP().OnResponse(r.Context(), r.Method, route, ww.Status(), dur)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", dur)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
