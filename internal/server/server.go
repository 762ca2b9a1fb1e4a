package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/san-kum/polybox/internal/config"
	"github.com/san-kum/polybox/internal/ops"
)

// Options configure a Server. Zero values fall back to defaults; a
// non-positive RateLimit disables rate limiting.
type Options struct {
	Addr          string
	RateLimit     float64
	Burst         int
	MaxBodyBytes  int64
	DegreeCeiling int
	MaxDegree     int
	Logger        *slog.Logger
}

type Server struct {
	httpServer *http.Server
	limiter    *Limiter
	metrics    *Metrics
	validator  ops.Validator
	logger     *slog.Logger
	maxBody    int64
	now        func() time.Time
}

func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = config.DefaultAddr
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = config.DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	mux := http.NewServeMux()
	s := &Server{
		limiter:   NewLimiter(opts.RateLimit, opts.Burst, defaultIdleTTL),
		metrics:   NewMetrics(),
		validator: ops.Validator{DegreeCeiling: opts.DegreeCeiling, MaxDegree: opts.MaxDegree},
		logger:    opts.Logger,
		maxBody:   opts.MaxBodyBytes,
		now:       time.Now,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.recoverer(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.route(mux, "GET /healthz", false, s.handleHealth)
	s.route(mux, "POST /v1/validate", true, s.handleValidate)
	s.route(mux, "POST /v1/normalize", true, s.handleNormalize)
	s.route(mux, "POST /v1/operations/{kind}", true, s.handleOperation)
	s.route(mux, "GET /v1/suggest", true, s.handleSuggest)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return s
}

// Handler is the full middleware-wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
			return
		}
		errCh <- err
	}()
	s.logger.Info("server listening", "addr", s.httpServer.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
