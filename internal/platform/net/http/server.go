package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"newsletter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful shutdown unless WithShutdownTimeout says otherwise
const DefaultShutdownTimeout = 10 * time.Second

// Server serves a chi mux until its context ends, then drains in-flight requests
type Server struct {
	addr     string
	mux      *chi.Mux
	srv      *stdhttp.Server
	drainFor time.Duration
}

// ServerOption configures NewServer
type ServerOption func(*Server)

// WithShutdownTimeout sets how long Serve waits for in-flight requests; d <= 0 is ignored
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.drainFor = d
		}
	}
}

// NewServer builds a server for addr ("host:port")
func NewServer(addr string, opts ...ServerOption) *Server {
	s := &Server{addr: addr, mux: chi.NewRouter(), drainFor: DefaultShutdownTimeout}
	for _, o := range opts {
		o(s)
	}
	s.srv = &stdhttp.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router is the root mux as a Router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the address given to NewServer
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and calls Serve
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln; when ctx ends it shuts down and waits for in-flight requests
// a clean shutdown returns nil
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drainFor)
		defer cancel()
		log.Info().Dur("timeout", s.drainFor).Msg("http shutting down")
		return s.srv.Shutdown(sctx)
	})
	return g.Wait()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
