// Package ioweb serves the dashboard over HTTP and WebSocket.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gnames/gnparks/pkg/dashboard"
	"github.com/gnames/gnparks/pkg/filter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Server is the web front of a dashboard.
type Server struct {
	dash     *dashboard.Dashboard
	port     int
	upgrader websocket.Upgrader
	sessions *registry
	metrics  *metrics
}

// New creates a Server for a dashboard at a port.
func New(dash *dashboard.Dashboard, port int) *Server {
	return &Server{
		dash:     dash,
		port:     port,
		sessions: newRegistry(),
		metrics:  newMetrics(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
		},
	}
}

// Handler returns the router of all dashboard routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.reg, promhttp.HandlerOpts{}))
	r.Get("/ws", s.handleWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", s.handleOptions)
		r.Get("/figure", s.handleFigure)
		r.Get("/panels/{panel}.png", s.handlePanel)
	})
	return r
}

// Run serves the dashboard until ctx is canceled, then closes sessions and
// shuts down the server.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return ListenError(addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run with a given listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), shutdownTimeout,
		)
		defer cancel()
		s.sessions.closeAll()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Dashboard is ready", "addr", ln.Addr().String())
	err := srv.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return ListenError(ln.Addr().String(), err)
	}
	slog.Info("Dashboard stopped")
	return nil
}

// view runs one dashboard update and records metrics.
func (s *Server) view(sel filter.Selection) dashboard.View {
	start := time.Now()
	res := s.dash.View(sel)
	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.metrics.builds.WithLabelValues(res.Kind.String()).Inc()
	return res
}
