package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/emiliopalmerini/launchdash/internal/analytics"
	"github.com/emiliopalmerini/launchdash/internal/logging"
	"github.com/emiliopalmerini/launchdash/internal/render"
	"github.com/emiliopalmerini/launchdash/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	svc             *analytics.Service
	router          *http.ServeMux
	addr            string
	shutdownTimeout time.Duration
	chartOpts       render.Options
	logger          *slog.Logger
}

func NewServer(svc *analytics.Service, addr string, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}
	s := &Server{
		svc:             svc,
		router:          http.NewServeMux(),
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		chartOpts:       render.DefaultOptions,
		logger:          logging.New("web"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Page
	s.router.HandleFunc("GET /{$}", s.handleDashboard)

	// Chart fragments (for HTMX)
	s.router.HandleFunc("GET /charts/pie", s.handleChartPie)
	s.router.HandleFunc("GET /charts/scatter", s.handleChartScatter)

	// API endpoints
	s.router.HandleFunc("GET /api/charts/pie", s.handleAPIChartPie)
	s.router.HandleFunc("GET /api/charts/scatter", s.handleAPIChartScatter)
	s.router.HandleFunc("GET /api/dataset", s.handleAPIDataset)
}

// Handler returns the router wrapped in the request middleware chain.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = middleware.HTMX(h)
	h = middleware.Logging(s.logger)(h)
	h = middleware.RequestID(h)
	return h
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "addr", s.addr)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
