// Package web serves the curriculum over HTTP: server-rendered pages for a
// browser and a JSON API under /api.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/logging"
	"github.com/abhisek/webdev100/internal/progress"
	"github.com/abhisek/webdev100/internal/store"
	"github.com/abhisek/webdev100/internal/telemetry"
)

// Config controls the listener.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	Tracing         bool
	ShutdownTimeout time.Duration
}

// Deps are the shared services behind the handlers. Session may be nil, in
// which case views are not journaled and /api/activity is empty.
type Deps struct {
	Catalog  *curriculum.Catalog
	Progress *progress.Tracker
	Session  *store.Session
	Log      *logging.Logger
}

// Server is the HTTP front end.
type Server struct {
	cfg    Config
	deps   Deps
	log    *logging.Logger
	pages  *template.Template
	html   map[int]template.HTML // rendered explanations by day
	engine *gin.Engine
}

// New builds the server and its routes. It does not listen.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Catalog == nil || deps.Progress == nil {
		return nil, errors.New("web: catalog and progress are required")
	}
	log := deps.Log
	if log == nil {
		log = logging.Nop()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	pages, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	explained, err := renderExplanations(deps.Catalog)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:   cfg,
		deps:  deps,
		log:   log.With("component", "web"),
		pages: pages,
		html:  explained,
	}
	s.engine = s.routes()
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.cfg.Tracing {
		r.Use(otelgin.Middleware(telemetry.ServiceName))
	}
	r.Use(RequestID(), RequestLogger(s.log))
	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(CORS(s.cfg.AllowedOrigins))
	}

	r.GET("/healthcheck", healthCheck)

	r.GET("/", s.homePage)
	r.GET("/days", s.daysPage)
	r.GET("/day/:day", s.dayPage)
	r.POST("/day/:day/toggle", s.togglePage)

	api := r.Group("/api")
	{
		api.GET("/lessons", s.listLessons)
		api.GET("/lessons/:day", s.getLesson)
		api.GET("/progress", s.getProgress)
		api.PUT("/progress/:day", s.completeDay)
		api.DELETE("/progress/:day", s.uncompleteDay)
		api.GET("/activity", s.listActivity)
	}

	r.NoRoute(s.noRoute)
	return r
}

// Run listens on cfg.Addr until ctx is cancelled, then drains in-flight
// requests for up to ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}
