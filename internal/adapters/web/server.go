package web

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/RafaelRangel0/Similar-Doctors/internal/ports"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// Options configures the HTTP server. Zero values get defaults in NewServer.
type Options struct {
	Mode            string      // reported by /api/health: "disk" or "watch"
	Logger          *log.Logger // lifecycle messages
	AccessLog       io.Writer   // gin access log (default os.Stdout)
	ShutdownTimeout time.Duration
}

// Server serves the directory page and JSON API.
type Server struct {
	source   ports.DoctorSource
	router   *gin.Engine
	logger   *log.Logger
	opts     Options
	listener net.Listener
	httpSrv  *http.Server
	started  time.Time
	stopOnce sync.Once
}

// NewServer builds the router. Nothing listens until Start.
func NewServer(source ports.DoctorSource, opts Options) *Server {
	if source == nil {
		panic("web.NewServer: source is nil")
	}
	if opts.Mode == "" {
		opts.Mode = "disk"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		source:  source,
		logger:  opts.Logger,
		opts:    opts,
		started: time.Now(),
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	// Unknown paths are 404, including known ones with a trailing slash.
	router.RedirectTrailingSlash = false
	router.Use(requestID())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    s.opts.AccessLog,
		Formatter: accessLogFormat,
	}))
	router.Use(gin.RecoveryWithWriter(s.opts.AccessLog))
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Local development server: only loopback proxies are trusted.
	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	router.SetHTMLTemplate(template.Must(template.ParseFS(assetsFS, "templates/*.html")))

	static, err := fs.Sub(assetsFS, "static")
	if err != nil {
		panic("web: embedded static assets missing: " + err.Error())
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/", s.handleIndex)
	router.HEAD("/", s.handleIndex)
	router.GET("/api/health", s.handleHealth)
	router.GET("/api/doctors", s.handleDoctors)
	router.HEAD("/api/doctors", s.handleDoctors)
	router.GET("/api/doctors/search", s.handleSearch)
	router.GET("/api/doctors/facets", s.handleFacets)
	router.GET("/api/doctors/:id", s.handleDoctor)
	router.GET("/api/doctors/:id/similar", s.handleSimilar)

	return router
}

// Handler returns the router, for tests and for embedding in another server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves in the background.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.started = time.Now()
	s.httpSrv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Printf("[web] serve: %v", err)
		}
	}()
	s.logger.Printf("[web] listening on %s (data: %s, mode: %s)", s.URL(), s.source.Path(), s.opts.Mode)
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		if s.httpSrv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		err = s.httpSrv.Shutdown(ctx)
		s.logger.Printf("[web] stopped")
	})
	return err
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}
