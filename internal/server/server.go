package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/awpl-blog/blogsite/internal/blog"
	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/consent"
	"github.com/awpl-blog/blogsite/internal/site"
	"github.com/awpl-blog/blogsite/internal/views"
)

// Config holds server configuration.
type Config struct {
	Port      int
	StaticDir string // served under /images/ when set
	Listings  blog.Options
	AllowAll  bool // allow all CORS origins (dev mode)
}

// Server serves the blog pages, listing fragments and the small JSON API
// used by the page scripts.
type Server struct {
	cfg        Config
	catalog    *catalog.Catalog
	renderer   *site.Renderer
	counter    *views.Counter
	consent    *consent.Manager
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. counter and consentMgr may be nil; the matching
// routes then report 503.
func New(cfg Config, cat *catalog.Catalog, renderer *site.Renderer, counter *views.Counter, consentMgr *consent.Manager) *Server {
	s := &Server{
		cfg:      cfg,
		catalog:  cat,
		renderer: renderer,
		counter:  counter,
		consent:  consentMgr,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)

	r.Get("/", s.handleHome)
	r.Get("/index.html", s.handleHome)
	r.Get("/style.css", handleStylesheet)
	r.Get("/posts/{file}", s.handlePost)
	if s.cfg.StaticDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	}

	r.Route("/fragments", func(r chi.Router) {
		r.Get("/latest", s.handleLatest)
		r.Get("/popular", s.handlePopular)
		r.Get("/search", s.handleSearch)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/views/*", s.handleGetViews)
		r.Post("/views/*", s.handleRecordView)
		r.Get("/consent", s.handleGetConsent)
		r.Post("/consent", s.handleRecordConsent)
		r.Get("/consent/history", s.handleConsentHistory)
	})

	r.Get("/share/{platform}", handleShare)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("blogsite server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
