package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/content"
	"github.com/hanumantha123456/portfolio/encryption"
	"github.com/hanumantha123456/portfolio/site"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	storage  portfolio.Storage
	cache    portfolio.Cache
	cacheTTL time.Duration
	logger   portfolio.Logger
	renderer *site.Renderer
	cookies  *encryption.Manager

	cookieSecure   bool
	allowedOrigins []string
	assetsDir      string
	wasmURL        string

	mu      sync.RWMutex
	profile content.Profile

	router     *chi.Mux
	httpServer *http.Server
}

// Config holds configuration for the API server.
type Config struct {
	ListenAddress string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration

	// Storage keeps each visitor's theme preference. Required.
	Storage  portfolio.Storage
	Cache    portfolio.Cache
	CacheTTL time.Duration
	Logger   portfolio.Logger

	// Renderer defaults to site.NewRenderer().
	Renderer *site.Renderer
	Profile  content.Profile

	// Cookies seals the visitor cookie. Without it the cookie carries the
	// bare visitor id.
	Cookies      *encryption.Manager
	CookieSecure bool

	// AllowedOrigins enables CORS on the JSON API for the listed origins.
	AllowedOrigins []string
	// AssetsDir is served under /static/ and as a fallback for root-level files.
	AssetsDir string
	// WasmURL locates the browser host module. It is left off the page,
	// with a warning, when site.CheckWasm finds it missing from AssetsDir.
	WasmURL string
}

// NewServer creates and configures a new API server instance.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Storage == nil {
		return nil, errors.New("storage is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = portfolio.NewDefaultLogger()
	}
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = ":8080"
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if cfg.Renderer == nil {
		r, err := site.NewRenderer()
		if err != nil {
			return nil, err
		}
		cfg.Renderer = r
	}
	if cfg.Profile.Intro.Name == "" {
		cfg.Profile = content.Default()
	}
	if err := site.CheckWasm(cfg.AssetsDir, cfg.WasmURL); err != nil {
		cfg.Logger.Warn("Serving page without browser host; run `portfolio wasm` to build it", "wasm_url", cfg.WasmURL, "error", err)
		cfg.WasmURL = ""
	}

	s := &Server{
		storage:        cfg.Storage,
		cache:          cfg.Cache,
		cacheTTL:       cfg.CacheTTL,
		logger:         cfg.Logger,
		renderer:       cfg.Renderer,
		cookies:        cfg.Cookies,
		cookieSecure:   cfg.CookieSecure,
		allowedOrigins: cfg.AllowedOrigins,
		assetsDir:      cfg.AssetsDir,
		wasmURL:        cfg.WasmURL,
		profile:        cfg.Profile,
		router:         chi.NewRouter(),
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Profile returns the content currently being served.
func (s *Server) Profile() content.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile swaps the served content. Requests already rendering keep the
// profile they started with.
func (s *Server) SetProfile(p content.Profile) {
	s.mu.Lock()
	s.profile = p.Clone()
	s.mu.Unlock()
	s.logger.Info("Content reloaded", "name", p.Intro.Name)
}

// Start runs the HTTP server. It blocks until the server is shut down and
// returns nil after a graceful Stop.
func (s *Server) Start() error {
	s.logger.Info("Portfolio server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Portfolio server stopping")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("Portfolio server stopped gracefully")
	return nil
}
