package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// TogglePath receives the page's theme toggle form when no script runs.
const TogglePath = "/theme/toggle"

func (s *Server) setupRoutes() {
	// Middleware stack
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(LoggerMiddleware(s.logger))
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.respondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.With(ClientHints).Get("/", s.handleIndex)
	s.router.With(ClientHints).Post(TogglePath, s.handleToggleForm)

	if s.assetsDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.assetsDir)))
		s.router.Handle("/static/*", fs)
	}

	s.router.Route("/api/v1", func(r chi.Router) {
		if len(s.allowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   s.allowedOrigins,
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		r.Use(middleware.Timeout(30 * time.Second))

		r.Route("/theme", func(r chi.Router) {
			r.Use(ClientHints)
			r.Get("/", s.handleGetTheme)
			r.Put("/", s.handleSetTheme)
			r.Delete("/", s.handleResetTheme)
			r.Post("/toggle", s.handleToggleTheme)
		})
		r.Get("/preferences", s.handleListPreferences)
		r.Get("/sections", s.handleListSections)
		r.Get("/profile", s.handleGetProfile)
	})

	// Root-level files such as the profile image and resume live in the
	// assets directory too.
	s.router.NotFound(s.handleAsset)
}
