package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hanumantha123456/portfolio"
)

const (
	// VisitorCookie carries the id a visitor's theme preference is stored under.
	VisitorCookie = "visitor"
	// ThemeCookie mirrors the current theme literal for client-side scripts.
	ThemeCookie = "theme"

	cookieMaxAge = 365 * 24 * time.Hour
)

// visitorID returns the id carried by the request's visitor cookie. A missing
// or unreadable cookie gets a fresh id, which is written back to w.
func (s *Server) visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if id, ok := s.openVisitor(c.Value); ok {
			return id
		}
		s.logger.Debug("Discarding unreadable visitor cookie", "request_path", r.URL.Path)
	}

	id := uuid.NewString()
	value := id
	if s.cookies != nil {
		sealed, err := s.cookies.Seal(id)
		if err != nil {
			s.logger.Error("Failed to seal visitor cookie", "error", err)
			return id
		}
		value = sealed
	}
	http.SetCookie(w, s.cookie(VisitorCookie, value, true))
	return id
}

func (s *Server) openVisitor(value string) (string, bool) {
	if s.cookies != nil {
		opened, err := s.cookies.Open(value)
		if err != nil {
			return "", false
		}
		value = opened
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (s *Server) setThemeCookie(w http.ResponseWriter, theme portfolio.Theme) {
	http.SetCookie(w, s.cookie(ThemeCookie, theme.String(), false))
}

func (s *Server) cookie(name, value string, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: httpOnly,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// themeController builds a controller for the request's visitor. The
// request's client hint stands in for the browser's color-scheme query.
func (s *Server) themeController(w http.ResponseWriter, r *http.Request, surface portfolio.Surface) *portfolio.ThemeController {
	opts := []portfolio.Option{
		portfolio.WithStorage(s.storage),
		portfolio.WithLogger(s.logger),
		portfolio.WithDetector(portfolio.NewHeaderDetector(r)),
	}
	if s.cache != nil {
		opts = append(opts, portfolio.WithCache(s.cache))
		if s.cacheTTL > 0 {
			opts = append(opts, portfolio.WithCacheTTL(s.cacheTTL))
		}
	}
	if surface != nil {
		opts = append(opts, portfolio.WithSurface(surface))
	}
	return portfolio.NewThemeController(s.visitorID(w, r), opts...)
}
