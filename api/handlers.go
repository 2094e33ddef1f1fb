// Package api serves the portfolio page, its assets, and a small JSON API for
// the visitor's theme preference.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/site"
)

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme portfolio.Theme `json:"theme"`
}

type preferencesResponse struct {
	VisitorID   string                           `json:"visitor_id"`
	Preferences map[string]*portfolio.Preference `json:"preferences"`
}

type sectionResponse struct {
	ID     portfolio.SectionID `json:"id"`
	Label  string              `json:"label"`
	Anchor string              `json:"anchor"`
}

type sectionsResponse struct {
	Initial   portfolio.SectionID `json:"initial"`
	Threshold float64             `json:"threshold"`
	Sections  []sectionResponse   `json:"sections"`
}

// handleIndex renders the page with the visitor's theme already applied to
// the <html> element.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	surface := portfolio.NewClassList()
	theme := s.themeController(w, r, surface).InitialPreference(r.Context())

	data, err := site.NewPageData(s.Profile(), site.PageOptions{
		Surface:      surface,
		Theme:        theme,
		AssetPrefix:  "/static",
		WasmURL:      s.wasmURL,
		ToggleAction: TogglePath,
	})
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Failed to prepare page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, data); err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// handleGetTheme reports the visitor's current theme.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme := s.themeController(w, r, nil).InitialPreference(r.Context())
	s.setThemeCookie(w, theme)
	s.respondWithJSON(w, r, http.StatusOK, themeResponse{Theme: theme})
}

// handleSetTheme stores an explicit theme choice.
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest

	r.Body = http.MaxBytesReader(w, r.Body, 1024)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	theme, err := portfolio.ParseTheme(req.Theme)
	if err != nil {
		if errors.Is(err, portfolio.ErrInvalidTheme) {
			s.respondWithError(w, r, http.StatusBadRequest, "Invalid theme", err)
		} else {
			s.respondWithError(w, r, http.StatusInternalServerError, "Failed to set theme", err)
		}
		return
	}

	s.themeController(w, r, nil).SetPreference(r.Context(), theme)
	s.setThemeCookie(w, theme)
	s.respondWithJSON(w, r, http.StatusOK, themeResponse{Theme: theme})
}

// handleToggleTheme flips the visitor's theme.
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	c := s.themeController(w, r, nil)
	c.InitialPreference(r.Context())
	theme := c.Toggle(r.Context())
	s.setThemeCookie(w, theme)
	s.respondWithJSON(w, r, http.StatusOK, themeResponse{Theme: theme})
}

// handleResetTheme forgets the visitor's explicit choice and reports the
// theme the environment now resolves to.
func (s *Server) handleResetTheme(w http.ResponseWriter, r *http.Request) {
	theme := s.themeController(w, r, nil).Reset(r.Context())
	s.setThemeCookie(w, theme)
	s.respondWithJSON(w, r, http.StatusOK, themeResponse{Theme: theme})
}

// handleToggleForm flips the theme for the page's toggle form and sends the
// browser back to the page.
func (s *Server) handleToggleForm(w http.ResponseWriter, r *http.Request) {
	c := s.themeController(w, r, nil)
	c.InitialPreference(r.Context())
	s.setThemeCookie(w, c.Toggle(r.Context()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleListPreferences returns everything stored for the visitor.
func (s *Server) handleListPreferences(w http.ResponseWriter, r *http.Request) {
	id := s.visitorID(w, r)
	prefs, err := s.storage.GetAll(r.Context(), id)
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Failed to list preferences", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, preferencesResponse{VisitorID: id, Preferences: prefs})
}

// handleListSections lists the page sections in document order.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	ids := portfolio.Sections()
	resp := sectionsResponse{
		Initial:   portfolio.SectionHome,
		Threshold: portfolio.VisibilityThreshold,
		Sections:  make([]sectionResponse, 0, len(ids)),
	}
	for _, id := range ids {
		resp.Sections = append(resp.Sections, sectionResponse{ID: id, Label: id.Label(), Anchor: id.Anchor()})
	}
	s.respondWithJSON(w, r, http.StatusOK, resp)
}

// handleGetProfile returns the content the page is rendered from.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, r, http.StatusOK, s.Profile())
}

// handleAsset serves a regular file from the assets directory for any path
// no route matched.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	if s.assetsDir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		s.respondWithError(w, r, http.StatusNotFound, "Not found", nil)
		return
	}

	name := path.Clean("/" + r.URL.Path)
	if strings.Contains(name, "..") {
		s.respondWithError(w, r, http.StatusNotFound, "Not found", nil)
		return
	}
	full := filepath.Join(s.assetsDir, filepath.FromSlash(name))
	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		s.respondWithError(w, r, http.StatusNotFound, "Not found", nil)
		return
	}
	http.ServeFile(w, r, full)
}

// respondWithError is a helper to send JSON error responses.
func (s *Server) respondWithError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	body := map[string]string{"message": message}
	if err != nil {
		body["details"] = err.Error()
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("API Error", "status", status, "message", message, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("API Error", "status", status, "message", message, "path", r.URL.Path, "error", err)
	}
	s.respondWithJSON(w, r, status, map[string]any{"error": body})
}

// respondWithJSON is a helper to send JSON responses.
func (s *Server) respondWithJSON(w http.ResponseWriter, _ *http.Request, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"Failed to marshal response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
