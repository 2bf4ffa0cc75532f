package handlers

import (
	"encoding/json"
	"net/http"

	"escapehint/internal/service"
)

// ThemeHandler handles theme endpoints
type ThemeHandler struct {
	themeService *service.ThemeService
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeService *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// ListActive handles GET /api/themes
func (h *ThemeHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	themes, err := h.themeService.ListThemes(true)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", themes)
}

// List handles GET /api/admin/themes
func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	themes, err := h.themeService.ListThemes(false)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", themes)
}

// Create handles POST /api/admin/themes
func (h *ThemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	theme, err := h.themeService.CreateTheme(req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "theme created", theme)
}

// Update handles PUT /api/admin/themes/{themeId}
func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	theme, err := h.themeService.UpdateTheme(r.PathValue("themeId"), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "theme updated", theme)
}

// Delete handles DELETE /api/admin/themes/{themeId}
func (h *ThemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.themeService.DeleteTheme(r.PathValue("themeId")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "theme deleted", nil)
}
