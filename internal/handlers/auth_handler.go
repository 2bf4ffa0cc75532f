package handlers

import (
	"encoding/json"
	"net/http"

	"escapehint/internal/service"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/admin/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "login successful", map[string]string{"token": token})
}

// Verify handles GET /api/admin/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "token valid", map[string]string{"role": "admin"})
}
