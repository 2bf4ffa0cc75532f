package handlers

import (
	"encoding/json"
	"net/http"

	"escapehint/internal/service"
)

// HintHandler handles hint management endpoints
type HintHandler struct {
	hintService *service.HintService
}

// NewHintHandler creates a new hint handler
func NewHintHandler(hintService *service.HintService) *HintHandler {
	return &HintHandler{hintService: hintService}
}

// ListByTheme handles GET /api/themes/{themeId}/hints
func (h *HintHandler) ListByTheme(w http.ResponseWriter, r *http.Request) {
	hints, err := h.hintService.ListHints(r.PathValue("themeId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", hints)
}

// Create handles POST /api/admin/themes/{themeId}/hints
func (h *HintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateHintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hint, err := h.hintService.CreateHint(r.PathValue("themeId"), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "hint created", hint)
}

// Update handles PUT /api/admin/hints/{hintId}
func (h *HintHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateHintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hint, err := h.hintService.UpdateHint(r.PathValue("hintId"), req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "hint updated", hint)
}

// UpdateOrder handles PATCH /api/admin/hints/{hintId}/order
func (h *HintHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order int `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hint, err := h.hintService.UpdateHintOrder(r.PathValue("hintId"), req.Order)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "hint order updated", hint)
}

// Delete handles DELETE /api/admin/hints/{hintId}
func (h *HintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.hintService.DeleteHint(r.PathValue("hintId")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "hint deleted", nil)
}
