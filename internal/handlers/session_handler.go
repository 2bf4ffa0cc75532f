package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"escapehint/internal/models"
	"escapehint/internal/service"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ThemeID string `json:"themeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ThemeID == "" {
		writeError(w, http.StatusBadRequest, "themeId is required")
		return
	}

	session, err := h.sessionService.CreateSession(req.ThemeID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "session started", session)
}

// Get handles GET /api/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.GetSession(r.PathValue("sessionId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", session)
}

// SubmitHint handles POST /api/sessions/{sessionId}/hints
func (h *SessionHandler) SubmitHint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	redemption, err := h.sessionService.SubmitHint(r.PathValue("sessionId"), req.Code)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	message := "hint unlocked"
	if redemption.AlreadyUsed {
		message = "hint already used"
	}
	writeSuccess(w, http.StatusOK, message, redemption)
}

// End handles POST /api/sessions/{sessionId}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.EndSession(r.PathValue("sessionId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "session ended", session)
}

// Complete handles POST /api/sessions/{sessionId}/complete
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.CompleteSession(r.PathValue("sessionId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "session completed", session)
}

// List handles GET /api/admin/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	status := models.SessionStatus(r.URL.Query().Get("status"))
	if status != "" && !models.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	sessions, err := h.sessionService.ListSessions(status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", sessions)
}

// Delete handles DELETE /api/admin/sessions/{sessionId}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.DeleteSession(r.PathValue("sessionId")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "session deleted", nil)
}

// UsageCount handles GET /api/admin/usage-count. The window defaults
// to the last 24 hours.
func (h *SessionHandler) UsageCount(w http.ResponseWriter, r *http.Request) {
	end := time.Now().UTC()
	start := end.Add(-24 * time.Hour)

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start time")
			return
		}
		start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end time")
			return
		}
		end = t
	}
	if !end.After(start) {
		writeError(w, http.StatusBadRequest, "end must be after start")
		return
	}

	count, err := h.sessionService.CountHintUsagesInWindow(start, end)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", map[string]int{"count": count})
}
