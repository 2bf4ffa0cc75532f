package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"escapehint/internal/service"
	"escapehint/internal/validation"
)

// respondWithServiceError maps service layer errors to HTTP statuses.
// Unrecognized errors are logged and reported as internal errors
// without leaking detail.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var vErr validation.ValidationError
	switch {
	case errors.Is(err, service.ErrThemeNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrHintNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrHintThemeMismatch),
		errors.Is(err, service.ErrHintInactive):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrDuplicateThemeName),
		errors.Is(err, service.ErrThemeHasActiveSessions),
		errors.Is(err, service.ErrSessionAlreadyTerminal):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
