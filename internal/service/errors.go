package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes.
var (
	ErrThemeNotFound          = errors.New("theme not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrHintNotFound           = errors.New("hint not found")
	ErrHintThemeMismatch      = errors.New("hint does not belong to the session's theme")
	ErrHintInactive           = errors.New("hint is not active")
	ErrDuplicateCode          = errors.New("hint code already exists in theme")
	ErrDuplicateThemeName     = errors.New("theme name already exists")
	ErrThemeHasActiveSessions = errors.New("theme has sessions in progress")
	ErrSessionAlreadyTerminal = errors.New("session has already ended")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)
