package models

import "time"

// SessionStatus is the lifecycle state of a game session
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAborted    SessionStatus = "aborted"
)

// ValidStatus reports whether s is a known session status
func ValidStatus(s SessionStatus) bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusAborted:
		return true
	}
	return false
}

// GameSession represents one player's timed attempt at a theme.
// StartTime is server-assigned and immutable; it anchors all timer
// reconciliation on the client.
type GameSession struct {
	ID            string        `json:"id"`
	ThemeID       string        `json:"themeId"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       *time.Time    `json:"endTime"`
	Status        SessionStatus `json:"status"`
	UsedHintCount int           `json:"usedHintCount"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// IsTerminal reports whether the session has left the in_progress state
func (s *GameSession) IsTerminal() bool {
	return s.Status != StatusInProgress
}

// SessionWithTheme joins a session with the theme summary the client needs
// to render and to re-derive its countdown after a reload
type SessionWithTheme struct {
	GameSession
	Theme ThemeSummary `json:"theme"`
}
