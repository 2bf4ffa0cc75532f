package models

import "time"

// Hint represents a redeemable clue belonging to a theme. Codes are stored
// uppercased and are unique within a theme, not globally.
type Hint struct {
	ID           string    `json:"id"`
	ThemeID      string    `json:"themeId"`
	Code         string    `json:"code"`
	Content      string    `json:"content"`
	Answer       string    `json:"answer"`
	ProgressRate int       `json:"progressRate"` // progress attained once this hint is used, 0-100
	Order        int       `json:"order"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HintUsage records that a hint was redeemed in a session.
// At most one usage exists per (session, hint) pair.
type HintUsage struct {
	SessionID string    `json:"sessionId"`
	HintID    string    `json:"hintId"`
	UsedAt    time.Time `json:"usedAt"`
}

// HintRedemption is the outcome of submitting a hint code against a session
type HintRedemption struct {
	Hint         Hint `json:"hint"`
	ProgressRate int  `json:"progressRate"` // maximum progress across all used hints
	AlreadyUsed  bool `json:"alreadyUsed"`
}
