package models

import "time"

// Theme represents a single escape-room game definition
type Theme struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	PlayTime    int       `json:"playTime"` // allotted play time in minutes
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ThemeSummary is the subset of theme fields a player needs to render
// a session and drive the countdown timer
type ThemeSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PlayTime   int    `json:"playTime"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Summary returns the player-facing projection of the theme
func (t *Theme) Summary() ThemeSummary {
	return ThemeSummary{
		ID:         t.ID,
		Name:       t.Name,
		PlayTime:   t.PlayTime,
		Difficulty: t.Difficulty,
	}
}

// ThemeWithHintCount extends Theme with the number of hints defined for it
type ThemeWithHintCount struct {
	Theme
	HintCount int `json:"hintCount"`
}
