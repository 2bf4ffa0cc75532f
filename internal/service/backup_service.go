package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"escapehint/internal/database"
	"escapehint/internal/models"
)

// BackupData is the on-disk backup format, portable across database
// dialects
type BackupData struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Themes     []models.Theme     `json:"themes"`
	Hints      []models.Hint      `json:"hints"`
	Sessions   []sessionBackup    `json:"sessions"`
	Usages     []models.HintUsage `json:"usages"`
}

type sessionBackup struct {
	ID            string               `json:"id"`
	ThemeID       string               `json:"themeId"`
	StartTime     time.Time            `json:"startTime"`
	EndTime       *time.Time           `json:"endTime"`
	Status        models.SessionStatus `json:"status"`
	UsedHintCount int                  `json:"usedHintCount"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Info().Msg("starting database export")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
	}

	if err := s.exportThemes(backup); err != nil {
		return fmt.Errorf("failed to export themes: %w", err)
	}
	if err := s.exportHints(backup); err != nil {
		return fmt.Errorf("failed to export hints: %w", err)
	}
	if err := s.exportSessions(backup); err != nil {
		return fmt.Errorf("failed to export sessions: %w", err)
	}
	if err := s.exportUsages(backup); err != nil {
		return fmt.Errorf("failed to export usages: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Info().
		Str("path", outputPath).
		Int("themes", len(backup.Themes)).
		Int("hints", len(backup.Hints)).
		Int("sessions", len(backup.Sessions)).
		Int("usages", len(backup.Usages)).
		Msg("database exported")
	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup stream. Import
// runs in a single transaction so a malformed backup cannot leave the
// database half restored.
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Info().
		Str("version", backup.Version).
		Time("exportedAt", backup.ExportedAt).
		Msg("starting database import")

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Insert in dependency order
	for _, t := range backup.Themes {
		_, err := tx.Exec(
			"INSERT INTO themes (id, name, description, difficulty, play_time, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			t.ID, t.Name, t.Description, t.Difficulty, t.PlayTime, t.IsActive, t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import theme %s: %w", t.ID, err)
		}
	}
	for _, h := range backup.Hints {
		_, err := tx.Exec(
			"INSERT INTO hints (id, theme_id, code, content, answer, progress_rate, sort_order, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			h.ID, h.ThemeID, h.Code, h.Content, h.Answer, h.ProgressRate, h.Order, h.IsActive, h.CreatedAt, h.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import hint %s: %w", h.ID, err)
		}
	}
	for _, sess := range backup.Sessions {
		_, err := tx.Exec(
			"INSERT INTO game_sessions (id, theme_id, start_time, end_time, status, used_hint_count, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sess.ID, sess.ThemeID, sess.StartTime, sess.EndTime, sess.Status, sess.UsedHintCount, sess.CreatedAt, sess.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import session %s: %w", sess.ID, err)
		}
	}
	for _, u := range backup.Usages {
		_, err := tx.Exec(
			"INSERT INTO hint_usages (session_id, hint_id, used_at) VALUES (?, ?, ?)",
			u.SessionID, u.HintID, u.UsedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to import usage %s/%s: %w", u.SessionID, u.HintID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Info().Msg("database import completed")
	return nil
}

// Clear removes all data. Used with import -clear to restore into a
// clean database.
func (s *BackupService) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Reverse dependency order
	for _, table := range []string{"hint_usages", "game_sessions", "hints", "themes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func (s *BackupService) exportThemes(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, name, description, difficulty, play_time, is_active, created_at, updated_at FROM themes ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Theme
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Difficulty, &t.PlayTime, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return err
		}
		backup.Themes = append(backup.Themes, t)
	}
	return rows.Err()
}

func (s *BackupService) exportHints(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, theme_id, code, content, answer, progress_rate, sort_order, is_active, created_at, updated_at FROM hints ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Hint
		if err := rows.Scan(&h.ID, &h.ThemeID, &h.Code, &h.Content, &h.Answer, &h.ProgressRate, &h.Order, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return err
		}
		backup.Hints = append(backup.Hints, h)
	}
	return rows.Err()
}

func (s *BackupService) exportSessions(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, theme_id, start_time, end_time, status, used_hint_count, created_at, updated_at FROM game_sessions ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sess sessionBackup
		if err := rows.Scan(&sess.ID, &sess.ThemeID, &sess.StartTime, &sess.EndTime, &sess.Status, &sess.UsedHintCount, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
			return err
		}
		backup.Sessions = append(backup.Sessions, sess)
	}
	return rows.Err()
}

func (s *BackupService) exportUsages(backup *BackupData) error {
	rows, err := s.db.Query("SELECT session_id, hint_id, used_at FROM hint_usages ORDER BY session_id, hint_id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u models.HintUsage
		if err := rows.Scan(&u.SessionID, &u.HintID, &u.UsedAt); err != nil {
			return err
		}
		backup.Usages = append(backup.Usages, u)
	}
	return rows.Err()
}
