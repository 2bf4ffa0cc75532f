package repository

import (
	"database/sql"
	"time"

	"escapehint/internal/database"
	"escapehint/internal/models"
)

// SessionRepository handles game session database operations
type SessionRepository struct {
	q database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{q: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SessionRepository) WithTx(tx *database.Tx) *SessionRepository {
	return &SessionRepository{q: tx}
}

// Create inserts a new game session
func (r *SessionRepository) Create(session *models.GameSession) error {
	query := `
		INSERT INTO game_sessions (id, theme_id, start_time, end_time, status, used_hint_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.q.Exec(query,
		session.ID,
		session.ThemeID,
		session.StartTime,
		session.EndTime,
		session.Status,
		session.UsedHintCount,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

// GetByID retrieves a session by ID, or nil if it does not exist
func (r *SessionRepository) GetByID(id string) (*models.GameSession, error) {
	query := `
		SELECT id, theme_id, start_time, end_time, status, used_hint_count, created_at, updated_at
		FROM game_sessions
		WHERE id = ?
	`
	return r.scanOne(r.q.QueryRow(query, id))
}

// GetForUpdate retrieves a session by ID while holding a row lock for
// the remainder of the transaction on dialects that support one
func (r *SessionRepository) GetForUpdate(id string) (*models.GameSession, error) {
	query := `
		SELECT id, theme_id, start_time, end_time, status, used_hint_count, created_at, updated_at
		FROM game_sessions
		WHERE id = ?
	` + r.q.GetDialect().RowLockSuffix()
	return r.scanOne(r.q.QueryRow(query, id))
}

// GetWithTheme retrieves a session joined with its theme summary, or
// nil if the session does not exist
func (r *SessionRepository) GetWithTheme(id string) (*models.SessionWithTheme, error) {
	query := `
		SELECT s.id, s.theme_id, s.start_time, s.end_time, s.status, s.used_hint_count,
		       s.created_at, s.updated_at, t.id, t.name, t.play_time, t.difficulty
		FROM game_sessions s
		JOIN themes t ON t.id = s.theme_id
		WHERE s.id = ?
	`
	row := r.q.QueryRow(query, id)

	var (
		s       models.SessionWithTheme
		endTime sql.NullTime
	)
	err := row.Scan(
		&s.ID,
		&s.ThemeID,
		&s.StartTime,
		&endTime,
		&s.Status,
		&s.UsedHintCount,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.Theme.ID,
		&s.Theme.Name,
		&s.Theme.PlayTime,
		&s.Theme.Difficulty,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		s.EndTime = &endTime.Time
	}
	return &s, nil
}

// List retrieves sessions joined with their theme summaries, newest
// first, optionally filtered by status
func (r *SessionRepository) List(status models.SessionStatus) ([]models.SessionWithTheme, error) {
	query := `
		SELECT s.id, s.theme_id, s.start_time, s.end_time, s.status, s.used_hint_count,
		       s.created_at, s.updated_at, t.id, t.name, t.play_time, t.difficulty
		FROM game_sessions s
		JOIN themes t ON t.id = s.theme_id
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE s.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY s.start_time DESC"

	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.SessionWithTheme
	for rows.Next() {
		var (
			s       models.SessionWithTheme
			endTime sql.NullTime
		)
		err := rows.Scan(
			&s.ID,
			&s.ThemeID,
			&s.StartTime,
			&endTime,
			&s.Status,
			&s.UsedHintCount,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.Theme.ID,
			&s.Theme.Name,
			&s.Theme.PlayTime,
			&s.Theme.Difficulty,
		)
		if err != nil {
			return nil, err
		}
		if endTime.Valid {
			s.EndTime = &endTime.Time
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Terminate moves a session into a terminal status and stamps its end time
func (r *SessionRepository) Terminate(id string, status models.SessionStatus, endTime time.Time) error {
	query := `
		UPDATE game_sessions
		SET status = ?, end_time = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.q.Exec(query, status, endTime, endTime, id)
	return err
}

// Delete removes a session; its usage rows cascade in storage
func (r *SessionRepository) Delete(id string) error {
	_, err := r.q.Exec("DELETE FROM game_sessions WHERE id = ?", id)
	return err
}

// UsageExists reports whether the session has already used the hint
func (r *SessionRepository) UsageExists(sessionID, hintID string) (bool, error) {
	var count int
	err := r.q.QueryRow(
		"SELECT COUNT(*) FROM hint_usages WHERE session_id = ? AND hint_id = ?",
		sessionID, hintID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertUsage records that the session used the hint at the given time
func (r *SessionRepository) InsertUsage(sessionID, hintID string, usedAt time.Time) error {
	_, err := r.q.Exec(
		"INSERT INTO hint_usages (session_id, hint_id, used_at) VALUES (?, ?, ?)",
		sessionID, hintID, usedAt,
	)
	return err
}

// IncrementUsedHintCount bumps the session's used hint counter
func (r *SessionRepository) IncrementUsedHintCount(id string, updatedAt time.Time) error {
	_, err := r.q.Exec(
		"UPDATE game_sessions SET used_hint_count = used_hint_count + 1, updated_at = ? WHERE id = ?",
		updatedAt, id,
	)
	return err
}

// MaxUsedProgressRate returns the highest progress rate among the
// hints the session has used, or zero when none have been used
func (r *SessionRepository) MaxUsedProgressRate(sessionID string) (int, error) {
	var progress int
	err := r.q.QueryRow(`
		SELECT COALESCE(MAX(h.progress_rate), 0)
		FROM hint_usages u
		JOIN hints h ON h.id = u.hint_id
		WHERE u.session_id = ?
	`, sessionID).Scan(&progress)
	return progress, err
}

// CountUsagesInWindow counts hint usages recorded in [start, end)
func (r *SessionRepository) CountUsagesInWindow(start, end time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(
		"SELECT COUNT(*) FROM hint_usages WHERE used_at >= ? AND used_at < ?",
		start, end,
	).Scan(&count)
	return count, err
}

// CountInProgressByTheme counts the theme's sessions still in progress
func (r *SessionRepository) CountInProgressByTheme(themeID string) (int, error) {
	var count int
	err := r.q.QueryRow(
		"SELECT COUNT(*) FROM game_sessions WHERE theme_id = ? AND status = ?",
		themeID, models.StatusInProgress,
	).Scan(&count)
	return count, err
}

func (r *SessionRepository) scanOne(row *sql.Row) (*models.GameSession, error) {
	var (
		session models.GameSession
		endTime sql.NullTime
	)
	err := row.Scan(
		&session.ID,
		&session.ThemeID,
		&session.StartTime,
		&endTime,
		&session.Status,
		&session.UsedHintCount,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		session.EndTime = &endTime.Time
	}
	return &session, nil
}
