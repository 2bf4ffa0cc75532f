package repository

import (
	"database/sql"
	"time"

	"escapehint/internal/database"
	"escapehint/internal/models"
)

const hintColumns = "id, theme_id, code, content, answer, progress_rate, sort_order, is_active, created_at, updated_at"

// HintRepository handles hint database operations
type HintRepository struct {
	q database.DBTX
}

// NewHintRepository creates a new hint repository
func NewHintRepository(db *database.DB) *HintRepository {
	return &HintRepository{q: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *HintRepository) WithTx(tx *database.Tx) *HintRepository {
	return &HintRepository{q: tx}
}

// Create inserts a new hint
func (r *HintRepository) Create(hint *models.Hint) error {
	query := `
		INSERT INTO hints (` + hintColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.q.Exec(query,
		hint.ID,
		hint.ThemeID,
		hint.Code,
		hint.Content,
		hint.Answer,
		hint.ProgressRate,
		hint.Order,
		hint.IsActive,
		hint.CreatedAt,
		hint.UpdatedAt,
	)
	return err
}

// GetByID retrieves a hint by ID, or nil if it does not exist
func (r *HintRepository) GetByID(id string) (*models.Hint, error) {
	query := "SELECT " + hintColumns + " FROM hints WHERE id = ?"
	return scanHint(r.q.QueryRow(query, id))
}

// GetByCode retrieves a hint by its code across all themes, or nil if
// no hint carries the code. Codes are stored uppercase.
func (r *HintRepository) GetByCode(code string) (*models.Hint, error) {
	query := "SELECT " + hintColumns + " FROM hints WHERE code = ?"
	return scanHint(r.q.QueryRow(query, code))
}

// GetByThemeAndCode retrieves a hint by theme and code, or nil if it
// does not exist
func (r *HintRepository) GetByThemeAndCode(themeID, code string) (*models.Hint, error) {
	query := "SELECT " + hintColumns + " FROM hints WHERE theme_id = ? AND code = ?"
	return scanHint(r.q.QueryRow(query, themeID, code))
}

// ListByTheme retrieves the hints of a theme in display order
func (r *HintRepository) ListByTheme(themeID string) ([]models.Hint, error) {
	query := "SELECT " + hintColumns + " FROM hints WHERE theme_id = ? ORDER BY sort_order ASC, created_at ASC"
	rows, err := r.q.Query(query, themeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hints []models.Hint
	for rows.Next() {
		var h models.Hint
		err := rows.Scan(
			&h.ID,
			&h.ThemeID,
			&h.Code,
			&h.Content,
			&h.Answer,
			&h.ProgressRate,
			&h.Order,
			&h.IsActive,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		hints = append(hints, h)
	}

	return hints, rows.Err()
}

// Update overwrites the mutable fields of a hint
func (r *HintRepository) Update(hint *models.Hint) error {
	query := `
		UPDATE hints
		SET code = ?, content = ?, answer = ?, progress_rate = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.q.Exec(query,
		hint.Code,
		hint.Content,
		hint.Answer,
		hint.ProgressRate,
		hint.IsActive,
		hint.UpdatedAt,
		hint.ID,
	)
	return err
}

// UpdateOrder moves a hint to a new position in its theme's display order
func (r *HintRepository) UpdateOrder(id string, order int, updatedAt time.Time) error {
	_, err := r.q.Exec("UPDATE hints SET sort_order = ?, updated_at = ? WHERE id = ?", order, updatedAt, id)
	return err
}

// Delete removes a hint
func (r *HintRepository) Delete(id string) error {
	_, err := r.q.Exec("DELETE FROM hints WHERE id = ?", id)
	return err
}

func scanHint(row *sql.Row) (*models.Hint, error) {
	hint := &models.Hint{}
	err := row.Scan(
		&hint.ID,
		&hint.ThemeID,
		&hint.Code,
		&hint.Content,
		&hint.Answer,
		&hint.ProgressRate,
		&hint.Order,
		&hint.IsActive,
		&hint.CreatedAt,
		&hint.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return hint, nil
}
