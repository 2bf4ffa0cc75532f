package repository

import (
	"database/sql"

	"escapehint/internal/database"
	"escapehint/internal/models"
)

// ThemeRepository handles theme database operations
type ThemeRepository struct {
	q database.DBTX
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(db *database.DB) *ThemeRepository {
	return &ThemeRepository{q: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ThemeRepository) WithTx(tx *database.Tx) *ThemeRepository {
	return &ThemeRepository{q: tx}
}

// Create inserts a new theme
func (r *ThemeRepository) Create(theme *models.Theme) error {
	query := `
		INSERT INTO themes (id, name, description, difficulty, play_time, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.q.Exec(query,
		theme.ID,
		theme.Name,
		theme.Description,
		theme.Difficulty,
		theme.PlayTime,
		theme.IsActive,
		theme.CreatedAt,
		theme.UpdatedAt,
	)
	return err
}

// GetByID retrieves a theme by ID, or nil if it does not exist
func (r *ThemeRepository) GetByID(id string) (*models.Theme, error) {
	query := `
		SELECT id, name, description, difficulty, play_time, is_active, created_at, updated_at
		FROM themes
		WHERE id = ?
	`
	return r.scanOne(r.q.QueryRow(query, id))
}

// GetByName retrieves a theme by name, compared case-insensitively,
// or nil if it does not exist
func (r *ThemeRepository) GetByName(name string) (*models.Theme, error) {
	query := `
		SELECT id, name, description, difficulty, play_time, is_active, created_at, updated_at
		FROM themes
		WHERE LOWER(name) = LOWER(?)
	`
	return r.scanOne(r.q.QueryRow(query, name))
}

// List retrieves all themes with their hint counts, optionally only active ones
func (r *ThemeRepository) List(activeOnly bool) ([]models.ThemeWithHintCount, error) {
	query := `
		SELECT t.id, t.name, t.description, t.difficulty, t.play_time, t.is_active,
		       t.created_at, t.updated_at, COUNT(h.id)
		FROM themes t
		LEFT JOIN hints h ON h.theme_id = t.id
	`
	if activeOnly {
		query += " WHERE t.is_active = ?"
	}
	query += " GROUP BY t.id, t.name, t.description, t.difficulty, t.play_time, t.is_active, t.created_at, t.updated_at ORDER BY t.name ASC"

	var (
		rows *sql.Rows
		err  error
	)
	if activeOnly {
		rows, err = r.q.Query(query, true)
	} else {
		rows, err = r.q.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []models.ThemeWithHintCount
	for rows.Next() {
		var t models.ThemeWithHintCount
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.Difficulty,
			&t.PlayTime,
			&t.IsActive,
			&t.CreatedAt,
			&t.UpdatedAt,
			&t.HintCount,
		)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}

	return themes, rows.Err()
}

// Update overwrites the mutable fields of a theme
func (r *ThemeRepository) Update(theme *models.Theme) error {
	query := `
		UPDATE themes
		SET name = ?, description = ?, difficulty = ?, play_time = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.q.Exec(query,
		theme.Name,
		theme.Description,
		theme.Difficulty,
		theme.PlayTime,
		theme.IsActive,
		theme.UpdatedAt,
		theme.ID,
	)
	return err
}

// Delete removes a theme; hints cascade in storage
func (r *ThemeRepository) Delete(id string) error {
	_, err := r.q.Exec("DELETE FROM themes WHERE id = ?", id)
	return err
}

func (r *ThemeRepository) scanOne(row *sql.Row) (*models.Theme, error) {
	theme := &models.Theme{}
	err := row.Scan(
		&theme.ID,
		&theme.Name,
		&theme.Description,
		&theme.Difficulty,
		&theme.PlayTime,
		&theme.IsActive,
		&theme.CreatedAt,
		&theme.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return theme, nil
}
