package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"escapehint/internal/models"
	"escapehint/internal/repository"
	"escapehint/internal/validation"
)

// CreateThemeRequest carries the fields for a new theme
type CreateThemeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	PlayTime    int    `json:"playTime"`
}

// UpdateThemeRequest carries the fields for a theme update. Nil fields
// are left unchanged.
type UpdateThemeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty"`
	PlayTime    *int    `json:"playTime"`
	IsActive    *bool   `json:"isActive"`
}

// ThemeService handles theme management
type ThemeService struct {
	themes   *repository.ThemeRepository
	sessions *repository.SessionRepository
	clock    clockwork.Clock
}

// NewThemeService creates a new theme service
func NewThemeService(themes *repository.ThemeRepository, sessions *repository.SessionRepository, clock clockwork.Clock) *ThemeService {
	return &ThemeService{themes: themes, sessions: sessions, clock: clock}
}

// CreateTheme creates a new theme. Names must be unique ignoring case.
func (s *ThemeService) CreateTheme(req CreateThemeRequest) (*models.Theme, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateThemeName(req.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidatePlayTime(req.PlayTime); err != nil {
		return nil, err
	}

	existing, err := s.themes.GetByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check theme name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateThemeName
	}

	now := s.clock.Now().UTC()
	theme := &models.Theme{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		PlayTime:    req.PlayTime,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.themes.Create(theme); err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}
	return theme, nil
}

// GetTheme retrieves a theme by ID
func (s *ThemeService) GetTheme(id string) (*models.Theme, error) {
	theme, err := s.themes.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}
	return theme, nil
}

// ListThemes retrieves themes with hint counts, optionally only active ones
func (s *ThemeService) ListThemes(activeOnly bool) ([]models.ThemeWithHintCount, error) {
	themes, err := s.themes.List(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return themes, nil
}

// UpdateTheme applies a partial update to a theme
func (s *ThemeService) UpdateTheme(id string, req UpdateThemeRequest) (*models.Theme, error) {
	theme, err := s.themes.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validation.ValidateThemeName(name); err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, theme.Name) {
			existing, err := s.themes.GetByName(name)
			if err != nil {
				return nil, fmt.Errorf("failed to check theme name: %w", err)
			}
			if existing != nil && existing.ID != theme.ID {
				return nil, ErrDuplicateThemeName
			}
		}
		theme.Name = name
	}
	if req.Description != nil {
		theme.Description = *req.Description
	}
	if req.Difficulty != nil {
		theme.Difficulty = *req.Difficulty
	}
	if req.PlayTime != nil {
		if err := validation.ValidatePlayTime(*req.PlayTime); err != nil {
			return nil, err
		}
		theme.PlayTime = *req.PlayTime
	}
	if req.IsActive != nil {
		theme.IsActive = *req.IsActive
	}

	theme.UpdatedAt = s.clock.Now().UTC()
	if err := s.themes.Update(theme); err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}
	return theme, nil
}

// DeleteTheme removes a theme and its hints. Themes with sessions
// still in progress cannot be deleted.
func (s *ThemeService) DeleteTheme(id string) error {
	theme, err := s.themes.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return ErrThemeNotFound
	}

	inProgress, err := s.sessions.CountInProgressByTheme(id)
	if err != nil {
		return fmt.Errorf("failed to count sessions: %w", err)
	}
	if inProgress > 0 {
		return ErrThemeHasActiveSessions
	}

	if err := s.themes.Delete(id); err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	return nil
}
