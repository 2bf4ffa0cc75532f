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

// CreateHintRequest carries the fields for a new hint
type CreateHintRequest struct {
	Code         string `json:"code"`
	Content      string `json:"content"`
	Answer       string `json:"answer"`
	ProgressRate int    `json:"progressRate"`
	Order        int    `json:"order"`
}

// UpdateHintRequest carries the fields for a hint update. Nil fields
// are left unchanged.
type UpdateHintRequest struct {
	Code         *string `json:"code"`
	Content      *string `json:"content"`
	Answer       *string `json:"answer"`
	ProgressRate *int    `json:"progressRate"`
	IsActive     *bool   `json:"isActive"`
}

// HintService handles hint management
type HintService struct {
	hints  *repository.HintRepository
	themes *repository.ThemeRepository
	clock  clockwork.Clock
}

// NewHintService creates a new hint service
func NewHintService(hints *repository.HintRepository, themes *repository.ThemeRepository, clock clockwork.Clock) *HintService {
	return &HintService{hints: hints, themes: themes, clock: clock}
}

// CreateHint adds a hint to a theme. Codes are stored uppercase and
// must be unique within the theme.
func (s *HintService) CreateHint(themeID string, req CreateHintRequest) (*models.Hint, error) {
	theme, err := s.themes.GetByID(themeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}

	if err := validation.ValidateHintCode(req.Code); err != nil {
		return nil, err
	}
	if err := validation.ValidateHintContent(req.Content); err != nil {
		return nil, err
	}
	if err := validation.ValidateHintAnswer(req.Answer); err != nil {
		return nil, err
	}
	if err := validation.ValidateProgressRate(req.ProgressRate); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	existing, err := s.hints.GetByThemeAndCode(themeID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check hint code: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	now := s.clock.Now().UTC()
	hint := &models.Hint{
		ID:           uuid.New().String(),
		ThemeID:      themeID,
		Code:         code,
		Content:      req.Content,
		Answer:       req.Answer,
		ProgressRate: req.ProgressRate,
		Order:        req.Order,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.hints.Create(hint); err != nil {
		return nil, fmt.Errorf("failed to create hint: %w", err)
	}
	return hint, nil
}

// GetHint retrieves a hint by ID
func (s *HintService) GetHint(id string) (*models.Hint, error) {
	hint, err := s.hints.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hint: %w", err)
	}
	if hint == nil {
		return nil, ErrHintNotFound
	}
	return hint, nil
}

// ListHints retrieves the hints of a theme in display order
func (s *HintService) ListHints(themeID string) ([]models.Hint, error) {
	theme, err := s.themes.GetByID(themeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}
	hints, err := s.hints.ListByTheme(themeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hints: %w", err)
	}
	return hints, nil
}

// UpdateHint applies a partial update to a hint. Renaming a code keeps
// the uniqueness check within the hint's theme.
func (s *HintService) UpdateHint(id string, req UpdateHintRequest) (*models.Hint, error) {
	hint, err := s.hints.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hint: %w", err)
	}
	if hint == nil {
		return nil, ErrHintNotFound
	}

	if req.Code != nil {
		if err := validation.ValidateHintCode(*req.Code); err != nil {
			return nil, err
		}
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if code != hint.Code {
			existing, err := s.hints.GetByThemeAndCode(hint.ThemeID, code)
			if err != nil {
				return nil, fmt.Errorf("failed to check hint code: %w", err)
			}
			if existing != nil && existing.ID != hint.ID {
				return nil, ErrDuplicateCode
			}
		}
		hint.Code = code
	}
	if req.Content != nil {
		if err := validation.ValidateHintContent(*req.Content); err != nil {
			return nil, err
		}
		hint.Content = *req.Content
	}
	if req.Answer != nil {
		if err := validation.ValidateHintAnswer(*req.Answer); err != nil {
			return nil, err
		}
		hint.Answer = *req.Answer
	}
	if req.ProgressRate != nil {
		if err := validation.ValidateProgressRate(*req.ProgressRate); err != nil {
			return nil, err
		}
		hint.ProgressRate = *req.ProgressRate
	}
	if req.IsActive != nil {
		hint.IsActive = *req.IsActive
	}

	hint.UpdatedAt = s.clock.Now().UTC()
	if err := s.hints.Update(hint); err != nil {
		return nil, fmt.Errorf("failed to update hint: %w", err)
	}
	return hint, nil
}

// UpdateHintOrder moves a hint to a new position in its theme's
// display order
func (s *HintService) UpdateHintOrder(id string, order int) (*models.Hint, error) {
	hint, err := s.hints.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hint: %w", err)
	}
	if hint == nil {
		return nil, ErrHintNotFound
	}

	now := s.clock.Now().UTC()
	if err := s.hints.UpdateOrder(id, order, now); err != nil {
		return nil, fmt.Errorf("failed to update hint order: %w", err)
	}
	hint.Order = order
	hint.UpdatedAt = now
	return hint, nil
}

// DeleteHint removes a hint
func (s *HintService) DeleteHint(id string) error {
	hint, err := s.hints.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get hint: %w", err)
	}
	if hint == nil {
		return ErrHintNotFound
	}
	if err := s.hints.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hint: %w", err)
	}
	return nil
}
