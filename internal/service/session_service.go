package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"escapehint/internal/database"
	"escapehint/internal/models"
	"escapehint/internal/repository"
)

// SessionService handles game session lifecycle and hint redemption
type SessionService struct {
	db       *database.DB
	sessions *repository.SessionRepository
	hints    *repository.HintRepository
	themes   *repository.ThemeRepository
	clock    clockwork.Clock
}

// NewSessionService creates a new session service
func NewSessionService(db *database.DB, sessions *repository.SessionRepository, hints *repository.HintRepository, themes *repository.ThemeRepository, clock clockwork.Clock) *SessionService {
	return &SessionService{
		db:       db,
		sessions: sessions,
		hints:    hints,
		themes:   themes,
		clock:    clock,
	}
}

// CreateSession starts a new game session for a theme. The start time
// is stamped server side.
func (s *SessionService) CreateSession(themeID string) (*models.SessionWithTheme, error) {
	theme, err := s.themes.GetByID(themeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}

	now := s.clock.Now().UTC()
	session := &models.GameSession{
		ID:            uuid.New().String(),
		ThemeID:       theme.ID,
		StartTime:     now,
		Status:        models.StatusInProgress,
		UsedHintCount: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.SessionWithTheme{
		GameSession: *session,
		Theme:       theme.Summary(),
	}, nil
}

// GetSession retrieves a session and its theme summary
func (s *SessionService) GetSession(sessionID string) (*models.SessionWithTheme, error) {
	session, err := s.sessions.GetWithTheme(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ListSessions retrieves sessions newest first, optionally filtered by status
func (s *SessionService) ListSessions(status models.SessionStatus) ([]models.SessionWithTheme, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid session status %q", status)
	}
	sessions, err := s.sessions.List(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// SubmitHint redeems a hint code for a session. The whole redemption
// runs in one transaction so concurrent submissions of the same code
// cannot double-count. Resubmitting an already used code is not an
// error: it returns the hint again with AlreadyUsed set.
func (s *SessionService) SubmitHint(sessionID, code string) (*models.HintRedemption, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sessions := s.sessions.WithTx(tx)
	hints := s.hints.WithTx(tx)

	session, err := sessions.GetForUpdate(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	// Codes are unique per theme, so resolve within the session's
	// theme first and only then distinguish an unknown code from one
	// belonging to a different theme
	hint, err := hints.GetByThemeAndCode(session.ThemeID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up hint code: %w", err)
	}
	if hint == nil {
		elsewhere, err := hints.GetByCode(code)
		if err != nil {
			return nil, fmt.Errorf("failed to look up hint code: %w", err)
		}
		if elsewhere != nil {
			return nil, ErrHintThemeMismatch
		}
		return nil, ErrHintNotFound
	}
	if !hint.IsActive {
		return nil, ErrHintInactive
	}

	used, err := sessions.UsageExists(session.ID, hint.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check hint usage: %w", err)
	}
	if !used {
		now := s.clock.Now().UTC()
		if err := sessions.InsertUsage(session.ID, hint.ID, now); err != nil {
			return nil, fmt.Errorf("failed to record hint usage: %w", err)
		}
		if err := sessions.IncrementUsedHintCount(session.ID, now); err != nil {
			return nil, fmt.Errorf("failed to update hint count: %w", err)
		}
	}

	progress, err := sessions.MaxUsedProgressRate(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &models.HintRedemption{
		Hint:         *hint,
		ProgressRate: progress,
		AlreadyUsed:  used,
	}, nil
}

// CompleteSession marks an in-progress session as completed
func (s *SessionService) CompleteSession(sessionID string) (*models.GameSession, error) {
	return s.terminate(sessionID, models.StatusCompleted)
}

// EndSession marks an in-progress session as aborted
func (s *SessionService) EndSession(sessionID string) (*models.GameSession, error) {
	return s.terminate(sessionID, models.StatusAborted)
}

func (s *SessionService) terminate(sessionID string, status models.SessionStatus) (*models.GameSession, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sessions := s.sessions.WithTx(tx)

	session, err := sessions.GetForUpdate(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsTerminal() {
		return nil, ErrSessionAlreadyTerminal
	}

	endTime := s.clock.Now().UTC()
	if err := sessions.Terminate(session.ID, status, endTime); err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	session.Status = status
	session.EndTime = &endTime
	session.UpdatedAt = endTime
	return session, nil
}

// DeleteSession removes a session and its usage records
func (s *SessionService) DeleteSession(sessionID string) error {
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CountHintUsagesInWindow counts hint redemptions recorded in the half
// open interval [start, end)
func (s *SessionService) CountHintUsagesInWindow(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	count, err := s.sessions.CountUsagesInWindow(start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count hint usages: %w", err)
	}
	return count, nil
}
