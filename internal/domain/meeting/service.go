package meeting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

// Service handles meeting scheduling and completion.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new meeting service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ScheduleRequest describes a meeting scheduling request.
type ScheduleRequest struct {
	StartupID   string
	Kind        Kind
	ScheduledOn time.Time
	TimeSlot    string
	Notes       string
}

// Schedule creates a new meeting.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (*Meeting, error) {
	if req.StartupID == "" || req.ScheduledOn.IsZero() {
		return nil, ErrInvalidInput
	}
	if !req.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	m := &Meeting{
		ID:          uuid.NewString(),
		StartupID:   req.StartupID,
		Kind:        req.Kind,
		ScheduledOn: req.ScheduledOn,
		TimeSlot:    req.TimeSlot,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, startup.ErrNotFound
		}
		return nil, fmt.Errorf("scheduling meeting: %w", err)
	}

	return m, nil
}

// Complete marks a meeting as held and snapshots the startup's stage.
func (s *Service) Complete(ctx context.Context, id string, completedAt time.Time, stageSnapshot startup.Stage) (*Meeting, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading meeting: %w", err)
	}

	if m.Completed() {
		return nil, ErrAlreadyCompleted
	}

	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	m.CompletedAt = &completedAt
	if stageSnapshot != "" {
		if !stageSnapshot.Valid() {
			return nil, startup.ErrInvalidStage
		}
		m.StageAtCompletion = &stageSnapshot
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("completing meeting: %w", err)
	}

	return m, nil
}

// Get returns a meeting by ID.
func (s *Service) Get(ctx context.Context, id string) (*Meeting, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting meeting: %w", err)
	}
	return m, nil
}

// Delete removes a meeting.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting meeting: %w", err)
	}
	return nil
}

// ListByStartup returns a startup's meetings, optionally filtered by kind.
func (s *Service) ListByStartup(ctx context.Context, startupID string, kind Kind) ([]Meeting, error) {
	if kind != "" && !kind.Valid() {
		return nil, ErrInvalidKind
	}
	return s.repo.ListByStartup(ctx, startupID, kind)
}
