package startup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seedbed/incubator/internal/repository"
)

// Service handles startup business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new startup service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes a startup creation request.
type CreateRequest struct {
	Name            string
	Founder         string
	Email           string
	Phone           string
	Sector          string
	Stage           Stage
	FundingAmount   float64
	AnnualRevenue   float64
	Employees       int
	Description     string
	RecognitionDate *time.Time
	OnboardedDate   *time.Time
	GraduationDate  *time.Time
}

// UpdateRequest describes a startup update request. Nil fields are left unchanged.
type UpdateRequest struct {
	ID              string
	Name            *string
	Founder         *string
	Email           *string
	Phone           *string
	Sector          *string
	FundingAmount   *float64
	AnnualRevenue   *float64
	Employees       *int
	Description     *string
	RecognitionDate *time.Time
	OnboardedDate   *time.Time
	GraduationDate  *time.Time
}

// Create creates a new startup record.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Startup, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Founder) == "" {
		return nil, ErrInvalidInput
	}

	stage := req.Stage
	if stage == "" {
		stage = StageOnboarded
	}
	if !stage.Valid() {
		return nil, ErrInvalidStage
	}

	now := time.Now()
	st := &Startup{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Founder:         strings.TrimSpace(req.Founder),
		Email:           strings.TrimSpace(req.Email),
		Phone:           req.Phone,
		Sector:          req.Sector,
		Stage:           stage,
		FundingAmount:   req.FundingAmount,
		AnnualRevenue:   req.AnnualRevenue,
		Employees:       req.Employees,
		Description:     req.Description,
		RecognitionDate: req.RecognitionDate,
		OnboardedDate:   req.OnboardedDate,
		GraduationDate:  req.GraduationDate,
		CreatedAt:       now,
		ModifiedAt:      now,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("creating startup: %w", err)
	}

	return st, nil
}

// Get returns a startup by ID.
func (s *Service) Get(ctx context.Context, id string) (*Startup, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting startup: %w", err)
	}
	return st, nil
}

// Update modifies the fields set in the request.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Startup, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading startup: %w", err)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Founder != nil {
		updated.Founder = strings.TrimSpace(*req.Founder)
	}
	if req.Email != nil {
		updated.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.Sector != nil {
		updated.Sector = *req.Sector
	}
	if req.FundingAmount != nil {
		updated.FundingAmount = *req.FundingAmount
	}
	if req.AnnualRevenue != nil {
		updated.AnnualRevenue = *req.AnnualRevenue
	}
	if req.Employees != nil {
		updated.Employees = *req.Employees
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.RecognitionDate != nil {
		updated.RecognitionDate = req.RecognitionDate
	}
	if req.OnboardedDate != nil {
		updated.OnboardedDate = req.OnboardedDate
	}
	if req.GraduationDate != nil {
		updated.GraduationDate = req.GraduationDate
	}
	if updated.Name == "" || updated.Founder == "" {
		return nil, ErrInvalidInput
	}
	updated.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("updating startup: %w", err)
	}

	return &updated, nil
}

// Delete removes a startup. Child rows cascade at the storage layer.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting startup: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("deleted startup", "id", id)
	}
	return nil
}

// List returns startups matching the options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Startup, error) {
	return s.repo.List(ctx, opts)
}

// Transition moves a startup to a new stage and appends an audit row.
func (s *Service) Transition(ctx context.Context, id string, toStage Stage, note string) (*Startup, error) {
	if !toStage.Valid() {
		return nil, ErrInvalidStage
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading startup: %w", err)
	}

	if current.Stage == toStage {
		return current, nil
	}

	now := time.Now()
	updated := *current
	updated.Stage = toStage
	updated.ModifiedAt = now
	if toStage == StageGraduated && updated.GraduationDate == nil {
		updated.GraduationDate = &now
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating stage: %w", err)
	}

	tr := &StageTransition{
		ID:             uuid.NewString(),
		StartupID:      id,
		FromStage:      current.Stage,
		ToStage:        toStage,
		Note:           note,
		TransitionedAt: now,
	}
	if err := s.repo.AddStageTransition(ctx, tr); err != nil {
		return nil, fmt.Errorf("recording stage transition: %w", err)
	}

	return &updated, nil
}

// AddAchievement records a milestone for a startup.
func (s *Service) AddAchievement(ctx context.Context, startupID, title, description string, achievedOn time.Time) (*Achievement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if achievedOn.IsZero() {
		achievedOn = time.Now()
	}

	a := &Achievement{
		ID:          uuid.NewString(),
		StartupID:   startupID,
		Title:       strings.TrimSpace(title),
		Description: description,
		AchievedOn:  achievedOn,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.AddAchievement(ctx, a); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("adding achievement: %w", err)
	}
	return a, nil
}

// ListAchievements returns a startup's milestones.
func (s *Service) ListAchievements(ctx context.Context, startupID string) ([]Achievement, error) {
	return s.repo.ListAchievements(ctx, startupID)
}

// AddProgressEntry records a metric snapshot for a startup.
func (s *Service) AddProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (*ProgressEntry, error) {
	if strings.TrimSpace(metric) == "" {
		return nil, ErrInvalidInput
	}
	if recordedOn.IsZero() {
		recordedOn = time.Now()
	}

	p := &ProgressEntry{
		ID:         uuid.NewString(),
		StartupID:  startupID,
		Metric:     strings.TrimSpace(metric),
		Value:      value,
		RecordedOn: recordedOn,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.AddProgressEntry(ctx, p); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("adding progress entry: %w", err)
	}
	return p, nil
}

// ListProgress returns a startup's progress history.
func (s *Service) ListProgress(ctx context.Context, startupID string) ([]ProgressEntry, error) {
	return s.repo.ListProgress(ctx, startupID)
}

// AddRevenueEntry records a revenue figure for a startup.
func (s *Service) AddRevenueEntry(ctx context.Context, startupID string, amount float64, period string, recordedOn time.Time) (*RevenueEntry, error) {
	if strings.TrimSpace(period) == "" {
		return nil, ErrInvalidInput
	}
	if recordedOn.IsZero() {
		recordedOn = time.Now()
	}

	r := &RevenueEntry{
		ID:         uuid.NewString(),
		StartupID:  startupID,
		Amount:     amount,
		Period:     strings.TrimSpace(period),
		RecordedOn: recordedOn,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.AddRevenueEntry(ctx, r); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("adding revenue entry: %w", err)
	}
	return r, nil
}

// ListRevenue returns a startup's revenue history.
func (s *Service) ListRevenue(ctx context.Context, startupID string) ([]RevenueEntry, error) {
	return s.repo.ListRevenue(ctx, startupID)
}

// ListStageTransitions returns a startup's stage audit history.
func (s *Service) ListStageTransitions(ctx context.Context, startupID string) ([]StageTransition, error) {
	return s.repo.ListStageTransitions(ctx, startupID)
}
