package guest

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

// Guest represents one recorded visitor to the incubator.
type Guest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization,omitempty"`
	Purpose      string    `json:"purpose,omitempty"`
	VisitedOn    time.Time `json:"visited_on"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	// ErrNotFound indicates the guest doesn't exist.
	ErrNotFound = errors.New("guest not found")
	// ErrInvalidInput indicates invalid input for guest operations.
	ErrInvalidInput = errors.New("invalid guest input")
)

// Repository provides persistence for guests.
type Repository interface {
	Create(ctx context.Context, g *Guest) error
	Get(ctx context.Context, id string) (*Guest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]Guest, error)
}

// Service handles guest registration.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new guest service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register records a guest visit.
func (s *Service) Register(ctx context.Context, name, organization, purpose string, visitedOn time.Time) (*Guest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	if visitedOn.IsZero() {
		visitedOn = time.Now()
	}

	g := &Guest{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Organization: organization,
		Purpose:      purpose,
		VisitedOn:    visitedOn,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("registering guest: %w", err)
	}
	return g, nil
}

// Get returns a guest by ID.
func (s *Service) Get(ctx context.Context, id string) (*Guest, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting guest: %w", err)
	}
	return g, nil
}

// Delete removes a guest record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting guest: %w", err)
	}
	return nil
}

// List returns recorded guests, most recent first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Guest, error) {
	return s.repo.List(ctx, limit, offset)
}
