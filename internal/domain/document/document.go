package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

// Document is metadata for a file owned by a startup. The file body itself
// lives in external storage; only the URL is tracked here.
type Document struct {
	ID          string    `json:"id"`
	StartupID   string    `json:"startup_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

var (
	// ErrNotFound indicates the document doesn't exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput indicates invalid input for document operations.
	ErrInvalidInput = errors.New("invalid document input")
)

// Repository provides persistence for document metadata.
type Repository interface {
	Create(ctx context.Context, d *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	Delete(ctx context.Context, id string) error
	ListByStartup(ctx context.Context, startupID string) ([]Document, error)
}

// Service handles document metadata.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new document service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Attach records document metadata against a startup.
func (s *Service) Attach(ctx context.Context, startupID, name, url, contentType string) (*Document, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(url) == "" {
		return nil, ErrInvalidInput
	}

	d := &Document{
		ID:          uuid.NewString(),
		StartupID:   startupID,
		Name:        strings.TrimSpace(name),
		URL:         strings.TrimSpace(url),
		ContentType: contentType,
		UploadedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, startup.ErrNotFound
		}
		return nil, fmt.Errorf("attaching document: %w", err)
	}
	return d, nil
}

// Get returns document metadata by ID.
func (s *Service) Get(ctx context.Context, id string) (*Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return d, nil
}

// Delete removes document metadata.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// ListByStartup returns a startup's documents.
func (s *Service) ListByStartup(ctx context.Context, startupID string) ([]Document, error) {
	return s.repo.ListByStartup(ctx, startupID)
}
