package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seedbed/incubator/internal/repository"
)

// Role controls what a user may do through the API.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User is an operator of the incubation records system.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	// ErrNotFound indicates the user doesn't exist.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidInput indicates invalid input for user operations.
	ErrInvalidInput = errors.New("invalid user input")
	// ErrDuplicateEmail indicates another user already uses the email.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidToken indicates a bearer token with no matching user.
	ErrInvalidToken = errors.New("invalid token")
)

// Repository provides persistence for users and their API tokens.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
	AddToken(ctx context.Context, userID, tokenHash string) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*User, error)
}

// Service handles user management and token resolution.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create adds a user.
func (s *Service) Create(ctx context.Context, email, name string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	if !role.Valid() {
		return nil, ErrInvalidInput
	}

	u := &User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// IssueToken mints a bearer token for the user identified by email and stores
// its hash. The plaintext token is returned exactly once.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}

	token := uuid.NewString()
	if err := s.repo.AddToken(ctx, u.ID, HashToken(token)); err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}
	return token, nil
}

// ResolveToken maps a bearer token to its user.
func (s *Service) ResolveToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.GetByTokenHash(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("resolving token: %w", err)
	}
	return u, nil
}

// HashToken returns the hex sha256 digest stored for a bearer token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
