package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/repository"
)

// UserRepository implements user.Repository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, name, role, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.Role, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	return r.getWhere(ctx, "id = ?", id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getWhere(ctx, "email = ?", email)
}

func (r *UserRepository) getWhere(ctx context.Context, where string, arg any) (*user.User, error) {
	query := `SELECT id, email, name, role, created_at FROM users WHERE ` + where
	var u user.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Delete removes a user. Tokens cascade.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns all users
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, name, role, created_at FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// AddToken stores a hashed bearer token for a user
func (r *UserRepository) AddToken(ctx context.Context, userID, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO api_tokens (token_hash, user_id) VALUES (?, ?)`, tokenHash, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add token: %w", err)
	}
	return nil
}

// GetByTokenHash resolves a hashed bearer token to its user
func (r *UserRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.role, u.created_at
		FROM users u
		JOIN api_tokens t ON t.user_id = u.id
		WHERE t.token_hash = ?
	`
	var u user.User
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return &u, nil
}
