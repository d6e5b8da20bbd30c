package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seedbed/incubator/internal/domain/guest"
	"github.com/seedbed/incubator/internal/repository"
)

// GuestRepository implements guest.Repository for SQLite
type GuestRepository struct {
	db *DB
}

// NewGuestRepository creates a new GuestRepository
func NewGuestRepository(db *DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create inserts a new guest
func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	query := `
		INSERT INTO guests (id, name, organization, purpose, visited_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.Name, nullable(g.Organization), nullable(g.Purpose), g.VisitedOn, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// Get retrieves a guest by ID
func (r *GuestRepository) Get(ctx context.Context, id string) (*guest.Guest, error) {
	query := `
		SELECT id, name, organization, purpose, visited_on, created_at
		FROM guests WHERE id = ?
	`
	var g guest.Guest
	var organization, purpose sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &organization, &purpose, &g.VisitedOn, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	g.Organization = organization.String
	g.Purpose = purpose.String
	return &g, nil
}

// Delete removes a guest
func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
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

// List returns guests, most recent visit first
func (r *GuestRepository) List(ctx context.Context, limit, offset int) ([]guest.Guest, error) {
	query := `
		SELECT id, name, organization, purpose, visited_on, created_at
		FROM guests ORDER BY visited_on DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	if offset > 0 {
		query += " OFFSET ?"
		args = append(args, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []guest.Guest
	for rows.Next() {
		var g guest.Guest
		var organization, purpose sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &organization, &purpose, &g.VisitedOn, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		g.Organization = organization.String
		g.Purpose = purpose.String
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
