package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seedbed/incubator/internal/domain/document"
	"github.com/seedbed/incubator/internal/repository"
)

// DocumentRepository implements document.Repository for SQLite
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts document metadata
func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	query := `
		INSERT INTO documents (id, startup_id, name, url, content_type, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.StartupID, d.Name, d.URL, nullable(d.ContentType), d.UploadedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// Get retrieves document metadata by ID
func (r *DocumentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	query := `
		SELECT id, startup_id, name, url, content_type, uploaded_at
		FROM documents WHERE id = ?
	`
	var d document.Document
	var contentType sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.StartupID, &d.Name, &d.URL, &contentType, &d.UploadedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	d.ContentType = contentType.String
	return &d, nil
}

// Delete removes document metadata
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
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

// ListByStartup returns a startup's documents, most recent first
func (r *DocumentRepository) ListByStartup(ctx context.Context, startupID string) ([]document.Document, error) {
	query := `
		SELECT id, startup_id, name, url, content_type, uploaded_at
		FROM documents WHERE startup_id = ? ORDER BY uploaded_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		var d document.Document
		var contentType sql.NullString
		if err := rows.Scan(&d.ID, &d.StartupID, &d.Name, &d.URL, &contentType, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.ContentType = contentType.String
		documents = append(documents, d)
	}
	return documents, rows.Err()
}
