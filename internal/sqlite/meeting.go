package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

// MeetingRepository implements meeting.Repository for SQLite
type MeetingRepository struct {
	db querier
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

const meetingColumns = `
	id, startup_id, kind, scheduled_on, time_slot,
	completed_at, stage_at_completion, notes, created_at
`

func scanMeeting(row rowScanner) (*meeting.Meeting, error) {
	var m meeting.Meeting
	var timeSlot, stage, notes sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.StartupID,
		&m.Kind,
		&m.ScheduledOn,
		&timeSlot,
		&completedAt,
		&stage,
		&notes,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.TimeSlot = timeSlot.String
	m.Notes = notes.String
	if completedAt.Valid {
		t := completedAt.Time
		m.CompletedAt = &t
	}
	if stage.Valid {
		s := startup.Stage(stage.String)
		m.StageAtCompletion = &s
	}
	return &m, nil
}

// Create inserts a new meeting
func (r *MeetingRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	query := `
		INSERT INTO meetings (` + meetingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var stage any
	if m.StageAtCompletion != nil {
		stage = string(*m.StageAtCompletion)
	}

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.StartupID,
		m.Kind,
		m.ScheduledOn,
		nullable(m.TimeSlot),
		m.CompletedAt,
		stage,
		nullable(m.Notes),
		m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// Get retrieves a meeting by ID
func (r *MeetingRepository) Get(ctx context.Context, id string) (*meeting.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = ?`
	m, err := scanMeeting(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// Update overwrites a meeting's mutable fields
func (r *MeetingRepository) Update(ctx context.Context, m *meeting.Meeting) error {
	query := `
		UPDATE meetings
		SET scheduled_on = ?, time_slot = ?, completed_at = ?, stage_at_completion = ?, notes = ?
		WHERE id = ?
	`

	var stage any
	if m.StageAtCompletion != nil {
		stage = string(*m.StageAtCompletion)
	}

	result, err := r.db.ExecContext(ctx, query,
		m.ScheduledOn,
		nullable(m.TimeSlot),
		m.CompletedAt,
		stage,
		nullable(m.Notes),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
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

// Delete removes a meeting
func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
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

// ListByStartup returns a startup's meetings, optionally filtered by kind,
// most recent first
func (r *MeetingRepository) ListByStartup(ctx context.Context, startupID string, kind meeting.Kind) ([]meeting.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE startup_id = ?`
	args := []any{startupID}
	if kind != "" {
		query += " AND kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY scheduled_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	var meetings []meeting.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, *m)
	}
	return meetings, rows.Err()
}

// ExistsOnDate reports whether the startup already has a meeting of the kind
// on the same calendar day. Time of day is deliberately ignored: the legacy
// system kept at most one meeting per startup per day.
func (r *MeetingRepository) ExistsOnDate(ctx context.Context, startupID string, kind meeting.Kind, date time.Time) (bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT scheduled_on FROM meetings WHERE startup_id = ? AND kind = ?`,
		startupID, kind)
	if err != nil {
		return false, fmt.Errorf("failed to check meeting date: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing time.Time
		if err := rows.Scan(&existing); err != nil {
			return false, fmt.Errorf("failed to scan meeting date: %w", err)
		}
		if sameDay(existing, date) {
			return true, nil
		}
	}
	return false, rows.Err()
}
