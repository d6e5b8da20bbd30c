package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

// StartupRepository implements startup.Repository for SQLite
type StartupRepository struct {
	db querier
}

// NewStartupRepository creates a new StartupRepository
func NewStartupRepository(db *DB) *StartupRepository {
	return &StartupRepository{db: db}
}

const startupColumns = `
	id, name, founder, email, phone, sector, stage,
	funding_amount, annual_revenue, employees, description,
	recognition_date, onboarded_date, graduation_date,
	created_at, modified_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStartup(row rowScanner) (*startup.Startup, error) {
	var st startup.Startup
	var email, phone, sector, description sql.NullString
	var recognition, onboarded, graduation sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Founder,
		&email,
		&phone,
		&sector,
		&st.Stage,
		&st.FundingAmount,
		&st.AnnualRevenue,
		&st.Employees,
		&description,
		&recognition,
		&onboarded,
		&graduation,
		&st.CreatedAt,
		&st.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	st.Email = email.String
	st.Phone = phone.String
	st.Sector = sector.String
	st.Description = description.String
	if recognition.Valid {
		t := recognition.Time
		st.RecognitionDate = &t
	}
	if onboarded.Valid {
		t := onboarded.Time
		st.OnboardedDate = &t
	}
	if graduation.Valid {
		t := graduation.Time
		st.GraduationDate = &t
	}
	return &st, nil
}

// nullable maps the empty string to NULL so the UNIQUE email constraint
// ignores startups without one.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Create inserts a new startup
func (r *StartupRepository) Create(ctx context.Context, st *startup.Startup) error {
	query := `
		INSERT INTO startups (` + startupColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		st.ID,
		st.Name,
		st.Founder,
		nullable(st.Email),
		nullable(st.Phone),
		nullable(st.Sector),
		st.Stage,
		st.FundingAmount,
		st.AnnualRevenue,
		st.Employees,
		nullable(st.Description),
		st.RecognitionDate,
		st.OnboardedDate,
		st.GraduationDate,
		st.CreatedAt,
		st.ModifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create startup: %w", err)
	}
	return nil
}

// Get retrieves a startup by ID
func (r *StartupRepository) Get(ctx context.Context, id string) (*startup.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE id = ?`
	st, err := scanStartup(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get startup: %w", err)
	}
	return st, nil
}

// GetByEmail retrieves a startup by its email natural key
func (r *StartupRepository) GetByEmail(ctx context.Context, email string) (*startup.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE email = ?`
	st, err := scanStartup(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get startup by email: %w", err)
	}
	return st, nil
}

// GetByNameFounder retrieves a startup by the (name, founder) natural key pair
func (r *StartupRepository) GetByNameFounder(ctx context.Context, name, founder string) (*startup.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE name = ? AND founder = ?`
	st, err := scanStartup(r.db.QueryRowContext(ctx, query, name, founder))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get startup by name and founder: %w", err)
	}
	return st, nil
}

// Update overwrites a startup's mutable fields
func (r *StartupRepository) Update(ctx context.Context, st *startup.Startup) error {
	query := `
		UPDATE startups
		SET name = ?, founder = ?, email = ?, phone = ?, sector = ?, stage = ?,
		    funding_amount = ?, annual_revenue = ?, employees = ?, description = ?,
		    recognition_date = ?, onboarded_date = ?, graduation_date = ?,
		    modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		st.Name,
		st.Founder,
		nullable(st.Email),
		nullable(st.Phone),
		nullable(st.Sector),
		st.Stage,
		st.FundingAmount,
		st.AnnualRevenue,
		st.Employees,
		nullable(st.Description),
		st.RecognitionDate,
		st.OnboardedDate,
		st.GraduationDate,
		st.ModifiedAt,
		st.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to update startup: %w", err)
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

// Delete removes a startup. Child rows cascade via foreign keys.
func (r *StartupRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM startups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete startup: %w", err)
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

// List returns startups matching the given options
func (r *StartupRepository) List(ctx context.Context, opts startup.ListOptions) ([]startup.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE 1 = 1`
	args := []any{}

	if opts.Sector != "" {
		query += " AND sector = ?"
		args = append(args, opts.Sector)
	}
	if len(opts.Stages) > 0 {
		query += " AND stage IN (?" + repeat(",?", len(opts.Stages)-1) + ")"
		for _, stage := range opts.Stages {
			args = append(args, stage)
		}
	}

	query += " ORDER BY created_at DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list startups: %w", err)
	}
	defer rows.Close()

	var startups []startup.Startup
	for rows.Next() {
		st, err := scanStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan startup: %w", err)
		}
		startups = append(startups, *st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating startup rows: %w", err)
	}
	return startups, nil
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

// AddAchievement inserts a milestone row
func (r *StartupRepository) AddAchievement(ctx context.Context, a *startup.Achievement) error {
	query := `
		INSERT INTO achievements (id, startup_id, title, description, achieved_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.StartupID, a.Title, nullable(a.Description), a.AchievedOn, a.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add achievement: %w", err)
	}
	return nil
}

// HasAchievement reports whether an equivalent milestone already exists,
// matched by title and calendar day.
func (r *StartupRepository) HasAchievement(ctx context.Context, startupID, title string, achievedOn time.Time) (bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT achieved_on FROM achievements WHERE startup_id = ? AND title = ?`,
		startupID, title)
	if err != nil {
		return false, fmt.Errorf("failed to check achievement: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing time.Time
		if err := rows.Scan(&existing); err != nil {
			return false, fmt.Errorf("failed to scan achievement date: %w", err)
		}
		if sameDay(existing, achievedOn) {
			return true, nil
		}
	}
	return false, rows.Err()
}

// ListAchievements returns a startup's milestones, oldest first
func (r *StartupRepository) ListAchievements(ctx context.Context, startupID string) ([]startup.Achievement, error) {
	query := `
		SELECT id, startup_id, title, description, achieved_on, created_at
		FROM achievements WHERE startup_id = ? ORDER BY achieved_on ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []startup.Achievement
	for rows.Next() {
		var a startup.Achievement
		var description sql.NullString
		if err := rows.Scan(&a.ID, &a.StartupID, &a.Title, &description, &a.AchievedOn, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		a.Description = description.String
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// AddProgressEntry inserts a metric snapshot row
func (r *StartupRepository) AddProgressEntry(ctx context.Context, p *startup.ProgressEntry) error {
	query := `
		INSERT INTO progress_entries (id, startup_id, metric, value, recorded_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.StartupID, p.Metric, p.Value, p.RecordedOn, p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add progress entry: %w", err)
	}
	return nil
}

// HasProgressEntry reports whether an equivalent snapshot already exists,
// matched by metric, value and calendar day.
func (r *StartupRepository) HasProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT recorded_on FROM progress_entries WHERE startup_id = ? AND metric = ? AND value = ?`,
		startupID, metric, value)
	if err != nil {
		return false, fmt.Errorf("failed to check progress entry: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing time.Time
		if err := rows.Scan(&existing); err != nil {
			return false, fmt.Errorf("failed to scan progress date: %w", err)
		}
		if sameDay(existing, recordedOn) {
			return true, nil
		}
	}
	return false, rows.Err()
}

// ListProgress returns a startup's progress history, oldest first
func (r *StartupRepository) ListProgress(ctx context.Context, startupID string) ([]startup.ProgressEntry, error) {
	query := `
		SELECT id, startup_id, metric, value, recorded_on, created_at
		FROM progress_entries WHERE startup_id = ? ORDER BY recorded_on ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress entries: %w", err)
	}
	defer rows.Close()

	var entries []startup.ProgressEntry
	for rows.Next() {
		var p startup.ProgressEntry
		if err := rows.Scan(&p.ID, &p.StartupID, &p.Metric, &p.Value, &p.RecordedOn, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress entry: %w", err)
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

// AddRevenueEntry inserts a revenue row
func (r *StartupRepository) AddRevenueEntry(ctx context.Context, re *startup.RevenueEntry) error {
	query := `
		INSERT INTO revenue_entries (id, startup_id, amount, period, recorded_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, re.ID, re.StartupID, re.Amount, re.Period, re.RecordedOn, re.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add revenue entry: %w", err)
	}
	return nil
}

// HasRevenueEntry reports whether an equivalent revenue row already exists,
// matched by amount and period.
func (r *StartupRepository) HasRevenueEntry(ctx context.Context, startupID string, amount float64, period string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revenue_entries WHERE startup_id = ? AND amount = ? AND period = ?`,
		startupID, amount, period).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check revenue entry: %w", err)
	}
	return count > 0, nil
}

// ListRevenue returns a startup's revenue history, oldest first
func (r *StartupRepository) ListRevenue(ctx context.Context, startupID string) ([]startup.RevenueEntry, error) {
	query := `
		SELECT id, startup_id, amount, period, recorded_on, created_at
		FROM revenue_entries WHERE startup_id = ? ORDER BY recorded_on ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue entries: %w", err)
	}
	defer rows.Close()

	var entries []startup.RevenueEntry
	for rows.Next() {
		var re startup.RevenueEntry
		if err := rows.Scan(&re.ID, &re.StartupID, &re.Amount, &re.Period, &re.RecordedOn, &re.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan revenue entry: %w", err)
		}
		entries = append(entries, re)
	}
	return entries, rows.Err()
}

// AddStageTransition appends a stage audit row
func (r *StartupRepository) AddStageTransition(ctx context.Context, tr *startup.StageTransition) error {
	query := `
		INSERT INTO stage_transitions (id, startup_id, from_stage, to_stage, note, transitioned_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, tr.ID, tr.StartupID, tr.FromStage, tr.ToStage, nullable(tr.Note), tr.TransitionedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add stage transition: %w", err)
	}
	return nil
}

// ListStageTransitions returns a startup's stage history, oldest first
func (r *StartupRepository) ListStageTransitions(ctx context.Context, startupID string) ([]startup.StageTransition, error) {
	query := `
		SELECT id, startup_id, from_stage, to_stage, note, transitioned_at
		FROM stage_transitions WHERE startup_id = ? ORDER BY transitioned_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage transitions: %w", err)
	}
	defer rows.Close()

	var transitions []startup.StageTransition
	for rows.Next() {
		var tr startup.StageTransition
		var note sql.NullString
		if err := rows.Scan(&tr.ID, &tr.StartupID, &tr.FromStage, &tr.ToStage, &note, &tr.TransitionedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stage transition: %w", err)
		}
		tr.Note = note.String
		transitions = append(transitions, tr)
	}
	return transitions, rows.Err()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
