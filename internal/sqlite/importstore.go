package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/importer"
)

// ImportStore adapts the SQLite repositories to the importer's Store port and
// provides the per-startup transactional boundary.
type ImportStore struct {
	db       *DB
	startups *StartupRepository
	meetings *MeetingRepository
}

// NewImportStore creates an ImportStore over the database
func NewImportStore(db *DB) *ImportStore {
	return &ImportStore{
		db:       db,
		startups: &StartupRepository{db: db},
		meetings: &MeetingRepository{db: db},
	}
}

// InTx runs fn against a transactional view of the store
func (s *ImportStore) InTx(ctx context.Context, fn func(importer.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &ImportStore{
		db:       s.db,
		startups: &StartupRepository{db: tx},
		meetings: &MeetingRepository{db: tx},
	}

	if err := fn(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *ImportStore) FindStartupByEmail(ctx context.Context, email string) (*startup.Startup, error) {
	return s.startups.GetByEmail(ctx, email)
}

func (s *ImportStore) FindStartupByNameFounder(ctx context.Context, name, founder string) (*startup.Startup, error) {
	return s.startups.GetByNameFounder(ctx, name, founder)
}

func (s *ImportStore) CreateStartup(ctx context.Context, st *startup.Startup) error {
	return s.startups.Create(ctx, st)
}

func (s *ImportStore) UpdateStartup(ctx context.Context, st *startup.Startup) error {
	return s.startups.Update(ctx, st)
}

func (s *ImportStore) HasAchievement(ctx context.Context, startupID, title string, achievedOn time.Time) (bool, error) {
	return s.startups.HasAchievement(ctx, startupID, title, achievedOn)
}

func (s *ImportStore) CreateAchievement(ctx context.Context, a *startup.Achievement) error {
	return s.startups.AddAchievement(ctx, a)
}

func (s *ImportStore) HasProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (bool, error) {
	return s.startups.HasProgressEntry(ctx, startupID, metric, value, recordedOn)
}

func (s *ImportStore) CreateProgressEntry(ctx context.Context, p *startup.ProgressEntry) error {
	return s.startups.AddProgressEntry(ctx, p)
}

func (s *ImportStore) HasRevenueEntry(ctx context.Context, startupID string, amount float64, period string) (bool, error) {
	return s.startups.HasRevenueEntry(ctx, startupID, amount, period)
}

func (s *ImportStore) CreateRevenueEntry(ctx context.Context, r *startup.RevenueEntry) error {
	return s.startups.AddRevenueEntry(ctx, r)
}

func (s *ImportStore) CreateStageTransition(ctx context.Context, tr *startup.StageTransition) error {
	return s.startups.AddStageTransition(ctx, tr)
}

func (s *ImportStore) HasMeetingOnDate(ctx context.Context, startupID string, kind meeting.Kind, date time.Time) (bool, error) {
	return s.meetings.ExistsOnDate(ctx, startupID, kind, date)
}

func (s *ImportStore) CreateMeeting(ctx context.Context, m *meeting.Meeting) error {
	return s.meetings.Create(ctx, m)
}
