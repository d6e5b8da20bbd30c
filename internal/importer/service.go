package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

// Store is the persistence capability the importer needs. The sqlite package
// provides the production implementation; tests swap in a mock. Find methods
// return repository.ErrNotFound when no match exists.
type Store interface {
	FindStartupByEmail(ctx context.Context, email string) (*startup.Startup, error)
	FindStartupByNameFounder(ctx context.Context, name, founder string) (*startup.Startup, error)
	CreateStartup(ctx context.Context, st *startup.Startup) error
	UpdateStartup(ctx context.Context, st *startup.Startup) error

	HasAchievement(ctx context.Context, startupID, title string, achievedOn time.Time) (bool, error)
	CreateAchievement(ctx context.Context, a *startup.Achievement) error
	HasProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (bool, error)
	CreateProgressEntry(ctx context.Context, p *startup.ProgressEntry) error
	HasRevenueEntry(ctx context.Context, startupID string, amount float64, period string) (bool, error)
	CreateRevenueEntry(ctx context.Context, r *startup.RevenueEntry) error
	CreateStageTransition(ctx context.Context, tr *startup.StageTransition) error

	HasMeetingOnDate(ctx context.Context, startupID string, kind meeting.Kind, date time.Time) (bool, error)
	CreateMeeting(ctx context.Context, m *meeting.Meeting) error

	// InTx runs fn against a transactional view of the store, committing on
	// nil and rolling back on error.
	InTx(ctx context.Context, fn func(Store) error) error
}

// RecordError reports one failed input record by display name.
type RecordError struct {
	Record  string `json:"record"`
	Message string `json:"message"`
}

// Summary aggregates the outcome of one import run.
type Summary struct {
	StartupsCreated          int           `json:"startups_created"`
	StartupsUpdated          int           `json:"startups_updated"`
	AchievementsMigrated     int           `json:"achievements_migrated"`
	ProgressMigrated         int           `json:"progress_migrated"`
	RevenueMigrated          int           `json:"revenue_migrated"`
	SMCMeetingsMigrated      int           `json:"smc_meetings_migrated"`
	OneOnOneMeetingsMigrated int           `json:"one_on_one_meetings_migrated"`
	SchedulesSkipped         int           `json:"schedules_skipped"`
	Errors                   []RecordError `json:"errors"`
}

// Service reconciles a legacy export bundle into the relational store.
// Both the HTTP endpoint and the CLI import command call this one
// implementation.
type Service struct {
	store  Store
	logger *slog.Logger
}

// New creates a new importer service.
func New(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// unitResult carries the counter deltas for one startup's transactional unit,
// applied to the summary only after the unit commits.
type unitResult struct {
	created      bool
	achievements int
	progress     int
	revenue      int
}

// Run imports the bundle. Startups are processed one at a time, each with its
// children inside one transaction; a failure rolls back that unit, is recorded
// against the startup's display name, and the run continues. Schedules are
// resolved in a second pass. Only infrastructure faults return a non-nil
// error; the summary is valid either way.
func (s *Service) Run(ctx context.Context, bundle *Bundle) (*Summary, error) {
	summary := &Summary{}

	for i := range bundle.Startups {
		bs := &bundle.Startups[i]
		var res unitResult
		err := s.store.InTx(ctx, func(tx Store) error {
			var unitErr error
			res, unitErr = s.importStartup(ctx, tx, bs)
			return unitErr
		})
		if err != nil {
			summary.Errors = append(summary.Errors, RecordError{
				Record:  displayName(bs),
				Message: err.Error(),
			})
			if s.logger != nil {
				s.logger.Warn("startup import failed", "record", displayName(bs), "error", err)
			}
			continue
		}

		if res.created {
			summary.StartupsCreated++
		} else {
			summary.StartupsUpdated++
		}
		summary.AchievementsMigrated += res.achievements
		summary.ProgressMigrated += res.progress
		summary.RevenueMigrated += res.revenue
	}

	if err := s.importSchedules(ctx, bundle, meeting.KindSMC, bundle.SMCSchedules, summary); err != nil {
		return summary, err
	}
	if err := s.importSchedules(ctx, bundle, meeting.KindOneOnOne, bundle.OneOnOneSchedules, summary); err != nil {
		return summary, err
	}

	if s.logger != nil {
		s.logger.Info("import completed",
			"created", summary.StartupsCreated,
			"updated", summary.StartupsUpdated,
			"errors", len(summary.Errors))
	}
	return summary, nil
}

// importStartup reconciles one bundle startup and its embedded children.
func (s *Service) importStartup(ctx context.Context, tx Store, bs *BundleStartup) (unitResult, error) {
	var res unitResult

	norm := normalizeStartup(bs)
	if norm.Name == "" && norm.Email == "" {
		return res, fmt.Errorf("record has neither a name nor an email")
	}

	existing, err := s.findExisting(ctx, tx, norm)
	if err != nil {
		return res, err
	}

	now := time.Now()
	var st *startup.Startup
	if existing != nil {
		previousStage := existing.Stage
		norm.apply(existing)
		existing.ModifiedAt = now
		if err := tx.UpdateStartup(ctx, existing); err != nil {
			return res, fmt.Errorf("updating startup: %w", err)
		}
		if previousStage != existing.Stage {
			// Audit row failures don't fail the unit, same as child inserts.
			trErr := tx.CreateStageTransition(ctx, &startup.StageTransition{
				ID:             uuid.NewString(),
				StartupID:      existing.ID,
				FromStage:      previousStage,
				ToStage:        existing.Stage,
				Note:           "legacy import",
				TransitionedAt: now,
			})
			if trErr != nil && s.logger != nil {
				s.logger.Warn("stage transition not recorded", "startup", existing.ID, "error", trErr)
			}
		}
		st = existing
	} else {
		st = &startup.Startup{
			ID:         uuid.NewString(),
			CreatedAt:  now,
			ModifiedAt: now,
		}
		norm.apply(st)
		if err := tx.CreateStartup(ctx, st); err != nil {
			return res, fmt.Errorf("creating startup: %w", err)
		}
		res.created = true
	}

	migrated, err := s.importChildren(ctx, tx, st.ID, bs)
	if err != nil {
		return res, err
	}
	res.achievements = migrated.achievements
	res.progress = migrated.progress
	res.revenue = migrated.revenue

	return res, nil
}

// findExisting matches by email first, then exact (name, founder).
func (s *Service) findExisting(ctx context.Context, tx Store, norm normalized) (*startup.Startup, error) {
	if norm.Email != "" {
		st, err := tx.FindStartupByEmail(ctx, norm.Email)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("looking up startup by email: %w", err)
		}
	}

	if norm.Name != "" && norm.Founder != "" {
		st, err := tx.FindStartupByNameFounder(ctx, norm.Name, norm.Founder)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("looking up startup by name and founder: %w", err)
		}
	}

	return nil, nil
}

// importChildren migrates the embedded child collections. Each child is
// checked for an existing equivalent before insert so re-imports don't
// duplicate rows. Insert failures are swallowed per child; lookup failures
// propagate to the per-startup error handler.
func (s *Service) importChildren(ctx context.Context, tx Store, startupID string, bs *BundleStartup) (unitResult, error) {
	var res unitResult

	for _, a := range bs.Achievements {
		title := firstNonEmpty(a.Title, a.Name)
		if title == "" {
			continue
		}
		achievedOn := ParseDate(a.Date)
		exists, err := tx.HasAchievement(ctx, startupID, title, achievedOn)
		if err != nil {
			return res, fmt.Errorf("checking achievement %q: %w", title, err)
		}
		if exists {
			continue
		}
		err = tx.CreateAchievement(ctx, &startup.Achievement{
			ID:          uuid.NewString(),
			StartupID:   startupID,
			Title:       title,
			Description: a.Description,
			AchievedOn:  achievedOn,
			CreatedAt:   time.Now(),
		})
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("achievement not migrated", "startup", startupID, "title", title, "error", err)
			}
			continue
		}
		res.achievements++
	}

	for _, p := range bs.ProgressTracking {
		if p.Metric == "" {
			continue
		}
		recordedOn := ParseDate(p.Date)
		exists, err := tx.HasProgressEntry(ctx, startupID, p.Metric, p.Value.Float64(), recordedOn)
		if err != nil {
			return res, fmt.Errorf("checking progress entry %q: %w", p.Metric, err)
		}
		if exists {
			continue
		}
		err = tx.CreateProgressEntry(ctx, &startup.ProgressEntry{
			ID:         uuid.NewString(),
			StartupID:  startupID,
			Metric:     p.Metric,
			Value:      p.Value.Float64(),
			RecordedOn: recordedOn,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("progress entry not migrated", "startup", startupID, "metric", p.Metric, "error", err)
			}
			continue
		}
		res.progress++
	}

	for _, r := range bs.RevenueHistory {
		if r.Period == "" && r.Amount == 0 {
			continue
		}
		exists, err := tx.HasRevenueEntry(ctx, startupID, r.Amount.Float64(), r.Period)
		if err != nil {
			return res, fmt.Errorf("checking revenue entry %q: %w", r.Period, err)
		}
		if exists {
			continue
		}
		err = tx.CreateRevenueEntry(ctx, &startup.RevenueEntry{
			ID:         uuid.NewString(),
			StartupID:  startupID,
			Amount:     r.Amount.Float64(),
			Period:     r.Period,
			RecordedOn: ParseDate(r.Date),
			CreatedAt:  time.Now(),
		})
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("revenue entry not migrated", "startup", startupID, "period", r.Period, "error", err)
			}
			continue
		}
		res.revenue++
	}

	return res, nil
}

// importSchedules resolves each schedule's bundle-local startup id against the
// bundle's own startup list to recover the natural key, then resolves that key
// against the store. Unresolvable schedules are counted as skipped, not
// errored. De-duplication is by (startup, kind, date) with no time slot in the
// key: the legacy semantics kept one meeting per startup per day.
func (s *Service) importSchedules(ctx context.Context, bundle *Bundle, kind meeting.Kind, schedules []BundleSchedule, summary *Summary) error {
	if len(schedules) == 0 {
		return nil
	}

	byLocalID := make(map[string]*BundleStartup, len(bundle.Startups))
	for i := range bundle.Startups {
		bs := &bundle.Startups[i]
		if bs.LocalID != "" {
			byLocalID[bs.LocalID] = bs
		}
	}

	for i := range schedules {
		sched := &schedules[i]

		bs, ok := byLocalID[sched.StartupID]
		if !ok {
			summary.SchedulesSkipped++
			continue
		}

		st, err := s.resolveScheduleStartup(ctx, bs)
		if err != nil {
			return err
		}
		if st == nil {
			summary.SchedulesSkipped++
			continue
		}

		date := ParseDate(sched.Date)
		exists, err := s.store.HasMeetingOnDate(ctx, st.ID, kind, date)
		if err != nil {
			return fmt.Errorf("checking meeting for %s: %w", st.Name, err)
		}
		if exists {
			continue
		}

		agenda := meeting.ParseLegacyAgenda(sched.Agenda)
		m := &meeting.Meeting{
			ID:          uuid.NewString(),
			StartupID:   st.ID,
			Kind:        kind,
			ScheduledOn: date,
			TimeSlot:    firstNonEmpty(sched.TimeSlot, agenda.TimeSlot),
			Notes:       sched.Notes,
			CreatedAt:   time.Now(),
		}
		if agenda.CompletedAt != "" {
			completedAt := ParseDate(agenda.CompletedAt)
			m.CompletedAt = &completedAt
		}
		if agenda.StageAtCompletion != "" {
			stage := MapStage(agenda.StageAtCompletion)
			m.StageAtCompletion = &stage
		}

		if err := s.store.CreateMeeting(ctx, m); err != nil {
			return fmt.Errorf("creating meeting for %s: %w", st.Name, err)
		}

		switch kind {
		case meeting.KindSMC:
			summary.SMCMeetingsMigrated++
		case meeting.KindOneOnOne:
			summary.OneOnOneMeetingsMigrated++
		}
	}

	return nil
}

// resolveScheduleStartup turns a bundle startup's natural key into a persisted
// startup. A miss returns (nil, nil); store faults propagate.
func (s *Service) resolveScheduleStartup(ctx context.Context, bs *BundleStartup) (*startup.Startup, error) {
	norm := normalizeStartup(bs)

	if norm.Email != "" {
		st, err := s.store.FindStartupByEmail(ctx, norm.Email)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("resolving schedule startup by email: %w", err)
		}
	}

	if norm.Name != "" && norm.Founder != "" {
		st, err := s.store.FindStartupByNameFounder(ctx, norm.Name, norm.Founder)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("resolving schedule startup by name: %w", err)
		}
	}

	return nil, nil
}
