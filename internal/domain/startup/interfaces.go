package startup

import (
	"context"
	"time"
)

// Repository provides persistence for startups and their owned child records.
type Repository interface {
	Create(ctx context.Context, st *Startup) error
	Get(ctx context.Context, id string) (*Startup, error)
	GetByEmail(ctx context.Context, email string) (*Startup, error)
	GetByNameFounder(ctx context.Context, name, founder string) (*Startup, error)
	Update(ctx context.Context, st *Startup) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]Startup, error)

	AddAchievement(ctx context.Context, a *Achievement) error
	HasAchievement(ctx context.Context, startupID, title string, achievedOn time.Time) (bool, error)
	ListAchievements(ctx context.Context, startupID string) ([]Achievement, error)

	AddProgressEntry(ctx context.Context, p *ProgressEntry) error
	HasProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (bool, error)
	ListProgress(ctx context.Context, startupID string) ([]ProgressEntry, error)

	AddRevenueEntry(ctx context.Context, r *RevenueEntry) error
	HasRevenueEntry(ctx context.Context, startupID string, amount float64, period string) (bool, error)
	ListRevenue(ctx context.Context, startupID string) ([]RevenueEntry, error)

	AddStageTransition(ctx context.Context, tr *StageTransition) error
	ListStageTransitions(ctx context.Context, startupID string) ([]StageTransition, error)
}
