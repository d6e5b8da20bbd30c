package sqlite

import (
	"context"
	"fmt"

	"github.com/seedbed/incubator/internal/repository"
)

// StatsRepository implements repository.StatsRepository for SQLite
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts returns aggregate row counts per entity kind
func (r *StatsRepository) Counts(ctx context.Context) (*repository.Counts, error) {
	counts := &repository.Counts{}
	targets := []struct {
		table string
		dest  *int
	}{
		{"startups", &counts.Startups},
		{"achievements", &counts.Achievements},
		{"progress_entries", &counts.ProgressEntries},
		{"revenue_entries", &counts.RevenueEntries},
		{"meetings", &counts.Meetings},
		{"documents", &counts.Documents},
		{"guests", &counts.Guests},
		{"users", &counts.Users},
		{"stage_transitions", &counts.StageTransitions},
	}

	for _, target := range targets {
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", target.table)
		if err := r.db.QueryRowContext(ctx, query).Scan(target.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", target.table, err)
		}
	}

	return counts, nil
}
