package repository

import (
	"context"
)

// Counts holds aggregate row counts per entity kind, used by the read-only
// stats endpoint to verify import completion out-of-band.
type Counts struct {
	Startups         int `json:"startups"`
	Achievements     int `json:"achievements"`
	ProgressEntries  int `json:"progress_entries"`
	RevenueEntries   int `json:"revenue_entries"`
	Meetings         int `json:"meetings"`
	Documents        int `json:"documents"`
	Guests           int `json:"guests"`
	Users            int `json:"users"`
	StageTransitions int `json:"stage_transitions"`
}

// StatsRepository reports aggregate entity counts.
type StatsRepository interface {
	Counts(ctx context.Context) (*Counts, error)
}
