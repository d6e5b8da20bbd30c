package meeting

import (
	"context"
	"time"
)

// Repository provides persistence for meetings.
type Repository interface {
	Create(ctx context.Context, m *Meeting) error
	Get(ctx context.Context, id string) (*Meeting, error)
	Update(ctx context.Context, m *Meeting) error
	Delete(ctx context.Context, id string) error
	ListByStartup(ctx context.Context, startupID string, kind Kind) ([]Meeting, error)
	ExistsOnDate(ctx context.Context, startupID string, kind Kind, date time.Time) (bool, error)
}
