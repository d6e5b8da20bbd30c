package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/guest"
	"github.com/seedbed/incubator/internal/repository"
)

func TestGuestCRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewGuestRepository(db)
	ctx := context.Background()

	g := &guest.Guest{
		ID:           uuid.NewString(),
		Name:         "Dr. Mentor",
		Organization: "State University",
		Purpose:      "pitch review",
		VisitedOn:    time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, "Dr. Mentor", got.Name)
	require.Equal(t, "State University", got.Organization)

	require.NoError(t, repo.Delete(ctx, g.ID))
	_, err = repo.Get(ctx, g.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGuestListOrdersByVisit(t *testing.T) {
	db := NewTestDB(t)
	repo := NewGuestRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &guest.Guest{
			ID:        uuid.NewString(),
			Name:      "Visitor",
			VisitedOn: base.AddDate(0, 0, i),
			CreatedAt: time.Now(),
		}))
	}

	guests, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, guests, 3)
	require.Equal(t, 3, guests[0].VisitedOn.Day())

	limited, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, 2, limited[0].VisitedOn.Day())
}
