package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

func seedStartup(t *testing.T, db *DB) *startup.Startup {
	t.Helper()
	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, NewStartupRepository(db).Create(context.Background(), st))
	return st
}

func TestMeetingCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()
	st := seedStartup(t, db)

	completed := time.Date(2024, 4, 1, 11, 0, 0, 0, time.UTC)
	stage := startup.StageGraduated
	m := &meeting.Meeting{
		ID:                uuid.NewString(),
		StartupID:         st.ID,
		Kind:              meeting.KindSMC,
		ScheduledOn:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:          "10:00",
		CompletedAt:       &completed,
		StageAtCompletion: &stage,
		Notes:             "went well",
		CreatedAt:         time.Now(),
	}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, meeting.KindSMC, got.Kind)
	require.Equal(t, "10:00", got.TimeSlot)
	require.Equal(t, "went well", got.Notes)
	require.NotNil(t, got.CompletedAt)
	require.Equal(t, 11, got.CompletedAt.Hour())
	require.NotNil(t, got.StageAtCompletion)
	require.Equal(t, startup.StageGraduated, *got.StageAtCompletion)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMeetingCreateRequiresStartup(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db)

	err := repo.Create(context.Background(), &meeting.Meeting{
		ID:          uuid.NewString(),
		StartupID:   "no-such-startup",
		Kind:        meeting.KindOneOnOne,
		ScheduledOn: time.Now(),
		CreatedAt:   time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestMeetingUpdate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()
	st := seedStartup(t, db)

	m := &meeting.Meeting{
		ID:          uuid.NewString(),
		StartupID:   st.ID,
		Kind:        meeting.KindOneOnOne,
		ScheduledOn: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, m))

	completed := time.Date(2024, 4, 1, 15, 0, 0, 0, time.UTC)
	stage := startup.StageOnboarded
	m.CompletedAt = &completed
	m.StageAtCompletion = &stage
	m.Notes = "caught up on hiring"
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	require.Equal(t, "caught up on hiring", got.Notes)

	require.ErrorIs(t, repo.Update(ctx, &meeting.Meeting{ID: "missing"}), repository.ErrNotFound)
}

func TestMeetingListByStartupFiltersKind(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()
	st := seedStartup(t, db)

	for i, kind := range []meeting.Kind{meeting.KindSMC, meeting.KindSMC, meeting.KindOneOnOne} {
		require.NoError(t, repo.Create(ctx, &meeting.Meeting{
			ID:          uuid.NewString(),
			StartupID:   st.ID,
			Kind:        kind,
			ScheduledOn: time.Date(2024, 4, 1+i, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Now(),
		}))
	}

	all, err := repo.ListByStartup(ctx, st.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent first.
	require.Equal(t, 3, all[0].ScheduledOn.Day())

	smc, err := repo.ListByStartup(ctx, st.ID, meeting.KindSMC)
	require.NoError(t, err)
	require.Len(t, smc, 2)
}

func TestMeetingExistsOnDateIgnoresTime(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()
	st := seedStartup(t, db)

	require.NoError(t, repo.Create(ctx, &meeting.Meeting{
		ID:          uuid.NewString(),
		StartupID:   st.ID,
		Kind:        meeting.KindSMC,
		ScheduledOn: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
	}))

	exists, err := repo.ExistsOnDate(ctx, st.ID, meeting.KindSMC, time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, exists)

	// Same day, different kind.
	exists, err = repo.ExistsOnDate(ctx, st.ID, meeting.KindOneOnOne, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.ExistsOnDate(ctx, st.ID, meeting.KindSMC, time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMeetingDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()
	st := seedStartup(t, db)

	m := &meeting.Meeting{
		ID:          uuid.NewString(),
		StartupID:   st.ID,
		Kind:        meeting.KindFMC,
		ScheduledOn: time.Now(),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, m))
	require.NoError(t, repo.Delete(ctx, m.ID))
	require.ErrorIs(t, repo.Delete(ctx, m.ID), repository.ErrNotFound)
}
