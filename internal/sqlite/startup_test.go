package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
)

func testStartup(name, founder, email string) *startup.Startup {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return &startup.Startup{
		ID:            uuid.NewString(),
		Name:          name,
		Founder:       founder,
		Email:         email,
		Phone:         "555-0100",
		Sector:        "agritech",
		Stage:         startup.StageOnboarded,
		FundingAmount: 100000,
		Employees:     4,
		CreatedAt:     now,
		ModifiedAt:    now,
	}
}

func TestStartupCreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))

	got, err := repo.Get(ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
	require.Equal(t, "priya@acme.in", got.Email)
	require.Equal(t, startup.StageOnboarded, got.Stage)
	require.Equal(t, 100000.0, got.FundingAmount)
	require.Equal(t, 4, got.Employees)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStartupNaturalKeyLookups(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))

	byEmail, err := repo.GetByEmail(ctx, "priya@acme.in")
	require.NoError(t, err)
	require.Equal(t, st.ID, byEmail.ID)

	byName, err := repo.GetByNameFounder(ctx, "Acme", "Priya")
	require.NoError(t, err)
	require.Equal(t, st.ID, byName.ID)

	_, err = repo.GetByEmail(ctx, "nobody@nowhere.co")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByNameFounder(ctx, "Acme", "Someone Else")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStartupEmailUniqueness(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testStartup("Acme", "Priya", "shared@x.co")))

	err := repo.Create(ctx, testStartup("Other", "Ravi", "shared@x.co"))
	require.ErrorIs(t, err, repository.ErrDuplicate)

	// Startups without an email don't collide: empty maps to NULL.
	require.NoError(t, repo.Create(ctx, testStartup("NoMail One", "A", "")))
	require.NoError(t, repo.Create(ctx, testStartup("NoMail Two", "B", "")))
}

func TestStartupUpdate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))

	st.Name = "Acme Renamed"
	st.Stage = startup.StageGraduated
	st.ModifiedAt = st.ModifiedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, st))

	got, err := repo.Get(ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Renamed", got.Name)
	require.Equal(t, startup.StageGraduated, got.Stage)

	ghost := testStartup("Ghost", "G", "")
	require.ErrorIs(t, repo.Update(ctx, ghost), repository.ErrNotFound)
}

func TestStartupDeleteCascades(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))
	require.NoError(t, repo.AddAchievement(ctx, &startup.Achievement{
		ID:         uuid.NewString(),
		StartupID:  st.ID,
		Title:      "Launch",
		AchievedOn: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Now(),
	}))

	require.NoError(t, repo.Delete(ctx, st.ID))
	require.ErrorIs(t, repo.Delete(ctx, st.ID), repository.ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM achievements`).Scan(&count))
	require.Zero(t, count)
}

func TestStartupList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	a := testStartup("Agri One", "A", "a@x.co")
	b := testStartup("Fin One", "B", "b@x.co")
	b.Sector = "fintech"
	c := testStartup("Agri Two", "C", "c@x.co")
	c.Stage = startup.StageGraduated

	for _, st := range []*startup.Startup{a, b, c} {
		require.NoError(t, repo.Create(ctx, st))
	}

	all, err := repo.List(ctx, startup.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	agri, err := repo.List(ctx, startup.ListOptions{Sector: "agritech"})
	require.NoError(t, err)
	require.Len(t, agri, 2)

	graduated, err := repo.List(ctx, startup.ListOptions{Stages: []startup.Stage{startup.StageGraduated}})
	require.NoError(t, err)
	require.Len(t, graduated, 1)
	require.Equal(t, "Agri Two", graduated[0].Name)

	limited, err := repo.List(ctx, startup.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestHasAchievementMatchesByDay(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))

	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddAchievement(ctx, &startup.Achievement{
		ID:         uuid.NewString(),
		StartupID:  st.ID,
		Title:      "Launch",
		AchievedOn: morning,
		CreatedAt:  time.Now(),
	}))

	evening := time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC)
	exists, err := repo.HasAchievement(ctx, st.ID, "Launch", evening)
	require.NoError(t, err)
	require.True(t, exists)

	nextDay := morning.AddDate(0, 0, 1)
	exists, err = repo.HasAchievement(ctx, st.ID, "Launch", nextDay)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.HasAchievement(ctx, st.ID, "Other Title", morning)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProgressAndRevenueDedupKeys(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))

	day := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddProgressEntry(ctx, &startup.ProgressEntry{
		ID: uuid.NewString(), StartupID: st.ID, Metric: "mrr", Value: 900,
		RecordedOn: day, CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.AddRevenueEntry(ctx, &startup.RevenueEntry{
		ID: uuid.NewString(), StartupID: st.ID, Amount: 12000, Period: "2024-Q1",
		RecordedOn: day, CreatedAt: time.Now(),
	}))

	exists, err := repo.HasProgressEntry(ctx, st.ID, "mrr", 900, day.Add(3*time.Hour))
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.HasProgressEntry(ctx, st.ID, "mrr", 901, day)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.HasRevenueEntry(ctx, st.ID, 12000, "2024-Q1")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.HasRevenueEntry(ctx, st.ID, 12000, "2024-Q2")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestStageTransitionHistory(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStartupRepository(db)
	ctx := context.Background()

	st := testStartup("Acme", "Priya", "priya@acme.in")
	require.NoError(t, repo.Create(ctx, st))

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddStageTransition(ctx, &startup.StageTransition{
		ID: uuid.NewString(), StartupID: st.ID,
		FromStage: startup.StageS0, ToStage: startup.StageOnboarded,
		TransitionedAt: base,
	}))
	require.NoError(t, repo.AddStageTransition(ctx, &startup.StageTransition{
		ID: uuid.NewString(), StartupID: st.ID,
		FromStage: startup.StageOnboarded, ToStage: startup.StageGraduated,
		Note:           "demo day",
		TransitionedAt: base.AddDate(0, 3, 0),
	}))

	history, err := repo.ListStageTransitions(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, startup.StageOnboarded, history[0].ToStage)
	require.Equal(t, startup.StageGraduated, history[1].ToStage)
	require.Equal(t, "demo day", history[1].Note)
}
