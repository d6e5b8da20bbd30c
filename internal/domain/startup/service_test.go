package startup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/repository"
	"github.com/seedbed/incubator/internal/repository/mocks"
)

func TestCreateValidation(t *testing.T) {
	svc := startup.NewService(&mocks.StartupRepository{}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, startup.CreateRequest{Founder: "Priya"})
	require.ErrorIs(t, err, startup.ErrInvalidInput)

	_, err = svc.Create(ctx, startup.CreateRequest{Name: "Acme"})
	require.ErrorIs(t, err, startup.ErrInvalidInput)

	_, err = svc.Create(ctx, startup.CreateRequest{Name: "Acme", Founder: "Priya", Stage: "NotAStage"})
	require.ErrorIs(t, err, startup.ErrInvalidStage)
}

func TestCreateDefaultsStage(t *testing.T) {
	repo := &mocks.StartupRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(st *startup.Startup) bool {
		return st.Stage == startup.StageOnboarded && st.ID != ""
	})).Return(nil)

	svc := startup.NewService(repo, nil)
	st, err := svc.Create(context.Background(), startup.CreateRequest{
		Name:    "  Acme  ",
		Founder: "Priya",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", st.Name)
	require.Equal(t, startup.StageOnboarded, st.Stage)
	repo.AssertExpectations(t)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := &mocks.StartupRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := startup.NewService(repo, nil)
	_, err := svc.Create(context.Background(), startup.CreateRequest{
		Name: "Acme", Founder: "Priya", Email: "taken@x.co",
	})
	require.ErrorIs(t, err, startup.ErrDuplicateEmail)
}

func TestUpdatePartialFields(t *testing.T) {
	existing := &startup.Startup{
		ID:      "st-1",
		Name:    "Acme",
		Founder: "Priya",
		Sector:  "agritech",
		Stage:   startup.StageOnboarded,
	}

	repo := &mocks.StartupRepository{}
	repo.On("Get", mock.Anything, "st-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(st *startup.Startup) bool {
		// Only the name changes; untouched fields carry over.
		return st.Name == "Acme Renamed" && st.Sector == "agritech" && st.Founder == "Priya"
	})).Return(nil)

	svc := startup.NewService(repo, nil)
	name := "Acme Renamed"
	got, err := svc.Update(context.Background(), startup.UpdateRequest{ID: "st-1", Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Acme Renamed", got.Name)
	repo.AssertExpectations(t)
}

func TestUpdateNotFound(t *testing.T) {
	repo := &mocks.StartupRepository{}
	repo.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := startup.NewService(repo, nil)
	_, err := svc.Update(context.Background(), startup.UpdateRequest{ID: "missing"})
	require.ErrorIs(t, err, startup.ErrNotFound)
}

func TestTransitionAppendsAuditRow(t *testing.T) {
	existing := &startup.Startup{ID: "st-1", Name: "Acme", Founder: "P", Stage: startup.StageS1}

	repo := &mocks.StartupRepository{}
	repo.On("Get", mock.Anything, "st-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(st *startup.Startup) bool {
		return st.Stage == startup.StageGraduated && st.GraduationDate != nil
	})).Return(nil)
	repo.On("AddStageTransition", mock.Anything, mock.MatchedBy(func(tr *startup.StageTransition) bool {
		return tr.FromStage == startup.StageS1 && tr.ToStage == startup.StageGraduated && tr.Note == "demo day"
	})).Return(nil)

	svc := startup.NewService(repo, nil)
	got, err := svc.Transition(context.Background(), "st-1", startup.StageGraduated, "demo day")
	require.NoError(t, err)
	require.Equal(t, startup.StageGraduated, got.Stage)
	repo.AssertExpectations(t)
}

func TestTransitionToSameStageIsNoop(t *testing.T) {
	existing := &startup.Startup{ID: "st-1", Name: "Acme", Founder: "P", Stage: startup.StageS1}

	repo := &mocks.StartupRepository{}
	repo.On("Get", mock.Anything, "st-1").Return(existing, nil)

	svc := startup.NewService(repo, nil)
	got, err := svc.Transition(context.Background(), "st-1", startup.StageS1, "")
	require.NoError(t, err)
	require.Equal(t, startup.StageS1, got.Stage)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AddStageTransition", mock.Anything, mock.Anything)
}

func TestTransitionInvalidStage(t *testing.T) {
	svc := startup.NewService(&mocks.StartupRepository{}, nil)
	_, err := svc.Transition(context.Background(), "st-1", "Nowhere", "")
	require.ErrorIs(t, err, startup.ErrInvalidStage)
}

func TestAddAchievementRequiresTitle(t *testing.T) {
	svc := startup.NewService(&mocks.StartupRepository{}, nil)
	_, err := svc.AddAchievement(context.Background(), "st-1", "   ", "", time.Time{})
	require.ErrorIs(t, err, startup.ErrInvalidInput)
}

func TestAddAchievementUnknownStartup(t *testing.T) {
	repo := &mocks.StartupRepository{}
	repo.On("AddAchievement", mock.Anything, mock.Anything).Return(repository.ErrForeignKeyViolation)

	svc := startup.NewService(repo, nil)
	_, err := svc.AddAchievement(context.Background(), "missing", "Launch", "", time.Time{})
	require.ErrorIs(t, err, startup.ErrNotFound)
}
