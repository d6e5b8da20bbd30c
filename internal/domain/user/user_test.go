package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/repository"
	"github.com/seedbed/incubator/internal/repository/mocks"
)

func TestCreateNormalizesEmail(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.Email == "admin@x.co" && u.Role == user.RoleAdmin
	})).Return(nil)

	svc := user.NewService(repo, nil)
	u, err := svc.Create(context.Background(), "  Admin@X.CO  ", "Admin", user.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "admin@x.co", u.Email)
	repo.AssertExpectations(t)
}

func TestCreateValidation(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "Name", user.RoleStaff)
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.Create(ctx, "a@x.co", "", user.RoleStaff)
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.Create(ctx, "a@x.co", "Name", "superuser")
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestIssueTokenStoresOnlyHash(t *testing.T) {
	u := &user.User{ID: "u-1", Email: "staff@x.co", Role: user.RoleStaff}

	var storedHash string
	repo := &mocks.UserRepository{}
	repo.On("GetByEmail", mock.Anything, "staff@x.co").Return(u, nil)
	repo.On("AddToken", mock.Anything, "u-1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	svc := user.NewService(repo, nil)
	token, err := svc.IssueToken(context.Background(), "staff@x.co")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEqual(t, token, storedHash)
	require.Equal(t, user.HashToken(token), storedHash)
}

func TestResolveToken(t *testing.T) {
	u := &user.User{ID: "u-1", Email: "staff@x.co", Role: user.RoleStaff}

	repo := &mocks.UserRepository{}
	repo.On("GetByTokenHash", mock.Anything, user.HashToken("good")).Return(u, nil)
	repo.On("GetByTokenHash", mock.Anything, user.HashToken("bad")).Return(nil, repository.ErrNotFound)

	svc := user.NewService(repo, nil)

	got, err := svc.ResolveToken(context.Background(), "good")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)

	_, err = svc.ResolveToken(context.Background(), "bad")
	require.ErrorIs(t, err, user.ErrInvalidToken)

	_, err = svc.ResolveToken(context.Background(), "")
	require.ErrorIs(t, err, user.ErrInvalidToken)
}
