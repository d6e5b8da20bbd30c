package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/repository"
)

func TestUserCreateAndLookup(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{
		ID:        uuid.NewString(),
		Email:     "admin@incubator.local",
		Name:      "Admin",
		Role:      user.RoleAdmin,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "admin@incubator.local")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, user.RoleAdmin, got.Role)

	dup := &user.User{
		ID:        uuid.NewString(),
		Email:     "admin@incubator.local",
		Name:      "Imposter",
		Role:      user.RoleStaff,
		CreatedAt: time.Now(),
	}
	require.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicate)
}

func TestUserTokenResolution(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{
		ID:        uuid.NewString(),
		Email:     "staff@incubator.local",
		Name:      "Staff",
		Role:      user.RoleStaff,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, u))

	hash := user.HashToken("secret-token")
	require.NoError(t, repo.AddToken(ctx, u.ID, hash))

	got, err := repo.GetByTokenHash(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = repo.GetByTokenHash(ctx, user.HashToken("wrong-token"))
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Tokens for unknown users are rejected.
	require.ErrorIs(t, repo.AddToken(ctx, "no-such-user", user.HashToken("x")), repository.ErrForeignKeyViolation)

	// Deleting the user revokes its tokens.
	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByTokenHash(ctx, hash)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
