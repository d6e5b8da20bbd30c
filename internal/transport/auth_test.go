package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/transport"
)

type stubResolver map[string]*user.User

func (s stubResolver) ResolveToken(_ context.Context, token string) (*user.User, error) {
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, user.ErrInvalidToken
}

func TestAuthMiddleware(t *testing.T) {
	resolver := stubResolver{
		"good-token": {ID: "u-1", Email: "staff@x.co", Role: user.RoleStaff},
	}

	var seen transport.Identity
	handler := transport.AuthMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := transport.IdentityFromContext(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusOK)
	}))

	// No credentials.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token attaches the identity.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "u-1", seen.UserID)
	require.Equal(t, user.RoleStaff, seen.Role)
}

func TestRequireAdmin(t *testing.T) {
	resolver := stubResolver{
		"admin-token": {ID: "u-1", Email: "admin@x.co", Role: user.RoleAdmin},
		"staff-token": {ID: "u-2", Email: "staff@x.co", Role: user.RoleStaff},
	}

	handler := transport.AuthMiddleware(resolver)(transport.RequireAdmin(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Authorization", "Bearer staff-token")
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	handler := transport.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
