package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/seedbed/incubator/internal/domain/user"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type identityKey struct{}

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID string
	Email  string
	Role   user.Role
}

// UserResolver resolves a bearer token to a user.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*user.User, error)
}

// IdentityFromContext returns the caller identity from context, if present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			u, err := resolver.ResolveToken(r.Context(), token)
			if err != nil || u == nil {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, Identity{
				UserID: u.ID,
				Email:  u.Email,
				Role:   u.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "missing identity", http.StatusUnauthorized)
			return
		}
		if id.Role != user.RoleAdmin {
			http.Error(w, "admin privilege required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
