package middleware

import (
	"context"
	"net/http"

	"rhcore/internal/transport/http/api"
)

// PermissionSource answers whether a user's role carries a seeded permission.
type PermissionSource interface {
	UserHasPermission(ctx context.Context, userID string, permissionID int) (bool, error)
}

// RequirePermission rejects requests whose session user lacks the permission.
// Superusers always pass.
func RequirePermission(permissionID int, src PermissionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if user.Superuser {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := src.UserHasPermission(r.Context(), user.UserID, permissionID)
			if err != nil {
				api.Fail(w, http.StatusInternalServerError, "permission_check_failed", "failed to verify permissions", GetRequestID(r.Context()))
				return
			}
			if !allowed {
				api.Fail(w, http.StatusForbidden, "forbidden", "missing required permission", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects unauthenticated requests with a JSON envelope. Page
// handlers redirect instead; this is for the API surface.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
