package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rhcore/internal/domain/auth"
)

type fakePermissionSource struct {
	granted map[string][]int
	err     error
}

func (f *fakePermissionSource) UserHasPermission(ctx context.Context, userID string, permissionID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.granted[userID] {
		if id == permissionID {
			return true, nil
		}
	}
	return false, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(t *testing.T, secret string, claims auth.Claims) *http.Request {
	t.Helper()
	token, err := auth.GenerateToken(secret, claims, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/action-logs", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	return req
}

func TestRequirePermission(t *testing.T) {
	const secret = "test-secret"
	src := &fakePermissionSource{granted: map[string][]int{
		"user-with-reports": {auth.PermViewReports},
	}}

	cases := []struct {
		name       string
		claims     *auth.Claims
		wantStatus int
	}{
		{"anonymous rejected", nil, http.StatusUnauthorized},
		{"superuser passes", &auth.Claims{UserID: "root", Username: "root", Superuser: true}, http.StatusOK},
		{"granted role passes", &auth.Claims{UserID: "user-with-reports", Username: "ana"}, http.StatusOK},
		{"missing permission forbidden", &auth.Claims{UserID: "user-without", Username: "bia"}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.claims != nil {
				req = requestWithSession(t, secret, *tc.claims)
			} else {
				req = httptest.NewRequest(http.MethodGet, "/api/v1/action-logs", nil)
			}

			rec := httptest.NewRecorder()
			handler := Auth(secret)(RequirePermission(auth.PermViewReports, src)(okHandler()))
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequirePermissionCheckFailure(t *testing.T) {
	const secret = "test-secret"
	src := &fakePermissionSource{err: errors.New("db down")}

	req := requestWithSession(t, secret, auth.Claims{UserID: "u1", Username: "ana"})
	rec := httptest.NewRecorder()
	Auth(secret)(RequirePermission(auth.PermViewReports, src)(okHandler())).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on permission check failure, got %d", rec.Code)
	}
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	rec := httptest.NewRecorder()
	RequireAuth(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
