package pageshandler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rhcore/internal/domain/auth"
	"rhcore/internal/domain/core"
	"rhcore/internal/transport/http/middleware"
)

const testSecret = "test-secret"

type fakeCredStore struct {
	creds       map[string]*core.Credentials
	lastLoginID string
}

func (f *fakeCredStore) GetCredentialsByEmail(ctx context.Context, email string) (*core.Credentials, error) {
	c, ok := f.creds[email]
	if !ok {
		return nil, errors.New("no rows")
	}
	return c, nil
}

func (f *fakeCredStore) TouchLastLogin(ctx context.Context, userID string) {
	f.lastLoginID = userID
}

func newTestHandler(t *testing.T) (*Handler, *fakeCredStore) {
	t.Helper()
	hash, err := auth.HashPassword("s3nh4-forte")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := &fakeCredStore{creds: map[string]*core.Credentials{
		"ana@example.com": {
			UserID:       "9f3a2c10-0000-0000-0000-000000000001",
			Username:     "ana",
			PasswordHash: hash,
			Superuser:    false,
		},
	}}
	return NewHandler(store, testSecret), store
}

func postLogin(h *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleLoginSubmit(rec, req)
	return rec
}

func TestLoginSubmitSuccessSetsSessionAndRedirects(t *testing.T) {
	h, store := newTestHandler(t)

	rec := postLogin(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"s3nh4-forte"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	if session == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !session.HttpOnly {
		t.Fatal("expected session cookie to be HttpOnly")
	}

	claims, err := auth.ParseToken(testSecret, session.Value)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	if claims.Username != "ana" {
		t.Fatalf("expected token for ana, got %q", claims.Username)
	}
	if store.lastLoginID != "9f3a2c10-0000-0000-0000-000000000001" {
		t.Fatalf("expected last login touch for user, got %q", store.lastLoginID)
	}
}

func TestLoginSubmitHonorsNextParameter(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postLogin(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"s3nh4-forte"},
		"next":     {"/api/v1/employees"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/v1/employees" {
		t.Fatalf("expected redirect to next target, got %q", loc)
	}
}

func TestLoginSubmitRejectsOffsiteNext(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postLogin(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"s3nh4-forte"},
		"next":     {"//evil.example.com/"},
	})

	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected offsite next to fall back to /, got %q", loc)
	}
}

func TestLoginSubmitFailureRedirectsBackWithoutSession(t *testing.T) {
	h, store := newTestHandler(t)

	cases := []struct {
		name string
		form url.Values
	}{
		{"wrong password", url.Values{"email": {"ana@example.com"}, "password": {"errada"}}},
		{"unknown email", url.Values{"email": {"ninguem@example.com"}, "password": {"s3nh4-forte"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postLogin(h, tc.form)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != "/login/" {
				t.Fatalf("expected redirect back to login, got %q", loc)
			}
			for _, c := range rec.Result().Cookies() {
				if c.Name == middleware.SessionCookie && c.Value != "" {
					t.Fatal("expected no session cookie on failed login")
				}
			}
			if store.lastLoginID != "" {
				t.Fatal("expected no last login touch on failed login")
			}
		})
	}
}

func TestIndexRedirectsAnonymousToLoginWithNext(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.HandleIndex(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login/?next=%2F" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestIndexRendersForAuthenticatedSession(t *testing.T) {
	h, _ := newTestHandler(t)

	token, err := auth.GenerateToken(testSecret, auth.Claims{
		UserID:   "9f3a2c10-0000-0000-0000-000000000001",
		Username: "ana",
	}, sessionTTL)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	rec := httptest.NewRecorder()

	middleware.Auth(testSecret)(http.HandlerFunc(h.HandleIndex)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ana") {
		t.Fatal("expected landing page to greet the session user")
	}
}

func TestSupportPageIsPublic(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/suporte/", nil)
	rec := httptest.NewRecorder()
	h.HandleSupportPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Suporte") {
		t.Fatal("expected support page content")
	}
}

func TestLoginPageRendersNextField(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/login/?next=/api/v1/employees", nil)
	rec := httptest.NewRecorder()
	h.HandleLoginPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="/api/v1/employees"`) {
		t.Fatal("expected next target to be carried in the form")
	}
}
