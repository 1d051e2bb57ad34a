package pageshandler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rhcore/internal/domain/auth"
	"rhcore/internal/domain/core"
	"rhcore/internal/transport/http/middleware"
)

const sessionTTL = 8 * time.Hour

// CredentialStore is the slice of the user store the login page needs.
type CredentialStore interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*core.Credentials, error)
	TouchLastLogin(ctx context.Context, userID string)
}

type Handler struct {
	Creds  CredentialStore
	Secret string
}

func NewHandler(creds CredentialStore, secret string) *Handler {
	return &Handler{Creds: creds, Secret: secret}
}

// Page shells only; real markup belongs to the frontend assets.
var (
	loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Login</title></head>
<body>
<form method="post" action="/login/">
  <input type="hidden" name="next" value="{{.Next}}">
  <label>Email <input type="email" name="email" required></label>
  <label>Senha <input type="password" name="password" required></label>
  <button type="submit">Entrar</button>
</form>
</body>
</html>
`))

	supportTemplate = template.Must(template.New("suporte").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Suporte</title></head>
<body>
<h1>Suporte</h1>
<p>Entre em contato com o suporte pelo email suporte@example.com.</p>
</body>
</html>
`))

	indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Painel</title></head>
<body>
<h1>Bem-vindo, {{.Username}}</h1>
</body>
</html>
`))
)

func (h *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	data := struct{ Next string }{Next: safeNext(r.URL.Query().Get("next"))}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginTemplate.Execute(w, data); err != nil {
		slog.Warn("render login failed", "err", err)
	}
}

// HandleLoginSubmit authenticates the posted credentials. Any failure sends
// the user back to the login page with no detail; error messaging is the
// template's concern, not this layer's.
func (h *Handler) HandleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	next := safeNext(r.PostFormValue("next"))

	creds, err := h.Creds.GetCredentialsByEmail(r.Context(), email)
	if err != nil {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}
	if err := auth.CheckPassword(creds.PasswordHash, password); err != nil {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:    creds.UserID,
		Username:  creds.Username,
		Superuser: creds.Superuser,
	}, sessionTTL)
	if err != nil {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	h.Creds.TouchLastLogin(r.Context(), creds.UserID)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})

	if next == "" {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}

func (h *Handler) HandleSupportPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := supportTemplate.Execute(w, nil); err != nil {
		slog.Warn("render suporte failed", "err", err)
	}
}

// HandleIndex is the authenticated landing page. Unauthenticated requests are
// redirected to the login page with the original path preserved in the next
// parameter.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return
	}

	data := struct{ Username string }{Username: user.Username}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Warn("render index failed", "err", err)
	}
}

// safeNext keeps post-login redirects on this host.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
