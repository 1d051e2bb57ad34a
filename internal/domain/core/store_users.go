package core

import (
	"context"
	"log/slog"
)

type Credentials struct {
	UserID       string
	Username     string
	PasswordHash string
	Superuser    bool
}

func (s *Store) GetCredentialsByEmail(ctx context.Context, email string) (*Credentials, error) {
	var creds Credentials
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, password_hash, is_superuser
    FROM users
    WHERE email = $1
  `, email).Scan(&creds.UserID, &creds.Username, &creds.PasswordHash, &creds.Superuser)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, COALESCE(full_name, ''), email, is_superuser, created_at, last_login
    FROM users
    WHERE id = $1
  `, userID).Scan(&user.ID, &user.Username, &user.FullName, &user.Email, &user.Superuser, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM users
    WHERE username = $1
  `, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateSuperuser(ctx context.Context, username, email, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, email, password_hash, is_superuser)
    VALUES ($1, $2, $3, TRUE)
    RETURNING id
  `, username, email, passwordHash).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) CreateUser(ctx context.Context, username, fullName, email, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, full_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, username, nullIfEmpty(fullName), email, passwordHash).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, userID string) {
	if _, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID); err != nil {
		slog.Warn("update last_login failed", "userId", userID, "err", err)
	}
}
