package db

import (
	"context"
	"log/slog"

	"rhcore/internal/domain/auth"
	"rhcore/internal/platform/config"
)

// AdminStore is the slice of the user store the admin seeder needs.
type AdminStore interface {
	UserExistsByUsername(ctx context.Context, username string) (bool, error)
	CreateSuperuser(ctx context.Context, username, email, passwordHash string) (string, error)
}

// CatalogStore is the slice of the core store the catalog seeder needs.
type CatalogStore interface {
	PermissionExists(ctx context.Context, id int) (bool, error)
	CreatePermission(ctx context.Context, id int, name string) error
	AchievementExistsByName(ctx context.Context, name string) (bool, error)
	CreateAchievement(ctx context.Context, name, imagePath string) (string, error)
}

type seedPermission struct {
	ID   int
	Name string
}

type seedAchievement struct {
	Name  string
	Image string
}

var defaultPermissions = []seedPermission{
	{ID: 1, Name: "Visualizar Relatórios"},
	{ID: 2, Name: "Gerenciar Usuários"},
	{ID: 3, Name: "Editar Configurações"},
	{ID: 4, Name: "Aprovar Solicitações"},
}

var defaultAchievements = []seedAchievement{
	{Name: "Funcionário do Mês", Image: "achievements/employee_of_the_month.png"},
	{Name: "Meta Alcançada", Image: "achievements/goal_achieved.png"},
	{Name: "Aniversário de Empresa", Image: "achievements/company_anniversary.png"},
}

// EnsureDefaultAdmin creates the configured administrator account when no user
// with that username exists. Existing accounts are never modified.
func EnsureDefaultAdmin(ctx context.Context, store AdminStore, cfg config.Config) error {
	exists, err := store.UserExistsByUsername(ctx, cfg.DefaultAdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}

	if _, err := store.CreateSuperuser(ctx, cfg.DefaultAdminUsername, cfg.DefaultAdminEmail, hash); err != nil {
		return err
	}
	slog.Info("default administrator created", "username", cfg.DefaultAdminUsername)
	return nil
}

// EnsureCatalogSeeded creates the fixed permission and achievement catalogs,
// one entry at a time. Entries that already exist are left untouched, so a
// partially completed run self-heals on the next invocation.
func EnsureCatalogSeeded(ctx context.Context, store CatalogStore) error {
	for _, perm := range defaultPermissions {
		exists, err := store.PermissionExists(ctx, perm.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := store.CreatePermission(ctx, perm.ID, perm.Name); err != nil {
			return err
		}
		slog.Info("permission created", "id", perm.ID, "name", perm.Name)
	}

	for _, ach := range defaultAchievements {
		exists, err := store.AchievementExistsByName(ctx, ach.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := store.CreateAchievement(ctx, ach.Name, ach.Image); err != nil {
			return err
		}
		slog.Info("achievement created", "name", ach.Name)
	}

	return nil
}
