package db

import (
	"context"
	"testing"

	"rhcore/internal/domain/auth"
	"rhcore/internal/platform/config"
)

type fakeAdminStore struct {
	users map[string]string // username -> password hash
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{users: map[string]string{}}
}

func (f *fakeAdminStore) UserExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeAdminStore) CreateSuperuser(_ context.Context, username, _, passwordHash string) (string, error) {
	f.users[username] = passwordHash
	return "user-" + username, nil
}

type fakeCatalogStore struct {
	permissions  map[int]string
	achievements map[string]string
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{permissions: map[int]string{}, achievements: map[string]string{}}
}

func (f *fakeCatalogStore) PermissionExists(_ context.Context, id int) (bool, error) {
	_, ok := f.permissions[id]
	return ok, nil
}

func (f *fakeCatalogStore) CreatePermission(_ context.Context, id int, name string) error {
	f.permissions[id] = name
	return nil
}

func (f *fakeCatalogStore) AchievementExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := f.achievements[name]
	return ok, nil
}

func (f *fakeCatalogStore) CreateAchievement(_ context.Context, name, imagePath string) (string, error) {
	f.achievements[name] = imagePath
	return "ach-" + name, nil
}

func testConfig() config.Config {
	return config.Config{
		DefaultAdminUsername: "admin",
		DefaultAdminEmail:    "admin@example.com",
		DefaultAdminPassword: "admin123",
	}
}

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	store := newFakeAdminStore()
	cfg := testConfig()

	if err := EnsureDefaultAdmin(context.Background(), store, cfg); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(store.users))
	}
	firstHash := store.users["admin"]
	if err := auth.CheckPassword(firstHash, "admin123"); err != nil {
		t.Fatalf("seeded password does not match: %v", err)
	}

	if err := EnsureDefaultAdmin(context.Background(), store, cfg); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected 1 user after second run, got %d", len(store.users))
	}
	if store.users["admin"] != firstHash {
		t.Fatal("second run must not overwrite existing credentials")
	}
}

func TestEnsureDefaultAdminKeepsExistingAccount(t *testing.T) {
	store := newFakeAdminStore()
	store.users["admin"] = "pre-existing-hash"

	if err := EnsureDefaultAdmin(context.Background(), store, testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.users["admin"] != "pre-existing-hash" {
		t.Fatal("existing account credentials were modified")
	}
}

func TestEnsureCatalogSeeded(t *testing.T) {
	store := newFakeCatalogStore()

	if err := EnsureCatalogSeeded(context.Background(), store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(store.permissions) != 4 {
		t.Fatalf("expected 4 permissions, got %d", len(store.permissions))
	}
	if len(store.achievements) != 3 {
		t.Fatalf("expected 3 achievements, got %d", len(store.achievements))
	}
	if store.permissions[4] != "Aprovar Solicitações" {
		t.Fatalf("unexpected permission 4: %q", store.permissions[4])
	}
	if store.achievements["Meta Alcançada"] != "achievements/goal_achieved.png" {
		t.Fatalf("unexpected achievement image: %q", store.achievements["Meta Alcançada"])
	}
}

func TestEnsureCatalogSeededFillsOnlyMissing(t *testing.T) {
	store := newFakeCatalogStore()
	store.permissions[2] = "renamed by operator"
	store.achievements["Funcionário do Mês"] = "custom/path.png"

	if err := EnsureCatalogSeeded(context.Background(), store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if store.permissions[2] != "renamed by operator" {
		t.Fatal("existing permission row was modified")
	}
	if store.achievements["Funcionário do Mês"] != "custom/path.png" {
		t.Fatal("existing achievement row was modified")
	}
	if len(store.permissions) != 4 || len(store.achievements) != 3 {
		t.Fatalf("missing entries were not created: %d permissions, %d achievements",
			len(store.permissions), len(store.achievements))
	}
}
