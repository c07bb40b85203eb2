package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

func newTestSeeder(users *stubUserRepo, coffees *memCoffeeRepo) *Seeder {
	return NewSeeder(
		users,
		coffees,
		SeedAccount{Username: "admin", Password: "admin123"},
		SeedAccount{Username: "staff", Password: "staff123"},
		zerolog.Nop(),
	)
}

func TestSeeder_CreatesDefaults(t *testing.T) {
	users := &stubUserRepo{users: make(map[string]*domain.User)}
	coffees := newMemCoffeeRepo()

	if err := newTestSeeder(users, coffees).Run(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdmin || !admin.Enabled {
		t.Fatalf("unexpected admin account: %+v", admin)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")) != nil {
		t.Fatalf("admin password not hashed from seed config")
	}

	staff, err := users.FindByUsername(context.Background(), "staff")
	if err != nil {
		t.Fatalf("staff not seeded: %v", err)
	}
	if staff.Role != domain.RoleStaff {
		t.Fatalf("unexpected staff role: %s", staff.Role)
	}

	count, _ := coffees.Count(context.Background())
	if count != int64(len(defaultMenu)) {
		t.Fatalf("expected %d menu items, got %d", len(defaultMenu), count)
	}
}

func TestSeeder_Idempotent(t *testing.T) {
	users := &stubUserRepo{users: make(map[string]*domain.User)}
	coffees := newMemCoffeeRepo()
	seeder := newTestSeeder(users, coffees)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	admins, staff := 0, 0
	for _, u := range users.users {
		switch u.Role {
		case domain.RoleAdmin:
			admins++
		case domain.RoleStaff:
			staff++
		}
	}
	if admins != 1 || staff != 1 {
		t.Fatalf("expected exactly one admin and one staff, got %d/%d", admins, staff)
	}

	count, _ := coffees.Count(context.Background())
	if count != int64(len(defaultMenu)) {
		t.Fatalf("menu duplicated on reseed: %d items", count)
	}
}

func TestSeeder_RequiresConfiguredCredentials(t *testing.T) {
	users := &stubUserRepo{users: make(map[string]*domain.User)}
	seeder := NewSeeder(users, newMemCoffeeRepo(), SeedAccount{Username: "admin"}, SeedAccount{Username: "staff", Password: "x"}, zerolog.Nop())

	if err := seeder.Run(context.Background()); err == nil {
		t.Fatalf("expected an error for a missing seed password")
	}
}
