package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
)

// SeedAccount holds the configured credentials for a default account.
type SeedAccount struct {
	Username string
	Password string
}

// Seeder inserts the default accounts and the fixed menu at startup.
// Running it again is a no-op: accounts are looked up by username first
// and the menu is only written when the store is empty.
type Seeder struct {
	users   ports.UserRepository
	coffees ports.CoffeeRepository
	admin   SeedAccount
	staff   SeedAccount
	log     zerolog.Logger
}

func NewSeeder(users ports.UserRepository, coffees ports.CoffeeRepository, admin, staff SeedAccount, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, coffees: coffees, admin: admin, staff: staff, log: log}
}

// Run seeds users then the menu. It returns the first hard error; an
// already-existing row is never an error.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUser(ctx, s.admin, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.seedUser(ctx, s.staff, domain.RoleStaff); err != nil {
		return err
	}
	return s.seedMenu(ctx)
}

func (s *Seeder) seedUser(ctx context.Context, account SeedAccount, role domain.Role) error {
	if account.Username == "" || account.Password == "" {
		return fmt.Errorf("seed %s account: username and password must be configured", role)
	}

	_, err := s.users.FindByUsername(ctx, account.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed %s account: %w", role, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed %s account: %w", role, err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     account.Username,
		PasswordHash: string(hash),
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// Lost a race against a concurrent seeder; the row exists either way.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("seed %s account: %w", role, err)
	}

	s.log.Info().Str("username", account.Username).Str("role", string(role)).Msg("default account created")
	return nil
}

func (s *Seeder) seedMenu(ctx context.Context) error {
	count, err := s.coffees.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	if count > 0 {
		s.log.Info().Int64("items", count).Msg("coffee menu already initialized")
		return nil
	}

	now := time.Now().UTC()
	for _, item := range defaultMenu {
		coffee := item
		coffee.Available = true
		coffee.CreatedAt = now
		coffee.UpdatedAt = now
		if _, err := s.coffees.Insert(ctx, &coffee); err != nil {
			return fmt.Errorf("seed menu: insert %q: %w", coffee.Name, err)
		}
	}

	s.log.Info().Int("items", len(defaultMenu)).Msg("coffee menu initialized")
	return nil
}

var defaultMenu = []domain.Coffee{
	{Name: "Espresso", Description: "Rich and bold espresso shot", Price: 2.50, Category: "Coffee"},
	{Name: "Cappuccino", Description: "Espresso with steamed milk and foam", Price: 4.00, Category: "Coffee"},
	{Name: "Latte", Description: "Espresso with steamed milk", Price: 4.50, Category: "Coffee"},
	{Name: "Americano", Description: "Espresso with hot water", Price: 3.00, Category: "Coffee"},
	{Name: "Mocha", Description: "Chocolate flavored coffee drink", Price: 5.00, Category: "Coffee"},
	{Name: "Macchiato", Description: "Espresso with a dollop of steamed milk", Price: 4.25, Category: "Coffee"},
	{Name: "Flat White", Description: "Double espresso with steamed milk", Price: 4.75, Category: "Coffee"},
	{Name: "Cold Brew", Description: "Smooth cold coffee concentrate", Price: 3.50, Category: "Cold Coffee"},
	{Name: "Iced Latte", Description: "Chilled espresso with cold milk", Price: 4.50, Category: "Cold Coffee"},
	{Name: "Frappuccino", Description: "Blended coffee drink with ice", Price: 5.50, Category: "Cold Coffee"},
	{Name: "Green Tea Latte", Description: "Matcha green tea with steamed milk", Price: 4.25, Category: "Tea"},
	{Name: "Chai Latte", Description: "Spiced tea with steamed milk", Price: 4.00, Category: "Tea"},
}
