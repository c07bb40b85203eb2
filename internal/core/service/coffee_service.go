package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
	"github.com/coffeeshop/backoffice/internal/metrics"
)

// CoffeeService implements menu CRUD. Each operation is a single store
// call; the repository serializes conflicting writes.
type CoffeeService struct {
	repo ports.CoffeeRepository
	log  zerolog.Logger
}

func NewCoffeeService(repo ports.CoffeeRepository, log zerolog.Logger) *CoffeeService {
	return &CoffeeService{repo: repo, log: log}
}

func (s *CoffeeService) List(ctx context.Context) ([]*domain.Coffee, error) {
	return s.repo.FindAll(ctx)
}

func (s *CoffeeService) Get(ctx context.Context, id string) (*domain.Coffee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CoffeeService) Create(ctx context.Context, input ports.CoffeeInput) (*domain.Coffee, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	coffee := &domain.Coffee{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Available:   input.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, coffee)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create coffee")
		return nil, err
	}

	metrics.CoffeeMutationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("id", created.ID).Str("name", created.Name).Msg("coffee created")
	return created, nil
}

// Update overwrites the mutable fields of an existing item and refreshes
// its UpdatedAt stamp. CreatedAt is preserved.
func (s *CoffeeService) Update(ctx context.Context, id string, input ports.CoffeeInput) (*domain.Coffee, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Category = input.Category
	existing.Available = input.Available
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("failed to update coffee")
		return nil, err
	}

	metrics.CoffeeMutationsTotal.WithLabelValues("update").Inc()
	return existing, nil
}

func (s *CoffeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CoffeeMutationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("id", id).Msg("coffee deleted")
	return nil
}

func validateInput(input ports.CoffeeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidCoffee)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidCoffee)
	}
	return nil
}
