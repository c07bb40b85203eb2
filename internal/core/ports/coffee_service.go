package ports

import (
	"context"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

// CoffeeInput carries the mutable fields of a menu item from the transport
// layer to the service.
type CoffeeInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
}

// CoffeeService defines use-case operations for the coffee menu.
type CoffeeService interface {
	List(ctx context.Context) ([]*domain.Coffee, error)
	Get(ctx context.Context, id string) (*domain.Coffee, error)
	Create(ctx context.Context, input CoffeeInput) (*domain.Coffee, error)
	Update(ctx context.Context, id string, input CoffeeInput) (*domain.Coffee, error)
	Delete(ctx context.Context, id string) error
}
