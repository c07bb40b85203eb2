package ports

import (
	"context"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

// CoffeeRepository defines persistence operations for menu items.
type CoffeeRepository interface {
	Insert(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error)
	FindByID(ctx context.Context, id string) (*domain.Coffee, error)
	FindAll(ctx context.Context) ([]*domain.Coffee, error)
	Update(ctx context.Context, coffee *domain.Coffee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
