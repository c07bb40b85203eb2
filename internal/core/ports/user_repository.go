package ports

import (
	"context"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

// UserRepository defines persistence operations for back-office accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
