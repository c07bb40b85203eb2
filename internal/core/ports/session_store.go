package ports

import (
	"context"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

// SessionStore defines how opaque-token sessions are stored and retrieved.
// Implementations must treat the token as the only lookup key and expire
// sessions server-side.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	// CountByUser returns the number of live sessions held by a user.
	// The count is best-effort; it backs an advisory concurrency cap only.
	CountByUser(ctx context.Context, userID string) (int64, error)
}
