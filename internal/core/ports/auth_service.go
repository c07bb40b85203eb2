package ports

import (
	"context"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

// AuthService implements the login/session lifecycle.
type AuthService interface {
	// Login verifies credentials and creates a new session on success.
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Logout invalidates the session for the given token. Unknown tokens
	// are not an error: logout is idempotent.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves the session for a token. Missing or expired
	// sessions return domain.ErrSessionNotFound.
	CurrentUser(ctx context.Context, token string) (*domain.Session, error)
}
