package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
)

// Context keys set by Session for downstream handlers.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyRole     = "role"
	KeyToken    = "session_token"
)

// Session resolves the session cookie against the store and injects the
// principal into the Echo context. It never rejects a request: anonymous
// requests simply carry no principal, and the authorization middleware
// decides what they may reach.
func Session(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := auth.CurrentUser(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return next(c)
				}
				return err
			}

			c.Set(KeyUserID, session.UserID)
			c.Set(KeyUsername, session.Username)
			c.Set(KeyRole, string(session.Role))
			c.Set(KeyToken, session.Token)

			return next(c)
		}
	}
}
