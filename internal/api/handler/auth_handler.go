package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/backoffice/internal/api/middleware"
	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
)

// AuthHandler exposes the login/logout/whoami endpoints.
type AuthHandler struct {
	auth       ports.AuthService
	cookieName string
}

func NewAuthHandler(auth ports.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName}
}

// Login authenticates a user and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginResponse{Success: false, Message: "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginResponse{Success: false, Message: "Invalid request"})
	}

	session, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountDisabled):
			return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Message: "Account is disabled"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Intentionally the same message for unknown users and wrong
			// passwords, so usernames cannot be enumerated.
			return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Message: "Invalid username or password"})
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, loginResponse{
		Success:  true,
		Role:     string(session.Role),
		Username: session.Username,
		Message:  "Login successful",
	})
}

// Logout invalidates the current session and expires the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, logoutResponse{Success: true, Message: "Logged out successfully"})
}

// CurrentUser reports the principal bound to the session cookie.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  currentUserResponse
// @Failure      401  {object}  currentUserResponse
// @Router       /api/auth/user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	username, _ := c.Get(middleware.KeyUsername).(string)
	role, _ := c.Get(middleware.KeyRole).(string)

	if username == "" || role == "" {
		return c.JSON(http.StatusUnauthorized, currentUserResponse{
			Authenticated: false,
			Message:       "Not authenticated",
		})
	}

	return c.JSON(http.StatusOK, currentUserResponse{
		Username:      username,
		Role:          role,
		Authenticated: true,
	})
}
