package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/backoffice/internal/api/authz"
	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/metrics"
)

// Authorize enforces the policy table before any handler runs. API paths
// get JSON errors; page paths get the form-login treatment (redirect to
// the login page when anonymous).
func Authorize(policy *authz.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(string)
			req := c.Request()

			switch policy.Evaluate(req.Method, req.URL.Path, domain.Role(role)) {
			case authz.VerdictAllow:
				return next(c)
			case authz.VerdictUnauthenticated:
				metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
				if isAPIPath(req.URL.Path) {
					return c.JSON(http.StatusUnauthorized, map[string]any{
						"authenticated": false,
						"message":       "Not authenticated",
					})
				}
				return c.Redirect(http.StatusFound, "/login.html")
			default:
				metrics.AuthzDeniedTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
		}
	}
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
