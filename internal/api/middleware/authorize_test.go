package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/backoffice/internal/api/authz"
)

func runAuthorize(t *testing.T, method, path, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(KeyRole, role)
	}

	called := false
	mw := Authorize(authz.Default())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestAuthorize_AnonymousAPIRequestGets401(t *testing.T) {
	rec, called := runAuthorize(t, http.MethodGet, "/api/coffees", "")
	if called {
		t.Fatalf("handler must not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthorize_AnonymousPageRequestRedirects(t *testing.T) {
	rec, called := runAuthorize(t, http.MethodGet, "/menu.html", "")
	if called {
		t.Fatalf("handler must not run")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login.html" {
		t.Fatalf("expected redirect to /login.html, got %q", loc)
	}
}

func TestAuthorize_StaffWriteGets403(t *testing.T) {
	rec, called := runAuthorize(t, http.MethodPost, "/api/coffees", "STAFF")
	if called {
		t.Fatalf("handler must not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthorize_AdminWritePasses(t *testing.T) {
	rec, called := runAuthorize(t, http.MethodPost, "/api/coffees", "ADMIN")
	if !called {
		t.Fatalf("handler should run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorize_PublicPathPasses(t *testing.T) {
	_, called := runAuthorize(t, http.MethodPost, "/api/auth/login", "")
	if !called {
		t.Fatalf("login endpoint must be reachable anonymously")
	}
}
