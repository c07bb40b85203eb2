package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
)

type stubCoffeeService struct {
	listFn   func(ctx context.Context) ([]*domain.Coffee, error)
	getFn    func(ctx context.Context, id string) (*domain.Coffee, error)
	createFn func(ctx context.Context, input ports.CoffeeInput) (*domain.Coffee, error)
	updateFn func(ctx context.Context, id string, input ports.CoffeeInput) (*domain.Coffee, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCoffeeService) List(ctx context.Context) ([]*domain.Coffee, error) {
	return s.listFn(ctx)
}

func (s *stubCoffeeService) Get(ctx context.Context, id string) (*domain.Coffee, error) {
	return s.getFn(ctx, id)
}

func (s *stubCoffeeService) Create(ctx context.Context, input ports.CoffeeInput) (*domain.Coffee, error) {
	return s.createFn(ctx, input)
}

func (s *stubCoffeeService) Update(ctx context.Context, id string, input ports.CoffeeInput) (*domain.Coffee, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCoffeeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newCoffeeEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sampleCoffee() *domain.Coffee {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Coffee{
		ID:          "65a1",
		Name:        "Espresso",
		Description: "Rich and bold espresso shot",
		Price:       2.50,
		Category:    "Coffee",
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCoffeeHandler_List(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		listFn: func(ctx context.Context) ([]*domain.Coffee, error) {
			return []*domain.Coffee{sampleCoffee()}, nil
		},
	}
	handler := NewCoffeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/coffees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Espresso" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCoffeeHandler_List_Empty(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		listFn: func(ctx context.Context) ([]*domain.Coffee, error) {
			return nil, nil
		},
	}
	handler := NewCoffeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/coffees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Empty list must serialize as [], not null.
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected [], got %q", body)
	}
}

func TestCoffeeHandler_Get(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		getFn: func(ctx context.Context, id string) (*domain.Coffee, error) {
			if id != "65a1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return sampleCoffee(), nil
		},
	}
	handler := NewCoffeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/coffees/:id")
	c.SetParamNames("id")
	c.SetParamValues("65a1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCoffeeHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		getFn: func(ctx context.Context, id string) (*domain.Coffee, error) {
			return nil, domain.ErrCoffeeNotFound
		},
	}
	handler := NewCoffeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/coffees/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	// The central error handler maps ErrCoffeeNotFound to 404; the handler
	// just propagates it.
	err := handler.Get(c)
	if err != domain.ErrCoffeeNotFound {
		t.Fatalf("expected ErrCoffeeNotFound, got %v", err)
	}
}

func TestCoffeeHandler_Create(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		createFn: func(ctx context.Context, input ports.CoffeeInput) (*domain.Coffee, error) {
			if input.Name != "Cortado" || input.Price != 3.75 {
				t.Fatalf("unexpected input: %+v", input)
			}
			coffee := sampleCoffee()
			coffee.Name = input.Name
			coffee.Price = input.Price
			return coffee, nil
		},
	}
	handler := NewCoffeeHandler(stub)

	body := strings.NewReader(`{"name":"Cortado","description":"Espresso cut with milk","price":3.75,"category":"Coffee","available":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/coffees", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] == "" || resp["name"] != "Cortado" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCoffeeHandler_Create_RejectsBadPayload(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		createFn: func(ctx context.Context, input ports.CoffeeInput) (*domain.Coffee, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCoffeeHandler(stub)

	cases := map[string]string{
		"not json":       `not-json`,
		"missing name":   `{"price":3.75}`,
		"negative price": `{"name":"Cortado","price":-1}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/coffees", strings.NewReader(payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestCoffeeHandler_Update(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		updateFn: func(ctx context.Context, id string, input ports.CoffeeInput) (*domain.Coffee, error) {
			if id != "65a1" {
				t.Fatalf("unexpected id: %s", id)
			}
			coffee := sampleCoffee()
			coffee.Name = input.Name
			return coffee, nil
		},
	}
	handler := NewCoffeeHandler(stub)

	body := strings.NewReader(`{"name":"Doppio","price":3.00}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/coffees/:id")
	c.SetParamNames("id")
	c.SetParamValues("65a1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCoffeeHandler_Delete(t *testing.T) {
	e := newCoffeeEcho()
	deleted := ""
	stub := &stubCoffeeService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewCoffeeHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/coffees/:id")
	c.SetParamNames("id")
	c.SetParamValues("65a1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "65a1" {
		t.Fatalf("service not called with id, got %q", deleted)
	}
}

func TestCoffeeHandler_Delete_NotFoundPropagates(t *testing.T) {
	e := newCoffeeEcho()
	stub := &stubCoffeeService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrCoffeeNotFound
		},
	}
	handler := NewCoffeeHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/coffees/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Delete(c); err != domain.ErrCoffeeNotFound {
		t.Fatalf("expected ErrCoffeeNotFound, got %v", err)
	}
}
