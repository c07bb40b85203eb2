package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/backoffice/internal/core/domain"
	"github.com/coffeeshop/backoffice/internal/core/ports"
)

// CoffeeHandler handles HTTP requests for the coffee menu. Role checks
// happen upstream in the authorization middleware; handlers only translate
// between JSON and the service.
type CoffeeHandler struct {
	service ports.CoffeeService
}

func NewCoffeeHandler(service ports.CoffeeService) *CoffeeHandler {
	return &CoffeeHandler{service: service}
}

// List returns every menu item.
//
// @Summary      List coffees
// @Tags         coffees
// @Produce      json
// @Success      200  {array}  coffeeResponse
// @Router       /api/coffees [get]
func (h *CoffeeHandler) List(c echo.Context) error {
	coffees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]coffeeResponse, 0, len(coffees))
	for _, coffee := range coffees {
		resp = append(resp, toCoffeeResponse(coffee))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single menu item by id.
//
// @Summary      Get a coffee
// @Tags         coffees
// @Produce      json
// @Param        id   path      string  true  "Coffee id"
// @Success      200  {object}  coffeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/coffees/{id} [get]
func (h *CoffeeHandler) Get(c echo.Context) error {
	coffee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCoffeeResponse(coffee))
}

// Create adds a menu item.
//
// @Summary      Create a coffee
// @Tags         coffees
// @Accept       json
// @Produce      json
// @Param        body  body      coffeeRequest  true  "Coffee fields"
// @Success      200   {object}  coffeeResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/coffees [post]
func (h *CoffeeHandler) Create(c echo.Context) error {
	req, err := bindCoffee(c)
	if err != nil {
		return err
	}

	coffee, err := h.service.Create(c.Request().Context(), toCoffeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCoffeeResponse(coffee))
}

// Update overwrites the mutable fields of a menu item.
//
// @Summary      Update a coffee
// @Tags         coffees
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Coffee id"
// @Param        body  body      coffeeRequest  true  "Coffee fields"
// @Success      200   {object}  coffeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/coffees/{id} [put]
func (h *CoffeeHandler) Update(c echo.Context) error {
	req, err := bindCoffee(c)
	if err != nil {
		return err
	}

	coffee, err := h.service.Update(c.Request().Context(), c.Param("id"), toCoffeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCoffeeResponse(coffee))
}

// Delete removes a menu item.
//
// @Summary      Delete a coffee
// @Tags         coffees
// @Produce      json
// @Param        id   path      string  true  "Coffee id"
// @Success      200  {object}  deleteCoffeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/coffees/{id} [delete]
func (h *CoffeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteCoffeeResponse{Success: true})
}

func bindCoffee(c echo.Context) (coffeeRequest, error) {
	var req coffeeRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

func toCoffeeInput(req coffeeRequest) ports.CoffeeInput {
	return ports.CoffeeInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	}
}

func toCoffeeResponse(coffee *domain.Coffee) coffeeResponse {
	return coffeeResponse{
		ID:          coffee.ID,
		Name:        coffee.Name,
		Description: coffee.Description,
		Price:       coffee.Price,
		Category:    coffee.Category,
		Available:   coffee.Available,
		CreatedAt:   coffee.CreatedAt,
		UpdatedAt:   coffee.UpdatedAt,
	}
}
