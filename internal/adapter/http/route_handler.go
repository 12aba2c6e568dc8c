package http

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
)

// RouteHandler handles HTTP requests for route endpoints.
type RouteHandler struct {
	docs documentHandler[domain.Route]
}

// NewRouteHandler creates a new RouteHandler with the given use case.
func NewRouteHandler(uc usecase.RouteUseCase) *RouteHandler {
	return &RouteHandler{
		docs: documentHandler[domain.Route]{
			entity:     "Route",
			useCase:    uc,
			newRequest: func() requestBody[domain.Route] { return &RouteRequest{} },
		},
	}
}

// Create handles POST /api/v1/route/{id}
//
// @Summary Create a route
// @Tags route
// @Accept json
// @Produce json
// @Param id path string true "Route ID" example(route_10000)
// @Param request body RouteRequest true "Route document"
// @Success 201 {object} domain.Route
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Route already exists"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/route/{id} [post]
func (h *RouteHandler) Create(c echo.Context) error {
	return h.docs.create(c)
}

// Get handles GET /api/v1/route/{id}
//
// @Summary Get a route
// @Tags route
// @Produce json
// @Param id path string true "Route ID" example(route_10000)
// @Success 200 {object} domain.Route
// @Failure 404 {object} response.ErrorDetail "Route not found"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/route/{id} [get]
func (h *RouteHandler) Get(c echo.Context) error {
	return h.docs.get(c)
}

// Update handles PUT /api/v1/route/{id}
//
// @Summary Create or replace a route
// @Tags route
// @Accept json
// @Produce json
// @Param id path string true "Route ID" example(route_10000)
// @Param request body RouteRequest true "Route document"
// @Success 200 {object} domain.Route
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/route/{id} [put]
func (h *RouteHandler) Update(c echo.Context) error {
	return h.docs.update(c)
}

// Delete handles DELETE /api/v1/route/{id}
//
// @Summary Delete a route
// @Tags route
// @Param id path string true "Route ID" example(route_10000)
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Route not found"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/route/{id} [delete]
func (h *RouteHandler) Delete(c echo.Context) error {
	return h.docs.remove(c)
}
