package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
)

const entityAirline = "Airline"

// AirlineHandler handles HTTP requests for airline endpoints.
type AirlineHandler struct {
	useCase usecase.AirlineUseCase
	docs    documentHandler[domain.Airline]
}

// NewAirlineHandler creates a new AirlineHandler with the given use case.
func NewAirlineHandler(uc usecase.AirlineUseCase) *AirlineHandler {
	return &AirlineHandler{
		useCase: uc,
		docs: documentHandler[domain.Airline]{
			entity:     entityAirline,
			useCase:    uc,
			newRequest: func() requestBody[domain.Airline] { return &AirlineRequest{} },
		},
	}
}

// Create handles POST /api/v1/airline/{id}
//
// @Summary Create an airline
// @Tags airline
// @Accept json
// @Produce json
// @Param id path string true "Airline ID" example(airline_10)
// @Param request body AirlineRequest true "Airline document"
// @Success 201 {object} domain.Airline
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Airline already exists"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airline/{id} [post]
func (h *AirlineHandler) Create(c echo.Context) error {
	return h.docs.create(c)
}

// Get handles GET /api/v1/airline/{id}
//
// @Summary Get an airline
// @Tags airline
// @Produce json
// @Param id path string true "Airline ID" example(airline_10)
// @Success 200 {object} domain.Airline
// @Failure 404 {object} response.ErrorDetail "Airline not found"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airline/{id} [get]
func (h *AirlineHandler) Get(c echo.Context) error {
	return h.docs.get(c)
}

// Update handles PUT /api/v1/airline/{id}
//
// @Summary Create or replace an airline
// @Tags airline
// @Accept json
// @Produce json
// @Param id path string true "Airline ID" example(airline_10)
// @Param request body AirlineRequest true "Airline document"
// @Success 200 {object} domain.Airline
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airline/{id} [put]
func (h *AirlineHandler) Update(c echo.Context) error {
	return h.docs.update(c)
}

// Delete handles DELETE /api/v1/airline/{id}
//
// @Summary Delete an airline
// @Tags airline
// @Param id path string true "Airline ID" example(airline_10)
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Airline not found"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airline/{id} [delete]
func (h *AirlineHandler) Delete(c echo.Context) error {
	return h.docs.remove(c)
}

// List handles GET /api/v1/airline/list
//
// @Summary List airlines
// @Description Airlines ordered by name, optionally restricted to one country
// @Tags airline
// @Produce json
// @Param country query string false "Exact country name" example(United States)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} domain.Airline
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airline/list [get]
func (h *AirlineHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return handleError(c, entityAirline, err)
	}

	filter := domain.ListFilter{
		Country: strings.TrimSpace(c.QueryParam("country")),
		Page:    page,
	}
	airlines, err := h.useCase.List(c.Request().Context(), filter)
	if err != nil {
		return handleError(c, entityAirline, err)
	}
	return response.OK(c, airlines)
}

// ToAirport handles GET /api/v1/airline/to-airport
//
// @Summary List airlines flying to an airport
// @Description Distinct airlines with a route into the given airport, ordered by name
// @Tags airline
// @Produce json
// @Param airport query string true "Destination FAA code" example(SFO)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} domain.Airline
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airline/to-airport [get]
func (h *AirlineHandler) ToAirport(c echo.Context) error {
	airport, err := requiredQuery(c, "airport")
	if err != nil {
		return handleError(c, entityAirline, err)
	}

	page, err := parsePage(c)
	if err != nil {
		return handleError(c, entityAirline, err)
	}

	airlines, err := h.useCase.ToAirport(c.Request().Context(), airport, page)
	if err != nil {
		return handleError(c, entityAirline, err)
	}
	return response.OK(c, airlines)
}
