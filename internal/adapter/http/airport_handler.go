package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
)

const entityAirport = "Airport"

// AirportHandler handles HTTP requests for airport endpoints.
type AirportHandler struct {
	useCase usecase.AirportUseCase
	docs    documentHandler[domain.Airport]
}

// NewAirportHandler creates a new AirportHandler with the given use case.
func NewAirportHandler(uc usecase.AirportUseCase) *AirportHandler {
	return &AirportHandler{
		useCase: uc,
		docs: documentHandler[domain.Airport]{
			entity:     entityAirport,
			useCase:    uc,
			newRequest: func() requestBody[domain.Airport] { return &AirportRequest{} },
		},
	}
}

// Create handles POST /api/v1/airport/{id}
//
// @Summary Create an airport
// @Tags airport
// @Accept json
// @Produce json
// @Param id path string true "Airport ID" example(airport_1273)
// @Param request body AirportRequest true "Airport document"
// @Success 201 {object} domain.Airport
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Airport already exists"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airport/{id} [post]
func (h *AirportHandler) Create(c echo.Context) error {
	return h.docs.create(c)
}

// Get handles GET /api/v1/airport/{id}
//
// @Summary Get an airport
// @Tags airport
// @Produce json
// @Param id path string true "Airport ID" example(airport_1273)
// @Success 200 {object} domain.Airport
// @Failure 404 {object} response.ErrorDetail "Airport not found"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airport/{id} [get]
func (h *AirportHandler) Get(c echo.Context) error {
	return h.docs.get(c)
}

// Update handles PUT /api/v1/airport/{id}
//
// @Summary Create or replace an airport
// @Tags airport
// @Accept json
// @Produce json
// @Param id path string true "Airport ID" example(airport_1273)
// @Param request body AirportRequest true "Airport document"
// @Success 200 {object} domain.Airport
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airport/{id} [put]
func (h *AirportHandler) Update(c echo.Context) error {
	return h.docs.update(c)
}

// Delete handles DELETE /api/v1/airport/{id}
//
// @Summary Delete an airport
// @Tags airport
// @Param id path string true "Airport ID" example(airport_1273)
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Airport not found"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airport/{id} [delete]
func (h *AirportHandler) Delete(c echo.Context) error {
	return h.docs.remove(c)
}

// List handles GET /api/v1/airport/list
//
// @Summary List airports
// @Description Airports ordered by name, optionally restricted to one country
// @Tags airport
// @Produce json
// @Param country query string false "Exact country name" example(France)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} domain.Airport
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airport/list [get]
func (h *AirportHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return handleError(c, entityAirport, err)
	}

	filter := domain.ListFilter{
		Country: strings.TrimSpace(c.QueryParam("country")),
		Page:    page,
	}
	airports, err := h.useCase.List(c.Request().Context(), filter)
	if err != nil {
		return handleError(c, entityAirport, err)
	}
	return response.OK(c, airports)
}

// DirectConnections handles GET /api/v1/airport/direct-connections
//
// @Summary List direct connections
// @Description Destinations reachable by a non-stop route from the given airport
// @Tags airport
// @Produce json
// @Param airport query string true "Source FAA code" example(SFO)
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} domain.Destination
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airport/direct-connections [get]
func (h *AirportHandler) DirectConnections(c echo.Context) error {
	airport, err := requiredQuery(c, "airport")
	if err != nil {
		return handleError(c, entityAirport, err)
	}

	page, err := parsePage(c)
	if err != nil {
		return handleError(c, entityAirport, err)
	}

	destinations, err := h.useCase.DirectConnections(c.Request().Context(), airport, page)
	if err != nil {
		return handleError(c, entityAirport, err)
	}
	return response.OK(c, destinations)
}
