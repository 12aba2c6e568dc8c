package http

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
)

const entityHotel = "Hotel"

// HotelHandler handles HTTP requests for hotel search endpoints.
type HotelHandler struct {
	useCase usecase.HotelUseCase
}

// NewHotelHandler creates a new HotelHandler with the given use case.
func NewHotelHandler(uc usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{useCase: uc}
}

// Autocomplete handles GET /api/v1/hotel/autocomplete
//
// @Summary Autocomplete hotel names
// @Description Up to 50 hotel names matching the given text
// @Tags hotel
// @Produce json
// @Param name query string true "Name fragment" example(sea)
// @Success 200 {array} domain.HotelName
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/hotel/autocomplete [get]
func (h *HotelHandler) Autocomplete(c echo.Context) error {
	name, err := requiredQuery(c, "name")
	if err != nil {
		return handleError(c, entityHotel, err)
	}

	names, err := h.useCase.Autocomplete(c.Request().Context(), name)
	if err != nil {
		return handleError(c, entityHotel, err)
	}
	return response.OK(c, names)
}

// Filter handles POST /api/v1/hotel/filter
//
// @Summary Search hotels
// @Description Hotels matching every provided field. Name, title and description are full-text matches; city, state and country are exact.
// @Tags hotel
// @Accept json
// @Produce json
// @Param request body HotelFilterRequest true "Search criteria"
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} domain.Hotel
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/hotel/filter [post]
func (h *HotelHandler) Filter(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return handleError(c, entityHotel, err)
	}

	var req HotelFilterRequest
	if err := bindBody(c, &req); err != nil {
		return handleError(c, entityHotel, err)
	}

	hotels, err := h.useCase.Filter(c.Request().Context(), req.ToDomain(), page)
	if err != nil {
		return handleError(c, entityHotel, err)
	}
	return response.OK(c, hotels)
}
