package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/metrics"
)

// Handlers groups the handlers served by the API.
type Handlers struct {
	Airport *AirportHandler
	Airline *AirlineHandler
	Route   *RouteHandler
	Hotel   *HotelHandler
	Health  *HealthHandler
}

// RegisterRoutes registers all travel-sample API routes.
// It installs the request validator and error handler when none is set.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	if e.Validator == nil {
		e.Validator = NewValidator()
	}
	e.HTTPErrorHandler = response.HTTPErrorHandler

	// Operational endpoints (no version prefix)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/swagger/index.html")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	if h.Health != nil {
		e.GET("/health", h.Health.Health)
	}

	api := e.Group("/api/v1")

	// Static list routes take precedence over /:id in echo's router.
	airport := api.Group("/airport")
	airport.GET("/list", h.Airport.List)
	airport.GET("/direct-connections", h.Airport.DirectConnections)
	airport.POST("/:id", h.Airport.Create)
	airport.GET("/:id", h.Airport.Get)
	airport.PUT("/:id", h.Airport.Update)
	airport.DELETE("/:id", h.Airport.Delete)

	airline := api.Group("/airline")
	airline.GET("/list", h.Airline.List)
	airline.GET("/to-airport", h.Airline.ToAirport)
	airline.POST("/:id", h.Airline.Create)
	airline.GET("/:id", h.Airline.Get)
	airline.PUT("/:id", h.Airline.Update)
	airline.DELETE("/:id", h.Airline.Delete)

	route := api.Group("/route")
	route.POST("/:id", h.Route.Create)
	route.GET("/:id", h.Route.Get)
	route.PUT("/:id", h.Route.Update)
	route.DELETE("/:id", h.Route.Delete)

	hotel := api.Group("/hotel")
	hotel.GET("/autocomplete", h.Hotel.Autocomplete)
	hotel.POST("/filter", h.Hotel.Filter)
}
