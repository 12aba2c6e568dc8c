package http

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/adapter/http/middleware"
	"github.com/travel-sample/travel-sample-api/internal/adapter/http/response"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/logger"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/timeutil"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	store Pinger
	clock timeutil.Clock
}

// NewHealthHandler creates a HealthHandler that pings store.
// If clock is nil, the real clock is used.
func NewHealthHandler(store Pinger, clock timeutil.Clock) *HealthHandler {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &HealthHandler{store: store, clock: clock}
}

// Health handles GET /health
//
// @Summary Health check
// @Description Pings the key-value, query and search services of the document store
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		logger.ForRequest(c.Request().Context(), middleware.GetRequestID(c)).Warn().
			Err(err).
			Msg("health check failed")
		return response.Unhealthy(c, h.clock.Now(), err.Error())
	}
	return response.Healthy(c, h.clock.Now())
}
