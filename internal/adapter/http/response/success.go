package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health statuses.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string    `json:"status" example:"ok"`
	Time   time.Time `json:"time"`
	Error  string    `json:"error,omitempty"`
}

// Healthy writes a 200 health response.
func Healthy(c echo.Context, now time.Time) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: StatusOK,
		Time:   now,
	})
}

// Unhealthy writes a 503 health response carrying the failure reason.
func Unhealthy(c echo.Context, now time.Time, reason string) error {
	return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
		Status: StatusUnavailable,
		Time:   now,
		Error:  reason,
	})
}
