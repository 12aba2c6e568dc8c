package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"
)

// Options selects the optional middleware installed by Setup.
type Options struct {
	// ServiceName names the server in trace spans.
	ServiceName string

	// Tracing enables OpenTelemetry spans for each request.
	Tracing bool

	// RateLimitRPS is the per-client request rate. Zero disables rate limiting.
	RateLimitRPS float64

	// Recovery configures the panic recovery middleware.
	Recovery RecoveryConfig
}

// DefaultOptions returns options with tracing and rate limiting disabled.
func DefaultOptions() Options {
	return Options{
		ServiceName: "travel-sample-api",
		Recovery:    DefaultRecoveryConfig(),
	}
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. Tracing - Starts the server span so the logger can attach its IDs
//  3. Metrics - Observes the final status written by the error handler
//  4. RequestLogger - Logs all requests with request ID
//  5. Recover - Catches panics and returns 500 (wraps handlers)
//  6. RateLimiter - Rejects clients over their budget with 429
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, opts Options) {
	e.Use(Chain(log, opts)...)
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, opts Options) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}

	if opts.Tracing {
		chain = append(chain, otelecho.Middleware(opts.ServiceName,
			otelecho.WithSkipper(skipOperational)))
	}

	chain = append(chain,
		Metrics(),
		RequestLogger(log),
		RecoverWithConfig(log, opts.Recovery),
	)

	if opts.RateLimitRPS > 0 {
		chain = append(chain, RateLimit(opts.RateLimitRPS))
	}
	return chain
}

// RateLimit returns middleware that limits each client IP to rps requests per
// second, with a burst of the same size.
func RateLimit(rps float64) echo.MiddlewareFunc {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: skipOperational,
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(rps),
			Burst: burst,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	})
}

// skipOperational skips health, metrics and documentation endpoints.
func skipOperational(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || path == "/metrics" || strings.HasPrefix(path, "/swagger")
}
