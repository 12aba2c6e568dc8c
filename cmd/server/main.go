// Package main is the entry point for the travel-sample API.
//
//	@title						Travel Sample API
//	@version					1.0.0
//	@description				CRUD and query operations over the travel-sample airports, airlines, routes and hotels.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-sample/travel-sample-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	// Import generated docs for swagger
	_ "github.com/travel-sample/travel-sample-api/docs"

	// Application layers
	"github.com/travel-sample/travel-sample-api/internal/adapter/cache"
	"github.com/travel-sample/travel-sample-api/internal/adapter/couchbase"
	travelhttp "github.com/travel-sample/travel-sample-api/internal/adapter/http"
	"github.com/travel-sample/travel-sample-api/internal/adapter/http/middleware"
	"github.com/travel-sample/travel-sample-api/internal/config"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/logger"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/timeutil"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/tracing"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
)

const (
	serviceName     = "travel-sample-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited")
	}
}

func run() error {
	cfg := config.MustLoad()

	logger.Init(loggerConfig(cfg))
	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: serviceName,
		Environment: cfg.App.Env,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	store, err := connectStore(ctx, func(ctx context.Context) (*couchbase.Store, error) {
		return couchbase.Connect(ctx, couchbase.Config{
			ConnStr:        cfg.Database.ConnStr,
			Username:       cfg.Database.Username,
			Password:       cfg.Database.Password,
			Bucket:         cfg.Database.Bucket,
			Scope:          cfg.Database.Scope,
			ConnectTimeout: cfg.Database.ConnectTimeout,
			WANProfile:     cfg.Database.WANProfile,
		})
	}, shutdownTracing)
	if err != nil {
		return err
	}

	handlers, closeCache := setupHandlers(cfg, store)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, logger.Global.Logger, middlewareOptions(cfg))
	travelhttp.RegisterRoutes(e, handlers)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Stop accepting requests before closing the clients they use.
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Error during server shutdown")
		}
		if err := closeCache(); err != nil {
			logger.Error().Err(err).Msg("Error closing cache")
		}
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing document store")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Error flushing traces")
		}
		return nil
	})

	err = g.Wait()
	logger.Info().Msg("Server stopped")
	return err
}

// loggerConfig adds caller information in development.
func loggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  serviceName,
	}
}

// middlewareOptions keeps panic stack traces out of production logs.
func middlewareOptions(cfg *config.Config) middleware.Options {
	recovery := middleware.DefaultRecoveryConfig()
	recovery.DisablePrintStack = cfg.IsProduction()

	return middleware.Options{
		ServiceName:  serviceName,
		Tracing:      cfg.Tracing.Enabled,
		RateLimitRPS: cfg.RateLimit.RPS,
		Recovery:     recovery,
	}
}

// connectStore opens the document store. Spans recorded before a failed
// connect are flushed, since run returns without reaching shutdown.
func connectStore(
	ctx context.Context,
	connect func(context.Context) (*couchbase.Store, error),
	flushTracing tracing.ShutdownFunc,
) (*couchbase.Store, error) {
	store, err := connect(ctx)
	if err == nil {
		return store, nil
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if ferr := flushTracing(flushCtx); ferr != nil {
		logger.Error().Err(ferr).Msg("Error flushing traces")
	}
	return nil, fmt.Errorf("connect to document store: %w", err)
}

// setupHandlers builds the use cases and handlers on top of store.
// The returned func closes the hotel search cache, if one was configured.
func setupHandlers(cfg *config.Config, store *couchbase.Store) (travelhttp.Handlers, func() error) {
	ucConfig := &usecase.Config{
		OperationTimeout: cfg.Database.OperationTimeout,
		SearchIndex:      cfg.Database.SearchIndex,
	}

	hotels := usecase.NewHotelUseCase(store, ucConfig)
	closeCache := func() error { return nil }

	if cfg.CacheEnabled() {
		redisCache := cache.NewRedis(cache.Config{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      cfg.Cache.TTL,
			Prefix:   serviceName + ":",
		})
		hotels = usecase.NewCachedHotelUseCase(hotels, redisCache)
		closeCache = redisCache.Close

		logger.Info().
			Str("addr", cfg.Cache.Addr).
			Dur("ttl", cfg.Cache.TTL).
			Msg("Hotel search cache enabled")
	}

	return travelhttp.Handlers{
		Airport: travelhttp.NewAirportHandler(usecase.NewAirportUseCase(store, ucConfig)),
		Airline: travelhttp.NewAirlineHandler(usecase.NewAirlineUseCase(store, ucConfig)),
		Route:   travelhttp.NewRouteHandler(usecase.NewRouteUseCase(store, ucConfig)),
		Hotel:   travelhttp.NewHotelHandler(hotels),
		Health:  travelhttp.NewHealthHandler(store, timeutil.NewRealClock()),
	}, closeCache
}
