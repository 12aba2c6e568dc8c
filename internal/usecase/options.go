// Package usecase contains one service per travel-sample entity.
// Each operation issues exactly one key-value, SQL++ or search call against
// the injected document store and decodes the result into domain types.
package usecase

import (
	"context"
	"time"
)

// DefaultOperationTimeout bounds a single store call when no timeout is configured.
const DefaultOperationTimeout = 5 * time.Second

// Config contains configuration options shared by the services.
type Config struct {
	// OperationTimeout bounds every store call made on behalf of a request
	OperationTimeout time.Duration

	// SearchIndex is the full-text index used for hotel search
	SearchIndex string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		OperationTimeout: DefaultOperationTimeout,
		SearchIndex:      "hotel_search",
	}
}

// resolveConfig fills unset fields of config with defaults.
func resolveConfig(config *Config) Config {
	cfg := DefaultConfig()
	if config == nil {
		return cfg
	}
	if config.OperationTimeout > 0 {
		cfg.OperationTimeout = config.OperationTimeout
	}
	if config.SearchIndex != "" {
		cfg.SearchIndex = config.SearchIndex
	}
	return cfg
}

// withTimeout derives the per-operation context.
func (c Config) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.OperationTimeout)
}
