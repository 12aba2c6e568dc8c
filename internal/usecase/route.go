package usecase

import "github.com/travel-sample/travel-sample-api/internal/domain"

// RouteUseCase defines the route operations.
type RouteUseCase interface {
	DocumentUseCase[domain.Route]
}

// NewRouteUseCase creates a RouteUseCase backed by store.
func NewRouteUseCase(store domain.DocumentStore, config *Config) RouteUseCase {
	return newDocumentUseCase[domain.Route](store, domain.CollectionRoute, resolveConfig(config))
}
