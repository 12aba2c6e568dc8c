package usecase

import (
	"context"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// AirportUseCase defines the airport operations.
type AirportUseCase interface {
	DocumentUseCase[domain.Airport]

	// List returns a page of airports ordered by name, optionally restricted to a country.
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Airport, error)

	// DirectConnections returns the distinct destinations reachable by a
	// non-stop route from the airport with the given FAA code.
	DirectConnections(ctx context.Context, airport string, page domain.Page) ([]domain.Destination, error)
}

type airportUseCase struct {
	*documentUseCase[domain.Airport]
}

// NewAirportUseCase creates an AirportUseCase backed by store.
// If config is nil, default values are used.
func NewAirportUseCase(store domain.DocumentStore, config *Config) AirportUseCase {
	return &airportUseCase{
		documentUseCase: newDocumentUseCase[domain.Airport](store, domain.CollectionAirport, resolveConfig(config)),
	}
}

func (uc *airportUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Airport, error) {
	statement := listAirportsQuery
	params := pageParams(filter.Page)
	if filter.Country != "" {
		statement = listAirportsByCountryQuery
		params["country"] = filter.Country
	}
	return query[domain.Airport](ctx, uc.store, uc.cfg, statement, params)
}

func (uc *airportUseCase) DirectConnections(ctx context.Context, airport string, page domain.Page) ([]domain.Destination, error) {
	params := pageParams(page)
	params["airport"] = airport
	return query[domain.Destination](ctx, uc.store, uc.cfg, directConnectionsQuery, params)
}
