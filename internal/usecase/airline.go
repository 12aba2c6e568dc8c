package usecase

import (
	"context"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// AirlineUseCase defines the airline operations.
type AirlineUseCase interface {
	DocumentUseCase[domain.Airline]

	// List returns a page of airlines ordered by name, optionally restricted to a country.
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Airline, error)

	// ToAirport returns the distinct airlines operating a route into the
	// destination airport with the given FAA code.
	ToAirport(ctx context.Context, airport string, page domain.Page) ([]domain.Airline, error)
}

type airlineUseCase struct {
	*documentUseCase[domain.Airline]
}

// NewAirlineUseCase creates an AirlineUseCase backed by store.
func NewAirlineUseCase(store domain.DocumentStore, config *Config) AirlineUseCase {
	return &airlineUseCase{
		documentUseCase: newDocumentUseCase[domain.Airline](store, domain.CollectionAirline, resolveConfig(config)),
	}
}

func (uc *airlineUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Airline, error) {
	statement := listAirlinesQuery
	params := pageParams(filter.Page)
	if filter.Country != "" {
		statement = listAirlinesByCountryQuery
		params["country"] = filter.Country
	}
	return query[domain.Airline](ctx, uc.store, uc.cfg, statement, params)
}

func (uc *airlineUseCase) ToAirport(ctx context.Context, airport string, page domain.Page) ([]domain.Airline, error) {
	params := pageParams(page)
	params["airport"] = airport
	return query[domain.Airline](ctx, uc.store, uc.cfg, airlinesToAirportQuery, params)
}
