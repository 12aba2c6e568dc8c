package usecase

import (
	"context"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// HotelUseCase defines the hotel search operations.
type HotelUseCase interface {
	// Autocomplete returns up to domain.AutocompleteLimit hotel names matching name.
	Autocomplete(ctx context.Context, name string) ([]domain.HotelName, error)

	// Filter returns a page of hotels matching every criterion in filter.
	Filter(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error)
}

type hotelUseCase struct {
	store domain.DocumentStore
	cfg   Config
}

// NewHotelUseCase creates a HotelUseCase that searches the configured index.
func NewHotelUseCase(store domain.DocumentStore, config *Config) HotelUseCase {
	return &hotelUseCase{
		store: store,
		cfg:   resolveConfig(config),
	}
}

func (uc *hotelUseCase) Autocomplete(ctx context.Context, name string) ([]domain.HotelName, error) {
	req := domain.SearchRequest{
		Index:   uc.cfg.SearchIndex,
		Clauses: []domain.SearchClause{{Kind: domain.Match, Field: "name", Value: name}},
		Fields:  []string{"name"},
		Limit:   domain.AutocompleteLimit,
	}
	return search[domain.HotelName](ctx, uc.store, uc.cfg, req)
}

func (uc *hotelUseCase) Filter(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
	clauses := filter.Clauses()
	if len(clauses) == 0 {
		return nil, domain.NewValidationError("filter",
			"at least one of name, title, description, city, state, country is required")
	}

	req := domain.SearchRequest{
		Index:   uc.cfg.SearchIndex,
		Clauses: clauses,
		Fields:  []string{"*"},
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
	return search[domain.Hotel](ctx, uc.store, uc.cfg, req)
}

// search runs req and decodes the stored fields of every hit into T.
func search[T any](ctx context.Context, store domain.DocumentStore, cfg Config, req domain.SearchRequest) ([]T, error) {
	ctx, cancel := cfg.withTimeout(ctx)
	defer cancel()

	hits, err := store.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return decodeRows[T](hits)
}
