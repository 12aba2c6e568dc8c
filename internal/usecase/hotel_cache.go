package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// cachedHotelUseCase serves hotel search results from a cache before asking
// the wrapped use case. Hotels are read-only through this API, so entries are
// only expired by the cache TTL. Cache failures never fail the request.
type cachedHotelUseCase struct {
	next  HotelUseCase
	cache domain.Cache
}

// NewCachedHotelUseCase wraps next with a read-through cache.
func NewCachedHotelUseCase(next HotelUseCase, cache domain.Cache) HotelUseCase {
	return &cachedHotelUseCase{next: next, cache: cache}
}

func (uc *cachedHotelUseCase) Autocomplete(ctx context.Context, name string) ([]domain.HotelName, error) {
	key := "hotel:autocomplete:" + name
	return readThrough(ctx, uc.cache, key, func() ([]domain.HotelName, error) {
		return uc.next.Autocomplete(ctx, name)
	})
}

func (uc *cachedHotelUseCase) Filter(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
	key, err := filterKey(filter, page)
	if err != nil {
		return uc.next.Filter(ctx, filter, page)
	}
	return readThrough(ctx, uc.cache, key, func() ([]domain.Hotel, error) {
		return uc.next.Filter(ctx, filter, page)
	})
}

func readThrough[T any](ctx context.Context, cache domain.Cache, key string, load func() ([]T, error)) ([]T, error) {
	var cached []T
	ok, err := cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
	}
	if ok && err == nil {
		return cached, nil
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, key, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return out, nil
}

// filterKey derives a stable key from the filter and page.
func filterKey(filter domain.HotelFilter, page domain.Page) (string, error) {
	b, err := json.Marshal(struct {
		Filter domain.HotelFilter `json:"f"`
		Page   domain.Page        `json:"p"`
	}{filter, page})
	if err != nil {
		return "", fmt.Errorf("marshal filter key: %w", err)
	}
	sum := sha1.Sum(b)
	return "hotel:filter:" + hex.EncodeToString(sum[:]), nil
}
