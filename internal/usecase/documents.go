package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// DocumentUseCase defines key-value CRUD over a single collection.
type DocumentUseCase[T any] interface {
	// Create inserts doc under id. Fails with domain.ErrDocumentExists if id is taken.
	Create(ctx context.Context, id string, doc T) (*T, error)

	// Get returns the document stored under id or domain.ErrDocumentNotFound.
	Get(ctx context.Context, id string) (*T, error)

	// Update replaces (or creates) the document stored under id.
	Update(ctx context.Context, id string, doc T) (*T, error)

	// Delete removes the document stored under id or returns domain.ErrDocumentNotFound.
	Delete(ctx context.Context, id string) error
}

// documentUseCase implements DocumentUseCase on top of a DocumentStore.
type documentUseCase[T any] struct {
	store      domain.DocumentStore
	collection string
	cfg        Config
}

func newDocumentUseCase[T any](store domain.DocumentStore, collection string, cfg Config) *documentUseCase[T] {
	return &documentUseCase[T]{
		store:      store,
		collection: collection,
		cfg:        cfg,
	}
}

func (uc *documentUseCase[T]) Create(ctx context.Context, id string, doc T) (*T, error) {
	ctx, cancel := uc.cfg.withTimeout(ctx)
	defer cancel()

	if err := uc.store.Insert(ctx, uc.collection, id, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (uc *documentUseCase[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := uc.cfg.withTimeout(ctx)
	defer cancel()

	var doc T
	if err := uc.store.Get(ctx, uc.collection, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (uc *documentUseCase[T]) Update(ctx context.Context, id string, doc T) (*T, error) {
	ctx, cancel := uc.cfg.withTimeout(ctx)
	defer cancel()

	if err := uc.store.Upsert(ctx, uc.collection, id, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (uc *documentUseCase[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := uc.cfg.withTimeout(ctx)
	defer cancel()

	return uc.store.Remove(ctx, uc.collection, id)
}

// query runs a statement and decodes every row into T.
func query[T any](ctx context.Context, store domain.DocumentStore, cfg Config, statement string, params map[string]any) ([]T, error) {
	ctx, cancel := cfg.withTimeout(ctx)
	defer cancel()

	rows, err := store.Query(ctx, statement, params)
	if err != nil {
		return nil, err
	}
	return decodeRows[T](rows)
}

// decodeRows unmarshals raw rows. The result is never nil so empty pages
// encode as [] rather than null.
func decodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		var v T
		if err := json.Unmarshal(row, &v); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// pageParams returns the named parameters for LIMIT/OFFSET.
func pageParams(page domain.Page) map[string]any {
	return map[string]any{
		"limit":  page.Limit,
		"offset": page.Offset,
	}
}
