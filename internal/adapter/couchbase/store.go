// Package couchbase implements domain.DocumentStore on a Couchbase scope
// using the gocb SDK: key-value for CRUD, SQL++ for lists and full-text
// search for hotels.
package couchbase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"

	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/logger"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/metrics"
)

// Store is a DocumentStore bound to one bucket scope. It is safe for
// concurrent use and is shared by every service.
type Store struct {
	cluster *gocb.Cluster
	bucket  *gocb.Bucket
	scope   *gocb.Scope
}

var _ domain.DocumentStore = (*Store)(nil)

// Get decodes the document stored under key into dst.
func (s *Store) Get(ctx context.Context, collection, key string, dst any) error {
	start := time.Now()
	res, err := s.scope.Collection(collection).Get(key, &gocb.GetOptions{Context: ctx})
	if err == nil {
		if cerr := res.Content(dst); cerr != nil {
			err = fmt.Errorf("decode content: %w", cerr)
		}
	}
	return s.finish("get", collection, key, start, err)
}

// Insert stores doc under key. It fails with domain.ErrDocumentExists if the key is taken.
func (s *Store) Insert(ctx context.Context, collection, key string, doc any) error {
	start := time.Now()
	_, err := s.scope.Collection(collection).Insert(key, doc, &gocb.InsertOptions{Context: ctx})
	return s.finish("insert", collection, key, start, err)
}

// Upsert stores doc under key, replacing any existing document.
func (s *Store) Upsert(ctx context.Context, collection, key string, doc any) error {
	start := time.Now()
	_, err := s.scope.Collection(collection).Upsert(key, doc, &gocb.UpsertOptions{Context: ctx})
	return s.finish("upsert", collection, key, start, err)
}

// Remove deletes the document stored under key.
func (s *Store) Remove(ctx context.Context, collection, key string) error {
	start := time.Now()
	_, err := s.scope.Collection(collection).Remove(key, &gocb.RemoveOptions{Context: ctx})
	return s.finish("remove", collection, key, start, err)
}

// Query runs a scope-level SQL++ statement and returns every row.
func (s *Store) Query(ctx context.Context, statement string, params map[string]any) ([]json.RawMessage, error) {
	start := time.Now()
	rows, err := s.query(ctx, statement, params)
	if err := s.finish("query", s.scope.Name(), "", start, err); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) query(ctx context.Context, statement string, params map[string]any) ([]json.RawMessage, error) {
	res, err := s.scope.Query(statement, &gocb.QueryOptions{
		NamedParameters: params,
		Context:         ctx,
	})
	if err != nil {
		return nil, err
	}
	defer res.Close()

	rows := make([]json.RawMessage, 0)
	for res.Next() {
		var row json.RawMessage
		if err := res.Row(&row); err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, row)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Search runs a conjunction of match and term clauses against a scope search
// index and returns the stored fields of each hit.
func (s *Store) Search(ctx context.Context, req domain.SearchRequest) ([]json.RawMessage, error) {
	start := time.Now()
	hits, err := s.search(ctx, req)
	if err := s.finish("search", req.Index, "", start, err); err != nil {
		return nil, err
	}
	return hits, nil
}

func (s *Store) search(ctx context.Context, req domain.SearchRequest) ([]json.RawMessage, error) {
	query, err := buildSearchQuery(req.Clauses)
	if err != nil {
		return nil, err
	}

	res, err := s.scope.Search(req.Index,
		gocb.SearchRequest{SearchQuery: query},
		searchOptions(ctx, req),
	)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	hits := make([]json.RawMessage, 0)
	for res.Next() {
		row := res.Row()
		var fields json.RawMessage
		if err := row.Fields(&fields); err != nil {
			return nil, fmt.Errorf("read fields of hit %s: %w", row.ID, err)
		}
		hits = append(hits, fields)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

// Ping checks the key-value, query and search endpoints of the bucket.
// Any endpoint not reporting OK yields domain.ErrStoreUnavailable.
func (s *Store) Ping(ctx context.Context) error {
	report, err := s.bucket.Ping(&gocb.PingOptions{
		ServiceTypes: []gocb.ServiceType{
			gocb.ServiceTypeKeyValue,
			gocb.ServiceTypeQuery,
			gocb.ServiceTypeSearch,
		},
		Context: ctx,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return checkPingReport(report.Services)
}

// Close releases the cluster connection.
func (s *Store) Close() error {
	return s.cluster.Close(nil)
}

// finish translates err and records the operation. Failures other than
// not-found and exists are logged against the collection.
func (s *Store) finish(op, collection, key string, start time.Time, err error) error {
	err = translateError(op, collection, key, err)
	result := outcome(err)
	metrics.ObserveStore(op, collection, result, time.Since(start))
	if result == metrics.OutcomeError {
		logger.Get().WithCollection(collection).Warn().
			Err(err).
			Str("op", op).
			Str("key", key).
			Bool("store_unavailable", domain.IsStoreUnavailable(err)).
			Msg("Document store operation failed")
	}
	return err
}
