package domain

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

import (
	"context"
	"encoding/json"
)

// DocumentStore is the capability the service needs from the backing database.
// Implementations must translate missing and duplicate keys into
// ErrDocumentNotFound and ErrDocumentExists.
type DocumentStore interface {
	// Get decodes the document stored under key into dst.
	Get(ctx context.Context, collection, key string, dst any) error

	// Insert stores doc under key and fails with ErrDocumentExists if the key is taken.
	Insert(ctx context.Context, collection, key string, doc any) error

	// Upsert stores doc under key, replacing any existing document.
	Upsert(ctx context.Context, collection, key string, doc any) error

	// Remove deletes the document stored under key.
	Remove(ctx context.Context, collection, key string) error

	// Query runs a SQL++ statement with named parameters and returns the raw rows.
	Query(ctx context.Context, statement string, params map[string]any) ([]json.RawMessage, error)

	// Search runs a full-text search request and returns the stored fields of each hit.
	Search(ctx context.Context, req SearchRequest) ([]json.RawMessage, error)

	// Ping checks that every store endpoint is reachable.
	Ping(ctx context.Context) error
}

// Cache stores serialized values under string keys.
type Cache interface {
	// Get decodes the value under key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Set stores v under key.
	Set(ctx context.Context, key string, v any) error
}

// MatchKind selects how a search clause compares its value.
type MatchKind int

const (
	// Match analyzes the value and matches any indexed term (full-text).
	Match MatchKind = iota

	// Term matches the exact, unanalyzed value.
	Term
)

// String returns the clause kind name.
func (k MatchKind) String() string {
	switch k {
	case Match:
		return "match"
	case Term:
		return "term"
	default:
		return "unknown"
	}
}

// SearchClause is one condition of a search request.
type SearchClause struct {
	Kind  MatchKind
	Field string
	Value string
}

// SearchRequest is a conjunction of clauses against a full-text index.
type SearchRequest struct {
	// Index is the search index name within the scope
	Index string

	// Clauses are combined with AND
	Clauses []SearchClause

	// Fields lists the stored fields to return ("*" for all)
	Fields []string

	// Limit is the maximum number of hits
	Limit int

	// Offset is the number of hits to skip
	Offset int
}
