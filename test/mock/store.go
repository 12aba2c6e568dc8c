// Package mock provides test doubles for the travel-sample API.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, canned query results).
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// QueryFunc answers a SQL++ statement in place of the built-in evaluator.
type QueryFunc func(statement string, params map[string]any) ([]json.RawMessage, error)

// Store is an in-memory domain.DocumentStore. Documents are kept as JSON so
// a read returns exactly what the store would have persisted.
//
// Query understands single-collection statements of the form
// FROM c AS c [WHERE c.field = $param] ORDER BY c.field LIMIT $limit OFFSET $offset.
// Anything else (joins, subqueries) must be answered through WithQueryFunc.
// Search runs every clause against the configured search collection.
type Store struct {
	mu               sync.Mutex
	docs             map[string]map[string][]byte
	err              error
	pingErr          error
	delay            time.Duration
	queryFunc        QueryFunc
	searchCollection string
	calls            map[string]int
}

// NewStore creates an empty store that searches the hotel collection.
func NewStore() *Store {
	return &Store{
		docs:             map[string]map[string][]byte{},
		searchCollection: domain.CollectionHotel,
		calls:            map[string]int{},
	}
}

// WithError configures every operation to fail with err.
func (s *Store) WithError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// WithPingError configures Ping to fail with err.
func (s *Store) WithPingError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pingErr = err
	return s
}

// WithDelay configures every operation to wait d before responding.
// This is useful for testing timeout behavior.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// WithQueryFunc routes every Query call to fn.
func (s *Store) WithQueryFunc(fn QueryFunc) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryFunc = fn
	return s
}

// Seed stores doc under collection/key, replacing any existing document.
func (s *Store) Seed(collection, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[key] = raw
	return nil
}

// Raw returns the stored JSON of collection/key.
func (s *Store) Raw(collection, key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.docs[collection][key]
	return raw, ok
}

// CallCount returns how often op (get, insert, upsert, remove, query, search, ping) was called.
func (s *Store) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Reset clears the call counts.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = map[string]int{}
}

// Get implements domain.DocumentStore.
func (s *Store) Get(ctx context.Context, collection, key string, dst any) error {
	if err := s.begin(ctx, "get"); err != nil {
		return domain.NewStoreError("get", collection, key, err)
	}

	s.mu.Lock()
	raw, ok := s.docs[collection][key]
	s.mu.Unlock()
	if !ok {
		return domain.NewStoreError("get", collection, key, domain.ErrDocumentNotFound)
	}
	return json.Unmarshal(raw, dst)
}

// Insert implements domain.DocumentStore.
func (s *Store) Insert(ctx context.Context, collection, key string, doc any) error {
	if err := s.begin(ctx, "insert"); err != nil {
		return domain.NewStoreError("insert", collection, key, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return domain.NewStoreError("insert", collection, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[collection][key]; exists {
		return domain.NewStoreError("insert", collection, key, domain.ErrDocumentExists)
	}
	s.collection(collection)[key] = raw
	return nil
}

// Upsert implements domain.DocumentStore.
func (s *Store) Upsert(ctx context.Context, collection, key string, doc any) error {
	if err := s.begin(ctx, "upsert"); err != nil {
		return domain.NewStoreError("upsert", collection, key, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return domain.NewStoreError("upsert", collection, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[key] = raw
	return nil
}

// Remove implements domain.DocumentStore.
func (s *Store) Remove(ctx context.Context, collection, key string) error {
	if err := s.begin(ctx, "remove"); err != nil {
		return domain.NewStoreError("remove", collection, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[collection][key]; !exists {
		return domain.NewStoreError("remove", collection, key, domain.ErrDocumentNotFound)
	}
	delete(s.docs[collection], key)
	return nil
}

var (
	fromPattern  = regexp.MustCompile(`FROM\s+(\w+)\s+AS\s+\w+`)
	wherePattern = regexp.MustCompile(`WHERE\s+\w+\.(\w+)\s*=\s*\$(\w+)`)
	orderPattern = regexp.MustCompile(`ORDER BY\s+\w+\.(\w+)`)
)

// Query implements domain.DocumentStore.
func (s *Store) Query(ctx context.Context, statement string, params map[string]any) ([]json.RawMessage, error) {
	if err := s.begin(ctx, "query"); err != nil {
		return nil, domain.NewStoreError("query", "", "", err)
	}

	s.mu.Lock()
	fn := s.queryFunc
	s.mu.Unlock()
	if fn != nil {
		return fn(statement, params)
	}

	if strings.Contains(statement, "JOIN") {
		return nil, fmt.Errorf("mock store: joins need WithQueryFunc")
	}
	from := fromPattern.FindStringSubmatch(statement)
	if from == nil {
		return nil, fmt.Errorf("mock store: unsupported statement")
	}

	rows := s.documents(from[1])

	if where := wherePattern.FindStringSubmatch(statement); where != nil {
		want := fmt.Sprint(params[where[2]])
		rows = filterRows(rows, func(doc map[string]any) bool {
			return fmt.Sprint(doc[where[1]]) == want
		})
	}

	if order := orderPattern.FindStringSubmatch(statement); order != nil {
		field := order[1]
		sort.SliceStable(rows, func(i, j int) bool {
			return fmt.Sprint(rows[i].doc[field]) < fmt.Sprint(rows[j].doc[field])
		})
	}

	limit, _ := params["limit"].(int)
	offset, _ := params["offset"].(int)
	return page(rows, limit, offset), nil
}

// Search implements domain.DocumentStore. Match clauses are satisfied when
// any word of the value occurs in the field (case-insensitive); term clauses
// need an exact value. Hits are ordered by key.
func (s *Store) Search(ctx context.Context, req domain.SearchRequest) ([]json.RawMessage, error) {
	if err := s.begin(ctx, "search"); err != nil {
		return nil, domain.NewStoreError("search", req.Index, "", err)
	}

	rows := filterRows(s.documents(s.searchCollection), func(doc map[string]any) bool {
		for _, clause := range req.Clauses {
			if !matches(clause, fmt.Sprint(doc[clause.Field])) {
				return false
			}
		}
		return true
	})

	hits := page(rows, req.Limit, req.Offset)
	if len(req.Fields) == 1 && req.Fields[0] == "*" {
		return hits, nil
	}
	return project(hits, req.Fields)
}

// Ping implements domain.DocumentStore.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.begin(ctx, "ping"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pingErr
}

// begin counts the call, applies the configured delay and returns the configured error.
func (s *Store) begin(ctx context.Context, op string) error {
	s.mu.Lock()
	s.calls[op]++
	delay, err := s.delay, s.err
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// collection returns the documents of name, creating the map. Callers hold s.mu.
func (s *Store) collection(name string) map[string][]byte {
	c, ok := s.docs[name]
	if !ok {
		c = map[string][]byte{}
		s.docs[name] = c
	}
	return c
}

type row struct {
	key string
	raw []byte
	doc map[string]any
}

// documents snapshots a collection ordered by key.
func (s *Store) documents(collection string) []row {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]row, 0, len(s.docs[collection]))
	for key, raw := range s.docs[collection] {
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		rows = append(rows, row{key: key, raw: raw, doc: doc})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].key < rows[j].key })
	return rows
}

func filterRows(rows []row, keep func(map[string]any) bool) []row {
	out := rows[:0:0]
	for _, r := range rows {
		if keep(r.doc) {
			out = append(out, r)
		}
	}
	return out
}

func page(rows []row, limit, offset int) []json.RawMessage {
	if offset >= len(rows) {
		return []json.RawMessage{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = r.raw
	}
	return out
}

func project(hits []json.RawMessage, fields []string) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(hits))
	for _, hit := range hits {
		var doc map[string]any
		if err := json.Unmarshal(hit, &doc); err != nil {
			return nil, err
		}
		projected := make(map[string]any, len(fields))
		for _, f := range fields {
			if v, ok := doc[f]; ok {
				projected[f] = v
			}
		}
		raw, err := json.Marshal(projected)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func matches(clause domain.SearchClause, value string) bool {
	if clause.Kind == domain.Term {
		return value == clause.Value
	}
	haystack := strings.ToLower(value)
	for _, word := range strings.Fields(strings.ToLower(clause.Value)) {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}

// Ensure Store implements domain.DocumentStore at compile time.
var _ domain.DocumentStore = (*Store)(nil)
