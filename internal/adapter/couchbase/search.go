package couchbase

import (
	"context"

	"github.com/couchbase/gocb/v2"
	cbsearch "github.com/couchbase/gocb/v2/search"

	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// buildSearchQuery converts clauses into a search query. A single clause is
// sent as is; several are wrapped in a conjunction.
func buildSearchQuery(clauses []domain.SearchClause) (cbsearch.Query, error) {
	if len(clauses) == 0 {
		return nil, domain.WrapInvalidRequest("search needs at least one clause")
	}

	queries := make([]cbsearch.Query, 0, len(clauses))
	for _, c := range clauses {
		switch c.Kind {
		case domain.Term:
			queries = append(queries, cbsearch.NewTermQuery(c.Value).Field(c.Field))
		default:
			queries = append(queries, cbsearch.NewMatchQuery(c.Value).Field(c.Field))
		}
	}
	if len(queries) == 1 {
		return queries[0], nil
	}
	return cbsearch.NewConjunctionQuery(queries...), nil
}

func searchOptions(ctx context.Context, req domain.SearchRequest) *gocb.SearchOptions {
	opts := &gocb.SearchOptions{
		Fields:  req.Fields,
		Context: ctx,
	}
	if req.Limit > 0 {
		opts.Limit = uint32(req.Limit)
	}
	if req.Offset > 0 {
		opts.Skip = uint32(req.Offset)
	}
	return opts
}
