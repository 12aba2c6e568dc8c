package couchbase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/logger"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/metrics"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantIs      error
		wantMessage string
	}{
		{
			name:        "missing document",
			err:         gocb.ErrDocumentNotFound,
			wantIs:      domain.ErrDocumentNotFound,
			wantMessage: "get airport/airport_1: document not found",
		},
		{
			name:        "duplicate key",
			err:         gocb.ErrDocumentExists,
			wantIs:      domain.ErrDocumentExists,
			wantMessage: "get airport/airport_1: document already exists",
		},
		{
			name:   "service down",
			err:    gocb.ErrServiceNotAvailable,
			wantIs: domain.ErrStoreUnavailable,
		},
		{
			name:   "timeout passes through",
			err:    gocb.ErrTimeout,
			wantIs: gocb.ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError("get", "airport", "airport_1", tt.err)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)

			var storeErr *domain.StoreError
			require.True(t, errors.As(err, &storeErr))
			assert.Equal(t, "get", storeErr.Op)
			assert.Equal(t, "airport", storeErr.Collection)
			assert.Equal(t, "airport_1", storeErr.Key)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}

	assert.NoError(t, translateError("get", "airport", "airport_1", nil))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, outcome(nil))
	assert.Equal(t, metrics.OutcomeNotFound, outcome(translateError("get", "route", "r", gocb.ErrDocumentNotFound)))
	assert.Equal(t, metrics.OutcomeExists, outcome(translateError("insert", "route", "r", gocb.ErrDocumentExists)))
	assert.Equal(t, metrics.OutcomeError, outcome(errors.New("boom")))
}

func TestFinish_LogsFailuresWithCollection(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Global
	t.Cleanup(func() {
		if prev != nil {
			logger.SetGlobal(prev)
		} else {
			logger.Global = nil
		}
	})
	logger.SetGlobal(logger.NewWithOutput(logger.Config{Level: "info", Format: "json", ServiceName: "test"}, &buf))

	s := &Store{}

	err := s.finish("get", "route", "route_1", time.Now(), gocb.ErrDocumentNotFound)
	require.True(t, domain.IsNotFound(err))
	err = s.finish("insert", "route", "route_1", time.Now(), gocb.ErrDocumentExists)
	require.True(t, domain.IsExists(err))
	require.NoError(t, s.finish("get", "route", "route_1", time.Now(), nil))
	assert.Empty(t, buf.String(), "expected outcomes must not be logged")

	err = s.finish("upsert", "airline", "airline_10", time.Now(), gocb.ErrServiceNotAvailable)
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "airline", entry["collection"])
	assert.Equal(t, "upsert", entry["op"])
	assert.Equal(t, "airline_10", entry["key"])
	assert.Equal(t, true, entry["store_unavailable"])
}

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name    string
		clauses []domain.SearchClause
		want    string
	}{
		{
			name:    "single match clause is sent unwrapped",
			clauses: []domain.SearchClause{{Kind: domain.Match, Field: "name", Value: "sea"}},
			want:    `{"match":"sea","field":"name"}`,
		},
		{
			name:    "single term clause",
			clauses: []domain.SearchClause{{Kind: domain.Term, Field: "city", Value: "San Francisco"}},
			want:    `{"term":"San Francisco","field":"city"}`,
		},
		{
			name: "several clauses form a conjunction",
			clauses: domain.HotelFilter{
				Description: "newly renovated",
				Country:     "United States",
			}.Clauses(),
			want: `{"conjuncts":[
				{"match":"newly renovated","field":"description"},
				{"term":"United States","field":"country"}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := buildSearchQuery(tt.clauses)
			require.NoError(t, err)
			b, err := json.Marshal(query)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestBuildSearchQuery_NoClauses(t *testing.T) {
	_, err := buildSearchQuery(nil)
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestSearchOptions(t *testing.T) {
	ctx := context.Background()

	opts := searchOptions(ctx, domain.SearchRequest{Fields: []string{"*"}, Limit: 10, Offset: 20})
	assert.Equal(t, uint32(10), opts.Limit)
	assert.Equal(t, uint32(20), opts.Skip)
	assert.Equal(t, []string{"*"}, opts.Fields)
	assert.Equal(t, ctx, opts.Context)

	opts = searchOptions(ctx, domain.SearchRequest{Fields: []string{"name"}})
	assert.Zero(t, opts.Limit)
	assert.Zero(t, opts.Skip)
}

func TestHasScope(t *testing.T) {
	scopes := []gocb.ScopeSpec{{Name: "_default"}, {Name: "inventory"}, {Name: "tenant_agent_00"}}

	assert.True(t, hasScope(scopes, "inventory"))
	assert.False(t, hasScope(scopes, "Inventory"))
	assert.False(t, hasScope(nil, "inventory"))
}

func TestCheckPingReport(t *testing.T) {
	tests := []struct {
		name     string
		services map[gocb.ServiceType][]gocb.EndpointPingReport
		wantErr  string
	}{
		{
			name: "all endpoints ok",
			services: map[gocb.ServiceType][]gocb.EndpointPingReport{
				gocb.ServiceTypeKeyValue: {{Remote: "10.0.0.1:11210", State: gocb.PingStateOk}},
				gocb.ServiceTypeQuery:    {{Remote: "10.0.0.1:8093", State: gocb.PingStateOk}},
			},
		},
		{
			name: "search endpoint timed out",
			services: map[gocb.ServiceType][]gocb.EndpointPingReport{
				gocb.ServiceTypeSearch: {{Remote: "10.0.0.2:8094", State: gocb.PingStateTimeout}},
			},
			wantErr: "search endpoint 10.0.0.2:8094 is timeout",
		},
		{
			name:     "empty report",
			services: nil,
			wantErr:  "no endpoints reported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPingReport(tt.services)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "kv", serviceName(gocb.ServiceTypeKeyValue))
	assert.Equal(t, "query", serviceName(gocb.ServiceTypeQuery))
	assert.Equal(t, "search", serviceName(gocb.ServiceTypeSearch))
}
