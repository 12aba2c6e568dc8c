//go:build e2e

// Package e2e runs the use cases against a real Couchbase server with the
// travel-sample bucket loaded. Run with: go test -tags e2e ./test/e2e/...
package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-sample/travel-sample-api/internal/adapter/couchbase"
	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/retry"
	"github.com/travel-sample/travel-sample-api/internal/usecase"
	"github.com/travel-sample/travel-sample-api/test/testutil"
)

// The SDK discovers service ports from the cluster map, so they are bound 1:1.
var sandboxPorts = []string{"8091", "8092", "8093", "8094", "8095", "8096", "11210"}

func startCouchbase(t *testing.T) *couchbase.Store {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	pool.MaxWait = 5 * time.Minute

	bindings := map[docker.Port][]docker.PortBinding{}
	for _, p := range sandboxPorts {
		bindings[docker.Port(p+"/tcp")] = []docker.PortBinding{{HostIP: "127.0.0.1", HostPort: p}}
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository:   "couchbase/server-sandbox",
		Tag:          "7.1.1",
		PortBindings: bindings,
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run couchbase")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	cfg := couchbase.Config{
		ConnStr:        "couchbase://127.0.0.1",
		Username:       "Administrator",
		Password:       "password",
		Bucket:         "travel-sample",
		Scope:          "inventory",
		ConnectTimeout: 30 * time.Second,
		Retry:          testutil.Ptr(retry.ConnectConfig.WithMaxAttempts(3)),
	}

	var store *couchbase.Store
	err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		s, err := couchbase.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		store = s
		return nil
	})
	require.NoError(t, err, "connect couchbase")
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestE2E_Couchbase(t *testing.T) {
	store := startCouchbase(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	airports := usecase.NewAirportUseCase(store, &usecase.Config{OperationTimeout: 30 * time.Second})
	airlines := usecase.NewAirlineUseCase(store, &usecase.Config{OperationTimeout: 30 * time.Second})

	t.Run("airport lifecycle", func(t *testing.T) {
		id := fmt.Sprintf("airport_e2e_%d", time.Now().UnixNano())
		doc := domain.Airport{
			AirportName: "E2E Airport",
			City:        "Testville",
			Country:     "Testland",
			FAA:         "EEE",
			TZ:          testutil.Ptr("Europe/Paris"),
		}

		_, err := airports.Create(ctx, id, doc)
		require.NoError(t, err)

		_, err = airports.Create(ctx, id, doc)
		assert.True(t, domain.IsExists(err))

		got, err := airports.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, doc, *got)

		require.NoError(t, airports.Delete(ctx, id))
		_, err = airports.Get(ctx, id)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("list airports by country", func(t *testing.T) {
		page := domain.Page{Limit: 5}
		list, err := airports.List(ctx, domain.ListFilter{Country: "France", Page: page})
		require.NoError(t, err)
		require.Len(t, list, 5)
		for i, a := range list {
			assert.Equal(t, "France", a.Country)
			if i > 0 {
				assert.LessOrEqual(t, list[i-1].AirportName, a.AirportName)
			}
		}
	})

	t.Run("direct connections", func(t *testing.T) {
		dest, err := airports.DirectConnections(ctx, "SFO", domain.DefaultPage())
		require.NoError(t, err)
		assert.NotEmpty(t, dest)
	})

	t.Run("airlines to airport", func(t *testing.T) {
		list, err := airlines.ToAirport(ctx, "SFO", domain.DefaultPage())
		require.NoError(t, err)
		assert.NotEmpty(t, list)
	})
}
