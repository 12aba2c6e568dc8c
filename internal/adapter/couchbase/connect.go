package couchbase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"

	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/logger"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/retry"
)

// Config holds the connection settings.
type Config struct {
	ConnStr  string
	Username string
	Password string
	Bucket   string
	Scope    string

	// ConnectTimeout bounds each wait for the bucket to become ready
	ConnectTimeout time.Duration

	// WANProfile applies the SDK's wan-development timeouts, for clusters
	// reached over the internet such as Capella.
	WANProfile bool

	// Retry controls how often readiness is awaited before giving up.
	// Zero value means retry.ConnectConfig.
	Retry *retry.Config
}

// Connect opens the cluster, waits until the bucket is ready and verifies
// that the configured scope exists. The returned Store must be closed.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	opts := gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		},
	}
	if cfg.WANProfile {
		if err := opts.ApplyProfile(gocb.ClusterConfigProfileWanDevelopment); err != nil {
			return nil, fmt.Errorf("apply wan profile: %w", err)
		}
	}

	cluster, err := gocb.Connect(cfg.ConnStr, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.ConnStr, err)
	}

	bucket := cluster.Bucket(cfg.Bucket)
	if err := waitUntilReady(ctx, bucket, cfg); err != nil {
		_ = cluster.Close(nil)
		return nil, fmt.Errorf("bucket %q not ready: %w", cfg.Bucket, err)
	}

	scopes, err := bucket.Collections().GetAllScopes(&gocb.GetAllScopesOptions{Context: ctx})
	if err != nil {
		_ = cluster.Close(nil)
		return nil, fmt.Errorf("list scopes of bucket %q: %w", cfg.Bucket, err)
	}
	if !hasScope(scopes, cfg.Scope) {
		_ = cluster.Close(nil)
		return nil, fmt.Errorf("scope %q does not exist in bucket %q", cfg.Scope, cfg.Bucket)
	}

	logger.Get().WithContext("component", "couchbase").Info().
		Str("bucket", cfg.Bucket).
		Str("scope", cfg.Scope).
		Bool("wan_profile", cfg.WANProfile).
		Msg("Connected to document store")

	return &Store{
		cluster: cluster,
		bucket:  bucket,
		scope:   bucket.Scope(cfg.Scope),
	}, nil
}

func waitUntilReady(ctx context.Context, bucket *gocb.Bucket, cfg Config) error {
	policy := retry.ConnectConfig
	if cfg.Retry != nil {
		policy = *cfg.Retry
	}
	log := logger.Get().WithContext("component", "couchbase")
	policy = policy.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Str("bucket", cfg.Bucket).
			Msg("Document store not ready, retrying")
	})

	return retry.Do(ctx, func() error {
		err := bucket.WaitUntilReady(cfg.ConnectTimeout, &gocb.WaitUntilReadyOptions{Context: ctx})
		if errors.Is(err, gocb.ErrAuthenticationFailure) || errors.Is(err, gocb.ErrBucketNotFound) {
			return retry.NewPermanent(err)
		}
		return err
	}, policy)
}

func hasScope(scopes []gocb.ScopeSpec, name string) bool {
	for _, s := range scopes {
		if s.Name == name {
			return true
		}
	}
	return false
}

// checkPingReport returns domain.ErrStoreUnavailable naming the first
// endpoint that did not answer OK.
func checkPingReport(services map[gocb.ServiceType][]gocb.EndpointPingReport) error {
	if len(services) == 0 {
		return fmt.Errorf("%w: no endpoints reported", domain.ErrStoreUnavailable)
	}
	for svc, endpoints := range services {
		for _, ep := range endpoints {
			if ep.State != gocb.PingStateOk {
				return fmt.Errorf("%w: %s endpoint %s is %s", domain.ErrStoreUnavailable,
					serviceName(svc), ep.Remote, pingStateName(ep.State))
			}
		}
	}
	return nil
}

func serviceName(svc gocb.ServiceType) string {
	switch svc {
	case gocb.ServiceTypeKeyValue:
		return "kv"
	case gocb.ServiceTypeQuery:
		return "query"
	case gocb.ServiceTypeSearch:
		return "search"
	case gocb.ServiceTypeManagement:
		return "mgmt"
	case gocb.ServiceTypeAnalytics:
		return "analytics"
	default:
		return fmt.Sprintf("service(%d)", svc)
	}
}

func pingStateName(state gocb.PingState) string {
	switch state {
	case gocb.PingStateOk:
		return "ok"
	case gocb.PingStateTimeout:
		return "timeout"
	case gocb.PingStateError:
		return "error"
	default:
		return "unknown"
	}
}
