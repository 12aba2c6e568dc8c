package couchbase

import (
	"errors"
	"fmt"

	"github.com/couchbase/gocb/v2"

	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/metrics"
)

// translateError maps SDK errors onto domain sentinels and attaches the
// operation context. A nil err stays nil.
func translateError(op, collection, key string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gocb.ErrDocumentNotFound):
		return domain.NewStoreError(op, collection, key, domain.ErrDocumentNotFound)
	case errors.Is(err, gocb.ErrDocumentExists):
		return domain.NewStoreError(op, collection, key, domain.ErrDocumentExists)
	case errors.Is(err, gocb.ErrServiceNotAvailable),
		errors.Is(err, gocb.ErrBucketNotFound),
		errors.Is(err, gocb.ErrAuthenticationFailure):
		return domain.NewStoreError(op, collection, key, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err))
	default:
		return domain.NewStoreError(op, collection, key, err)
	}
}

// outcome returns the metrics label for a translated error.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case domain.IsNotFound(err):
		return metrics.OutcomeNotFound
	case domain.IsExists(err):
		return metrics.OutcomeExists
	default:
		return metrics.OutcomeError
	}
}
