package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how often a conditional update is re-attempted after
// a version conflict.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     8,
		InitialInterval: 2 * time.Millisecond,
		MaxInterval:     50 * time.Millisecond,
	}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.MaxElapsedTime = 0

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
}

// withRetry runs a read-validate-write cycle until it commits, fails with a
// non-conflict error or runs out of attempts. Each attempt starts from a
// fresh read so validation always sees the latest committed state.
func withRetry(ctx context.Context, policy RetryPolicy, attempt func(ctx context.Context) error) error {
	op := func() error {
		err := attempt(ctx)
		if err == nil || errors.Is(err, ErrVersionConflict) {
			return err
		}
		return backoff.Permanent(err)
	}

	err := backoff.Retry(op, policy.backOff(ctx))
	if errors.Is(err, ErrVersionConflict) {
		return fmt.Errorf("%w: gave up after %d attempts", ErrBusy, policy.MaxAttempts)
	}
	return err
}
