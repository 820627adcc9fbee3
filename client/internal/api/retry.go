package api

import (
	"context"
	"time"

	"github.com/aidelivery/delivery-manager/client/internal/errors"
	backoff "github.com/cenkalti/backoff/v4"
)

// RetryPolicy retries idempotent reads that failed for a recoverable reason
// (network errors, 408, 429, 5xx). Writes are never retried.
type RetryPolicy struct {
	MaxAttempts int // total attempts including the first; <= 1 disables retries
	BaseBackoff time.Duration
	MaxInterval time.Duration

	// Notify, when set, is called before each retry.
	Notify func(err error, wait time.Duration)
}

func (p RetryPolicy) enabled() bool { return p.MaxAttempts > 1 }

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseBackoff
	if exp.InitialInterval <= 0 {
		exp.InitialInterval = 100 * time.Millisecond
	}
	exp.Multiplier = 2
	exp.MaxInterval = p.MaxInterval
	if exp.MaxInterval <= 0 {
		exp.MaxInterval = 5 * time.Second
	}
	exp.MaxElapsedTime = 0 // bounded by attempts and ctx instead
	exp.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.MaxAttempts-1)), ctx)
}

func (p RetryPolicy) do(ctx context.Context, op func() ([]byte, error)) ([]byte, error) {
	var out []byte
	attempt := func() error {
		body, err := op()
		if err != nil {
			if !errors.IsRecoverable(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		out = body
		return nil
	}
	if err := backoff.RetryNotify(attempt, p.backOff(ctx), p.Notify); err != nil {
		return nil, err
	}
	return out, nil
}
