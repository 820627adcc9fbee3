package client

// This file defines functional options that configure a client during
// construction. Keeping them in a standalone file avoids cluttering the
// client files and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aidelivery/delivery-manager/client/internal/api"
)

// Option configures a ReportsClient or WorkboardClient during construction.
// Options must be deterministic and side-effect free.
type Option func(*options) error

type options struct {
	http       *http.Client
	timeout    time.Duration
	debug      bool
	requestIDs bool
	metrics    bool
	retry      api.RetryPolicy
}

// httpClient returns a private copy of the configured client so transport
// wrapping never mutates a caller-owned *http.Client.
func (o *options) httpClient() *http.Client {
	hc := &http.Client{}
	if o.http != nil {
		cp := *o.http
		hc = &cp
	}
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}
	return hc
}

// transport builds the round-tripper chain, outermost first:
// request id -> metrics -> debug dump -> base.
func (o *options) transport(namespace string, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	if o.debug {
		rt = &debugTransport{base: rt}
	}
	if o.metrics {
		rt = instrument(namespace, rt)
	}
	if o.requestIDs {
		rt = &requestIDTransport{base: rt}
	}
	return rt
}

// WithHTTPClient supplies the underlying *http.Client. The client is copied;
// its Transport becomes the innermost round-tripper.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		o.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the http.Client Timeout.
//
// By default no timeout is enforced and calls are bounded only by the
// caller's context. Prefer per-request context deadlines where possible; this
// timeout is a coarse safety net. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		o.timeout = d
		return nil
	}
}

// WithDebugLogging dumps each request and response at debug level when
// enabled is true. Do not enable in production: bodies are logged verbatim.
func WithDebugLogging(enabled bool) Option {
	return func(o *options) error {
		o.debug = enabled
		return nil
	}
}

// WithRequestIDs controls the X-Request-ID header (on by default).
func WithRequestIDs(enabled bool) Option {
	return func(o *options) error {
		o.requestIDs = enabled
		return nil
	}
}

// WithMetrics controls Prometheus instrumentation (on by default).
func WithMetrics(enabled bool) Option {
	return func(o *options) error {
		o.metrics = enabled
		return nil
	}
}

// WithRetry retries GET requests that fail for a recoverable reason (network
// error, 408, 429, 5xx) up to maxAttempts total attempts with exponential
// backoff. Writes are never retried. Without this option nothing is retried.
func WithRetry(maxAttempts int) Option {
	return func(o *options) error {
		if maxAttempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		o.retry.MaxAttempts = maxAttempts
		return nil
	}
}

// WithRetryBackoff tunes the backoff used by WithRetry.
func WithRetryBackoff(initial, maxInterval time.Duration) Option {
	return func(o *options) error {
		if initial <= 0 || maxInterval < initial {
			return fmt.Errorf("retry backoff must satisfy 0 < initial <= max")
		}
		o.retry.BaseBackoff = initial
		o.retry.MaxInterval = maxInterval
		return nil
	}
}
