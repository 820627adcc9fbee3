// Package client is the Go SDK for the delivery-manager backend. It fronts
// two REST namespaces: reports (AI-generated standups, weekly summaries,
// rewrites, risk analysis, dashboard) and workboard (tickets, members, pull
// requests). Construct a ReportsClient or WorkboardClient with a base URL and
// options; both are stateless and safe for concurrent use.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aidelivery/delivery-manager/client/internal/api"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultReportsBaseURL is used when NewReportsClient gets an empty base URL.
	DefaultReportsBaseURL = "http://127.0.0.1:8000/api/reports"
	// DefaultWorkboardBaseURL is used when NewWorkboardClient gets an empty base URL.
	DefaultWorkboardBaseURL = "http://127.0.0.1:8000/api/workboard"
)

// metric label values
const (
	namespaceReports   = "reports"
	namespaceWorkboard = "workboard"
)

// --------------------------------------------------------------------
// Shared core
// --------------------------------------------------------------------

// base holds what both clients share: the endpoint and the raw verbs.
type base struct {
	namespace string
	http      *http.Client
	ep        *api.Endpoint
}

func newBase(namespace, baseURL, fallbackURL string, opts []Option) (*base, error) {
	if baseURL == "" {
		baseURL = fallbackURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s base url: %w", namespace, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s base url %q: scheme and host are required", namespace, baseURL)
	}

	o := &options{requestIDs: true, metrics: true}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	hc := o.httpClient()
	hc.Transport = o.transport(namespace, hc.Transport)

	ep := &api.Endpoint{
		BaseURL: baseURL,
		HTTP:    hc,
		Retry:   o.retry,
	}
	if o.metrics {
		fallbacks := textFallbacksTotal.WithLabelValues(namespace)
		ep.OnTextFallback = fallbacks.Inc
	}
	if ep.Retry.MaxAttempts > 1 && ep.Retry.Notify == nil {
		ep.Retry.Notify = retryLogger(namespace)
	}
	return &base{namespace: namespace, http: hc, ep: ep}, nil
}

// BaseURL returns the namespace root requests are sent under.
func (b *base) BaseURL() string { return b.ep.BaseURL }

// Get issues a GET on a relative path, which may carry a query string. The
// body is returned as generic JSON, or as text when it is not JSON.
func (b *base) Get(ctx context.Context, path string) (*Result[any], error) {
	body, err := b.ep.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return b.result(body), nil
}

// Post issues a POST with body encoded as JSON; nil sends {}.
func (b *base) Post(ctx context.Context, path string, body any) (*Result[any], error) {
	raw, err := b.ep.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return b.result(raw), nil
}

// Patch issues a PATCH with body encoded as JSON.
func (b *base) Patch(ctx context.Context, path string, body any) (*Result[any], error) {
	raw, err := b.ep.Patch(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return b.result(raw), nil
}

// Delete issues a DELETE. A failure reports "Delete failed"; the server's
// answer is on the *RequestFailedError.
func (b *base) Delete(ctx context.Context, path string) error {
	return b.ep.Delete(ctx, path)
}

func (b *base) result(body []byte) *Result[any] {
	r := newResult[any](body)
	if r.TextFallback() && b.ep.OnTextFallback != nil {
		b.ep.OnTextFallback()
	}
	return r
}

func retryLogger(namespace string) func(error, time.Duration) {
	return func(err error, wait time.Duration) {
		log.Debug().Err(err).Str("namespace", namespace).Dur("wait", wait).Msg("retrying request")
	}
}
