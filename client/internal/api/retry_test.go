package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flakyServer(t *testing.T, failures int32, failStatus int) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if n <= failures {
			w.WriteHeader(failStatus)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestRetry_RecoversTransientGet(t *testing.T) {
	t.Parallel()
	srv, hits := flakyServer(t, 2, http.StatusServiceUnavailable)
	e := &Endpoint{BaseURL: srv.URL, HTTP: srv.Client(), Retry: RetryPolicy{MaxAttempts: 3, BaseBackoff: time.Millisecond}}
	_, err := e.Get(context.Background(), "members")
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(hits))
}

func TestRetry_StopsOnIrrecoverable(t *testing.T) {
	t.Parallel()
	srv, hits := flakyServer(t, 5, http.StatusNotFound)
	e := &Endpoint{BaseURL: srv.URL, HTTP: srv.Client(), Retry: RetryPolicy{MaxAttempts: 4, BaseBackoff: time.Millisecond}}
	_, err := e.Get(context.Background(), "members")
	require.Error(t, err)
	assert.Equal(t, "Not Found", err.Error())
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()
	srv, hits := flakyServer(t, 10, http.StatusBadGateway)
	var notified int32
	e := &Endpoint{BaseURL: srv.URL, HTTP: srv.Client(), Retry: RetryPolicy{
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		Notify:      func(error, time.Duration) { atomic.AddInt32(&notified, 1) },
	}}
	_, err := e.Get(context.Background(), "members")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(hits))
	assert.Equal(t, int32(2), atomic.LoadInt32(&notified))
}

func TestRetry_NeverAppliesToWrites(t *testing.T) {
	t.Parallel()
	srv, hits := flakyServer(t, 1, http.StatusServiceUnavailable)
	e := &Endpoint{BaseURL: srv.URL, HTTP: srv.Client(), Retry: RetryPolicy{MaxAttempts: 5, BaseBackoff: time.Millisecond}}
	_, err := e.Post(context.Background(), "members", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}
