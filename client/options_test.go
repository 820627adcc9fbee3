package client

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

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestOptions_Validation(t *testing.T) {
	t.Parallel()
	o := &options{}
	assert.Error(t, WithHTTPTimeout(0)(o))
	assert.Error(t, WithHTTPClient(nil)(o))
	assert.Error(t, WithRetry(0)(o))
	assert.Error(t, WithRetryBackoff(time.Second, time.Millisecond)(o))

	require.NoError(t, WithHTTPTimeout(5*time.Second)(o))
	assert.Equal(t, 5*time.Second, o.httpClient().Timeout)
	require.NoError(t, WithRetry(3)(o))
	require.NoError(t, WithRetryBackoff(time.Millisecond, time.Second)(o))
	assert.Equal(t, 3, o.retry.MaxAttempts)
	assert.Equal(t, time.Millisecond, o.retry.BaseBackoff)

	_, err := NewWorkboardClient("http://example.com", WithHTTPTimeout(-1))
	assert.Error(t, err)
}

func TestNoTimeoutByDefault(t *testing.T) {
	t.Parallel()
	c, err := NewReportsClient("")
	require.NoError(t, err)
	assert.Zero(t, c.http.Timeout)
	assert.Equal(t, DefaultReportsBaseURL, c.BaseURL())
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	t.Parallel()
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Status: "200 OK", Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	mine := &http.Client{Transport: rt}
	c, err := NewWorkboardClient("http://example.com/api/workboard", WithHTTPClient(mine), WithDebugLogging(true))
	require.NoError(t, err)
	_, untouched := mine.Transport.(roundTripFunc)
	assert.True(t, untouched, "caller transport was wrapped")
	assert.NotSame(t, mine, c.http)

	_, err = c.ListMembers(context.Background())
	require.NoError(t, err)
	assert.True(t, called, "base transport not invoked")
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := NewWorkboardClient("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	require.NoError(t, err)
	_, err = c.ListPRs(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	ids := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids <- r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewWorkboardClient(srv.URL)
	require.NoError(t, err)
	_, err = c.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, <-ids, 36)

	off, err := NewWorkboardClient(srv.URL, WithRequestIDs(false))
	require.NoError(t, err)
	_, err = off.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Empty(t, <-ids)
}

func TestRetryOption_RetriesGets(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"total_tickets":1}`))
	}))
	defer srv.Close()

	c, err := NewReportsClient(srv.URL, WithRetry(2), WithRetryBackoff(time.Millisecond, 10*time.Millisecond))
	require.NoError(t, err)
	res, err := c.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Value.TotalTickets)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestBadBaseURL(t *testing.T) {
	t.Parallel()
	_, err := NewReportsClient("127.0.0.1:8000/api/reports")
	assert.Error(t, err)
	_, err = NewWorkboardClient("://nope")
	assert.Error(t, err)
}
