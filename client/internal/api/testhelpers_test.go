package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// captured is what the fake backend saw for the last request.
type captured struct {
	mu          sync.Mutex
	method      string
	uri         string
	contentType string
	body        []byte
	hits        int
}

func (c *captured) snapshot() captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return captured{method: c.method, uri: c.uri, contentType: c.contentType, body: c.body, hits: c.hits}
}

// fakeBackend answers every request with status and body and records the request.
func fakeBackend(t *testing.T, status int, body string) (*Endpoint, *captured) {
	t.Helper()
	rec := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.method = r.Method
		rec.uri = r.URL.RequestURI()
		rec.contentType = r.Header.Get("Content-Type")
		rec.body = b
		rec.hits++
		rec.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return &Endpoint{BaseURL: srv.URL + "/api/workboard", HTTP: srv.Client()}, rec
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}
