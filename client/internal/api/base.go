package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aidelivery/delivery-manager/client/internal/errors"
	"github.com/aidelivery/delivery-manager/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoint binds one API namespace (reports, workboard) to the HTTP client
// that serves it. It holds no mutable state and is safe for concurrent use.
type Endpoint struct {
	BaseURL string
	HTTP    HTTPClient

	// Retry applies to GET requests only. The zero value never retries.
	Retry RetryPolicy

	// OnTextFallback is invoked when a 2xx body does not decode as JSON.
	OnTextFallback func()
}

// URL joins the base URL and a relative resource path. Paths without a query
// string always end in a slash; paths with one are left untouched so the
// query is not corrupted.
func (e *Endpoint) URL(path string) string {
	base := strings.TrimRight(e.BaseURL, "/")
	path = strings.TrimLeft(path, "/")
	if strings.Contains(path, "?") {
		return base + "/" + path
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return base + "/"
	}
	return base + "/" + path + "/"
}

// Get issues a GET and returns the raw success body.
func (e *Endpoint) Get(ctx context.Context, path string) ([]byte, error) {
	if e.Retry.enabled() {
		return e.Retry.do(ctx, func() ([]byte, error) {
			return e.do(ctx, http.MethodGet, path, nil, false, errors.NewRequestFailed)
		})
	}
	return e.do(ctx, http.MethodGet, path, nil, false, errors.NewRequestFailed)
}

// Post issues a POST with a JSON body; a nil body is sent as {}.
func (e *Endpoint) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return e.do(ctx, http.MethodPost, path, body, true, errors.NewRequestFailed)
}

// Patch issues a PATCH with a JSON body; a nil body is sent as {}.
func (e *Endpoint) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return e.do(ctx, http.MethodPatch, path, body, true, errors.NewRequestFailed)
}

// Delete issues a DELETE. Failures report the fixed delete message; the
// response status and body stay available on the error.
func (e *Endpoint) Delete(ctx context.Context, path string) error {
	_, err := e.do(ctx, http.MethodDelete, path, nil, false, errors.NewDeleteFailed)
	return err
}

type failFunc func(method, url string, statusCode int, status string, body []byte) *errors.RequestFailedError

func (e *Endpoint) do(ctx context.Context, method, path string, body any, withBody bool, fail failFunc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := e.URL(path)

	var reader io.Reader
	if withBody {
		if body == nil {
			body = struct{}{}
		}
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", strings.ToLower(method), path, err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if method != http.MethodDelete {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.HTTP.Do(httpReq)
	if err != nil {
		return nil, errors.NewNetworkError(strings.ToLower(method)+" "+path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError(strings.ToLower(method)+" "+path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(method, url, resp.StatusCode, resp.Status, raw)
	}
	return raw, nil
}

// decode wraps a success body in a Result, reporting bodies that are not
// JSON. JSON of an unexpected shape is not a text fallback.
func decode[T any](e *Endpoint, body []byte) *types.Result[T] {
	r := types.NewResult[T](body)
	if r.TextFallback() && e.OnTextFallback != nil {
		e.OnTextFallback()
	}
	return r
}

// getAs and postAs are the typed forms of Get and Post.
func getAs[T any](ctx context.Context, e *Endpoint, path string) (*types.Result[T], error) {
	body, err := e.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decode[T](e, body), nil
}

func postAs[T any](ctx context.Context, e *Endpoint, path string, req any) (*types.Result[T], error) {
	body, err := e.Post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return decode[T](e, body), nil
}

func patchAs[T any](ctx context.Context, e *Endpoint, path string, req any) (*types.Result[T], error) {
	body, err := e.Patch(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return decode[T](e, body), nil
}
