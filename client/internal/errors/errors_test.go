package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFailed_MessageFallbacks(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		code   int
		status string
		body   string
		want   string
	}{
		{"body wins", 400, "400 Bad Request", "title missing", "title missing"},
		{"status text when body empty", 502, "502 Bad Gateway", "", "Bad Gateway"},
		{"fallback when both empty", 500, "500", "", DefaultMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewRequestFailed(http.MethodGet, "http://x/tickets/", tc.code, tc.status, []byte(tc.body))
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestRequestFailed_FieldErrors(t *testing.T) {
	t.Parallel()
	body := `{"status":["Invalid status"],"title":"Title is required"}`
	err := NewRequestFailed(http.MethodPatch, "u", 400, "400 Bad Request", []byte(body))
	assert.Equal(t, body, err.Error())
	require.True(t, err.HasFieldErrors())
	assert.Equal(t, []string{"Invalid status"}, err.FieldErrors["status"])
	assert.Equal(t, []string{"Title is required"}, err.FieldErrors["title"])
	assert.Equal(t, Irrecoverable, err.Category)
}

func TestRequestFailed_NonFieldPayload(t *testing.T) {
	t.Parallel()
	err := NewRequestFailed(http.MethodGet, "u", 404, "404 Not Found", []byte(`{"detail":{"code":1}}`))
	assert.NotNil(t, err.Payload)
	assert.False(t, err.HasFieldErrors())

	plain := NewRequestFailed(http.MethodGet, "u", 500, "500 Internal Server Error", []byte("<html>oops</html>"))
	assert.Nil(t, plain.Payload)
	assert.Equal(t, Recoverable, plain.Category)
}

func TestDeleteFailed_FixedMessage(t *testing.T) {
	t.Parallel()
	err := NewDeleteFailed(http.MethodDelete, "u", 404, "404 Not Found", []byte(`{"detail":"Not found."}`))
	assert.Equal(t, DeleteFailedMessage, err.Error())
	assert.Equal(t, `{"detail":"Not found."}`, err.Body)
	assert.True(t, stderrors.Is(err, ErrDeleteFailed))
}

func TestCategories(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Recoverable, getHTTPErrorCategory(http.StatusTooManyRequests))
	assert.Equal(t, Recoverable, getHTTPErrorCategory(http.StatusRequestTimeout))
	assert.Equal(t, Irrecoverable, getHTTPErrorCategory(http.StatusConflict))
	assert.Equal(t, Recoverable, getHTTPErrorCategory(http.StatusServiceUnavailable))

	netErr := NewNetworkError("get tickets", stderrors.New("connection refused"))
	assert.True(t, IsRecoverable(netErr))
	assert.False(t, IsIrrecoverable(netErr))
	assert.Equal(t, "Recoverable", Recoverable.String())
	assert.Equal(t, "Unknown(9)", ErrorCategory(9).String())
}
