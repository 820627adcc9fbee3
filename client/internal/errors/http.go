package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes - be conservative and retry
		return Recoverable
	}
}

// StatusText extracts the reason phrase from an http.Response.Status value
// ("400 Bad Request" -> "Bad Request"). Servers may send no phrase at all.
func StatusText(code int, status string) string {
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
}

// NewRequestFailed builds the error for a non-2xx response. body is the full
// response body; status is the raw http.Response.Status.
func NewRequestFailed(method, url string, statusCode int, status string, body []byte) *RequestFailedError {
	e := &RequestFailedError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Status:     StatusText(statusCode, status),
		Body:       string(body),
		Category:   getHTTPErrorCategory(statusCode),
	}
	var payload any
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		e.Payload = payload
		e.FieldErrors = fieldErrors(payload)
	}
	return e
}

// NewDeleteFailed is NewRequestFailed with the fixed delete message.
func NewDeleteFailed(method, url string, statusCode int, status string, body []byte) *RequestFailedError {
	e := NewRequestFailed(method, url, statusCode, status, body)
	e.message = DeleteFailedMessage
	e.sentinel = ErrDeleteFailed
	return e
}

// fieldErrors recognises {field: [messages...]} validation payloads. A bare
// string value is accepted as a single message; any other shape disqualifies
// the payload.
func fieldErrors(payload any) map[string][]string {
	obj, ok := payload.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	out := make(map[string][]string, len(obj))
	for field, v := range obj {
		switch msgs := v.(type) {
		case string:
			out[field] = []string{msgs}
		case []any:
			list := make([]string, 0, len(msgs))
			for _, m := range msgs {
				s, ok := m.(string)
				if !ok {
					return nil
				}
				list = append(list, s)
			}
			out[field] = list
		default:
			return nil
		}
	}
	return out
}

// NewNetworkError creates a classified error for network-level failures.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}
