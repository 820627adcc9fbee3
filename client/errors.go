package client

import (
	"errors"
	"net/http"

	apierrors "github.com/aidelivery/delivery-manager/client/internal/errors"
	"github.com/aidelivery/delivery-manager/client/internal/types"
)

// RequestFailedError is returned for every non-2xx response. Its message is
// the response body text (or the status text, or "Request failed"); the
// status code, body, decoded payload and per-field validation messages are
// available as fields.
type RequestFailedError = apierrors.RequestFailedError

// ErrDeleteFailed matches failed deletes via errors.Is.
var ErrDeleteFailed = apierrors.ErrDeleteFailed

// ErrInvalidID is returned without contacting the server when an item id
// (ticket id) is zero or negative. Such errors are not *RequestFailedError.
var ErrInvalidID = types.ErrInvalidID

// ErrNotJSON is returned by Result.Decode when the body was plain text.
var ErrNotJSON = errNotJSON

// AsRequestFailed extracts the *RequestFailedError from err's chain.
func AsRequestFailed(err error) (*RequestFailedError, bool) {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf, true
	}
	return nil, false
}

// FieldErrors returns the server's {field: [messages]} validation errors
// carried by err, or nil.
func FieldErrors(err error) map[string][]string {
	if rf, ok := AsRequestFailed(err); ok {
		return rf.FieldErrors
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	rf, ok := AsRequestFailed(err)
	return ok && rf.StatusCode == http.StatusNotFound
}

// IsRecoverable reports whether retrying the same request might succeed.
func IsRecoverable(err error) bool { return apierrors.IsRecoverable(err) }
