package types

import (
	"encoding/json"
	"errors"
)

// ErrNotJSON is returned by Result.Decode when the body was not JSON.
var ErrNotJSON = errors.New("response body is not JSON")

// Result carries a successful response. The body is decoded into Value when
// it is JSON of the expected shape; otherwise Parsed is false and the body is
// available verbatim through Text. JSON reports whether the body was valid
// JSON at all, so a shape mismatch (JSON true, Parsed false) can be told
// apart from a plain-text body (both false).
type Result[T any] struct {
	Value  T
	Raw    []byte
	Parsed bool
	JSON   bool
}

// NewResult decodes body into a Result. It never fails: a body that does not
// decode into T is kept as text.
func NewResult[T any](body []byte) *Result[T] {
	r := &Result[T]{Raw: body, JSON: json.Valid(body)}
	if !r.JSON {
		return r
	}
	if err := json.Unmarshal(body, &r.Value); err != nil {
		var zero T
		r.Value = zero
		return r
	}
	r.Parsed = true
	return r
}

// TextFallback reports whether a non-empty body was returned as text because
// it was not JSON.
func (r *Result[T]) TextFallback() bool { return !r.JSON && len(r.Raw) > 0 }

// Text returns the body exactly as received.
func (r *Result[T]) Text() string { return string(r.Raw) }

// Decode unmarshals the raw body into v, for callers that need fields the
// typed Value does not model.
func (r *Result[T]) Decode(v any) error {
	if !r.JSON {
		return ErrNotJSON
	}
	return json.Unmarshal(r.Raw, v)
}

// Any returns the body as a generic JSON value, or the raw text when the body
// is not JSON.
func (r *Result[T]) Any() any {
	if !r.JSON {
		return r.Text()
	}
	var v any
	if err := json.Unmarshal(r.Raw, &v); err != nil {
		return r.Text()
	}
	return v
}
