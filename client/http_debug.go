package client

import (
	"net/http"
	"net/http/httputil"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs every request and response, bodies included, at debug
// level through the global zerolog logger. Installed by WithDebugLogging or
// DELIVERY_DEBUG=true (via LoadConfig).
//
// Bodies may contain personal data (member emails); keep it out of production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_id", req.Header.Get(requestIDHeader)).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

const requestIDHeader = "X-Request-ID"

// requestIDTransport stamps a fresh X-Request-ID on requests that lack one.
type requestIDTransport struct{ base http.RoundTripper }

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(requestIDHeader) != "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set(requestIDHeader, uuid.NewString())
	return t.base.RoundTrip(cloned)
}
