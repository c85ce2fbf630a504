package httpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Client is the subset of *http.Client used by API clients, so tests can swap it
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// tracingTransport injects the W3C trace context into outgoing requests
type tracingTransport struct {
	base http.RoundTripper
}

func (t tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	otel.GetTextMapPropagator().Inject(req.Context(), propagation.HeaderCarrier(req.Header))
	return t.base.RoundTrip(req)
}

// New creates an HTTP client with the given timeout that propagates trace context
func New(timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tracingTransport{base: http.DefaultTransport},
	}
}
