// Package upstream builds the instrumented HTTP transport used to reach the osu! API.
package upstream

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RequestIDHeader is forwarded to the upstream API so gateway and upstream
// log lines can be correlated.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Metrics are the upstream request metrics.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics creates the upstream metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "osu_api_requests_total",
				Help: "Total number of requests sent to the osu! API.",
			},
			[]string{"code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "osu_api_request_duration_seconds",
				Help:    "Latency of requests sent to the osu! API.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "osu_api_requests_in_flight",
			Help: "Requests to the osu! API currently waiting for a response.",
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewTransport wraps base with request id propagation, prometheus metrics
// (when m is not nil) and OpenTelemetry client spans. A nil base means
// http.DefaultTransport.
func NewTransport(base http.RoundTripper, m *Metrics) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	var rt http.RoundTripper = requestIDTransport{next: base}
	if m != nil {
		rt = promhttp.InstrumentRoundTripperInFlight(m.inFlight,
			promhttp.InstrumentRoundTripperCounter(m.requests,
				promhttp.InstrumentRoundTripperDuration(m.duration, rt),
			),
		)
	}

	return otelhttp.NewTransport(rt,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "osu! API " + r.URL.Path
		}),
	)
}

type requestIDTransport struct {
	next http.RoundTripper
}

func (t requestIDTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	id := RequestIDFrom(r.Context())
	if id == "" || r.Header.Get(RequestIDHeader) != "" {
		return t.next.RoundTrip(r)
	}
	r = r.Clone(r.Context())
	r.Header.Set(RequestIDHeader, id)
	return t.next.RoundTrip(r)
}
