// Package otel configures OpenTelemetry tracing for the gateway from the
// standard OTEL_* environment variables.
package otel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ServiceName is used when OTEL_SERVICE_NAME is unset.
const ServiceName = "osuapi-gateway"

type settings struct {
	disabled   bool
	protocol   string
	endpoint   string
	sampler    string
	samplerArg string
}

func loadSettings() settings {
	s := settings{
		disabled:   os.Getenv("OTEL_SDK_DISABLED") == "true",
		protocol:   getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		endpoint:   os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		sampler:    getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
		samplerArg: getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0"),
	}
	if s.endpoint == "" {
		s.endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return s
}

// Init installs the global tracer provider and propagator. The returned
// function flushes and stops the provider. Exporter failures degrade to the
// no-op provider instead of failing startup.
func Init(ctx context.Context, loc *time.Location) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	noop := func(context.Context) error { return nil }

	s := loadSettings()
	if s.disabled {
		logEvent(loc, "info", "tracing_configured", map[string]any{"tracing_enabled": false})
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(getEnv("OTEL_SERVICE_NAME", ServiceName)),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newExporter(ctx, s.protocol)
	if err != nil {
		logEvent(loc, "error", "tracing_init_failed", map[string]any{"error": err.Error()})
		return noop, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(newSampler(s.sampler, s.samplerArg)),
	)
	otel.SetTracerProvider(tp)

	logEvent(loc, "info", "tracing_configured", map[string]any{
		"tracing_enabled": true,
		"otlp_protocol":   s.protocol,
		"otlp_endpoint":   s.endpoint,
		"sampler":         s.sampler,
		"sampler_arg":     s.samplerArg,
	})

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	}
	return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func newSampler(name, arg string) trace.Sampler {
	ratio, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		ratio = 1.0
	}

	switch name {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(ratio)
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(ratio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

// logEvent writes one JSON line in the same shape as the request logger.
func logEvent(loc *time.Location, level, msg string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().In(loc).Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	for k, v := range fields {
		entry[k] = v
	}

	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
