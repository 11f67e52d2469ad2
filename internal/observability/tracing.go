package observability

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// List of supported span exporters
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// NewTracerProvider builds a provider for the named exporter. The returned shutdown
// function flushes pending spans.
func NewTracerProvider(exporter, serviceName string, w io.Writer) (trace.TracerProvider, func(context.Context) error, error) {
	switch exporter {
	case "", ExporterNone:
		return nooptrace.NewTracerProvider(), func(context.Context) error { return nil }, nil
	case ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, nil, fmt.Errorf("stdout span exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		)
		return tp, tp.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("unknown tracing exporter %q", exporter)
	}
}
