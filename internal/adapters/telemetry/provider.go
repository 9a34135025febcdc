package telemetry

import (
	"context"

	"go.nivo.ch/panelctl/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the tracer provider for the process. Spans are handed to the
// Bridge synchronously; there is no exporter and nothing leaves the machine.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider builds a tracer provider that reports span timings through the
// given logger and installs it as the global OTel provider.
func NewProvider(logger ports.Logger) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)

	return &Provider{tp: tp}
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
