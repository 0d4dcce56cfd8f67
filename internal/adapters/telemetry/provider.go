package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fergus/internal/core/ports"
)

// NewTracerProvider returns a provider that reports every span to logger.
// Spans are processed synchronously so they are logged before the command exits.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}
