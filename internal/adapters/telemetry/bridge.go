// Package telemetry reports resolver spans through the logger.
package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fergus/internal/core/ports"
	"go.trai.ch/zerr"
)

// Bridge implements sdktrace.SpanProcessor and logs every ended span.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported when they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes. Failed spans are logged as errors.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	line := FormatSpan(s.Name(), s.EndTime().Sub(s.StartTime()), s)

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Error(zerr.With(zerr.New(line), "status", desc))
		return
	}
	b.logger.Info(line)
}

// FormatSpan renders a span as "name duration key=value ...".
func FormatSpan(name string, d time.Duration, s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte(' ')
	sb.WriteString(d.Round(time.Microsecond).String())
	for _, kv := range s.Attributes() {
		_, _ = fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}
	return sb.String()
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
