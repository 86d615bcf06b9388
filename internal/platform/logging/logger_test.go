package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("table", "teams")

	logger.Info("batch written", "written", 3, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["table"] != "teams" {
		t.Fatalf("unexpected table field: %v", fields["table"])
	}
	if fields["written"] != int64(3) {
		t.Fatalf("unexpected written field: %#v", fields["written"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_TraceFieldsFromContext(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	spanID, _ := trace.SpanIDFromHex("b7ad6b7169203331")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "roster missing")
	logger.DebugContext(ctx, "filtered by level")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", fields["span_id"])
	}
}

func TestLogger_NilReceiverUsesDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
