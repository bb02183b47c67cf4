package kafka

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestBackoff_GrowsCapsAndResets(t *testing.T) {
	b := newBackoff(10*time.Millisecond, 40*time.Millisecond, rand.New(rand.NewSource(1)))

	// equal-jitter: задержка в [d/2, d]
	for i, d := range []time.Duration{10, 20, 40, 40} {
		d *= time.Millisecond
		got := b.next()
		if got < d/2 || got > d {
			t.Fatalf("step %d: want in [%s, %s], got %s", i, d/2, d, got)
		}
	}

	b.reset()
	if got := b.next(); got > 10*time.Millisecond {
		t.Fatalf("after reset want <= 10ms, got %s", got)
	}
}

func TestBackoff_MaxBelowInitial(t *testing.T) {
	b := newBackoff(20*time.Millisecond, time.Millisecond, rand.New(rand.NewSource(1)))
	for range 3 {
		if got := b.next(); got > 20*time.Millisecond {
			t.Fatalf("want <= 20ms, got %s", got)
		}
	}
}

func TestSleepCtx_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepCtx(ctx, time.Second) {
		t.Fatalf("sleepCtx must return false on canceled ctx")
	}
	if !sleepCtx(context.Background(), time.Millisecond) {
		t.Fatalf("sleepCtx must return true after delay")
	}
}

func TestTraceHeaders_RoundTrip(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	headers := []kafka.Header{{Key: "kind", Value: []byte("network")}}
	injectTrace(ctx, &headers)
	injectTrace(ctx, &headers) // повторная запись не дублирует заголовок

	if n := len(headers); n != 2 {
		t.Fatalf("want kind + traceparent, got %d headers: %v", n, headerCarrier{&headers}.Keys())
	}

	got := trace.SpanContextFromContext(extractTrace(context.Background(), headers))
	if got.TraceID() != sc.TraceID() || got.SpanID() != sc.SpanID() {
		t.Fatalf("trace not propagated: %v", got)
	}
}
