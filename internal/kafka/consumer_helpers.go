package kafka

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/Yotrages/exquisite-wears/pkg/telemetry"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// handleMessage — обработка одного события; true, если оффсет можно коммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	// спан продолжает трейс издателя события, если тот положил traceparent в заголовки
	ctx, span := telemetry.StartSpan(extractTrace(ctx, msg.Headers), "cart.event",
		attribute.String("messaging.destination", topic),
		attribute.Int64("messaging.kafka.offset", msg.Offset),
	)
	defer span.End()

	hctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleCartEvent(hctx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidEvent):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		span.SetStatus(codes.Error, "invalid event")
		c.log.Warnf(ctx, "invalid cart event offset=%d key=%s: %v (skipped)", msg.Offset, string(msg.Key), err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "sync failed")
		c.log.Warnf(ctx, "cart event failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

// backoff — экспоненциальная задержка с equal-jitter: половина фиксирована, половина случайна.
type backoff struct {
	initial time.Duration
	max     time.Duration

	mu      sync.Mutex
	current time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration, rnd *rand.Rand) *backoff {
	if maxDelay < initial {
		maxDelay = initial
	}
	return &backoff{initial: initial, max: maxDelay, current: initial, rnd: rnd}
}

// next — задержка для текущей попытки; следующая будет вдвое больше (не выше max).
func (b *backoff) next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.current
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

func (b *backoff) reset() {
	b.mu.Lock()
	b.current = b.initial
	b.mu.Unlock()
}

// sleepCtx — false, если ctx отменён раньше d.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
