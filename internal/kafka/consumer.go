package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader для подмены в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventHandler — реакция на событие корзины (разбор, валидация, syncFromServer).
// validate.ErrInvalidEvent означает, что повторять сообщение бессмысленно.
type eventHandler interface {
	HandleCartEvent(ctx context.Context, raw []byte) error
}

// Consumer — читает топик событий корзины и запускает сверку с сервером.
// Оффсет коммитится только после успешной сверки или для заведомо битого события.
type Consumer struct {
	reader         reader
	handler        eventHandler
	log            ports.Logger
	processTimeout time.Duration

	fetchRetry *backoff // ошибки брокера
	syncRetry  *backoff // пауза перед повторной доставкой при недоступном бэкенде

	closeOnce sync.Once
}

func NewConsumer(cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	c := cfg.WithDefaults()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Consumer{
		reader:         kafka.NewReader(c.ReaderConfig()),
		handler:        handler,
		log:            log,
		processTimeout: c.ProcessTimeout,
		fetchRetry:     newBackoff(c.RetryInitial, c.RetryMax, rnd),
		// первая пауза после неудачной сверки короче: бэкенд часто оживает быстро
		syncRetry: newBackoff(minDuration(c.RetryInitial, 500*time.Millisecond), c.RetryMax, rnd),
	}
}

// Run — цикл чтения до отмены ctx.
// Сбой сверки оставляет оффсет незакоммиченным, и событие придёт снова (at-least-once);
// паузы между такими повторами растут до RetryMax.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "cart events consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.fetchRetry.next()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, wait)
			if !sleepCtx(ctx, wait) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.syncRetry.reset()
			c.commitSafely(ctx, &msg)
			continue
		}
		if !sleepCtx(ctx, c.syncRetry.next()) {
			return ctx.Err()
		}
	}
}

// Close — закрывает reader; повторный вызов ничего не делает.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
