package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.Notifier = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — уведомления корзины в Kafka.
// Notify только ставит сообщение в очередь; запись идёт в Run.
type Publisher struct {
	writer       writer
	topic        string
	log          ports.Logger
	queue        chan kafka.Message
	writeTimeout time.Duration
	closeOnce    sync.Once
}

func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	return newPublisher(cfg.Writer(), cfg.Topic, cfg.Buffer, log)
}

func newPublisher(w writer, topic string, buffer int, log ports.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		writer:       w,
		topic:        topic,
		log:          log,
		queue:        make(chan kafka.Message, buffer),
		writeTimeout: 5 * time.Second,
	}
}

// Notify — неблокирующая постановка уведомления в очередь.
func (p *Publisher) Notify(ctx context.Context, n domain.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		p.log.Warnf(ctx, "notification marshal failed id=%s: %v", n.ID, err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(n.ProductID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(n.Kind)},
			{Key: "op", Value: []byte(n.Op)},
		},
	}
	injectTrace(ctx, &msg.Headers)

	select {
	case p.queue <- msg:
	default:
		metrics.FeedOps.WithLabelValues("publish_failed").Inc()
		p.log.Warnf(ctx, "notification queue full, dropped id=%s", n.ID)
	}
}

// Run — пишет накопленные уведомления, пока не отменён ctx.
// Ошибка записи только логируется: уведомления не переотправляются.
func (p *Publisher) Run(ctx context.Context) error {
	p.log.Infof(ctx, "notification publisher started topic=%s", p.topic)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-p.queue:
			batch := p.collect(msg)
			wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.writeTimeout)
			err := p.writer.WriteMessages(wctx, batch...)
			cancel()
			if err != nil {
				metrics.FeedOps.WithLabelValues("publish_failed").Add(float64(len(batch)))
				p.log.Warnf(ctx, "notification publish failed count=%d: %v", len(batch), err)
				continue
			}
			metrics.FeedOps.WithLabelValues("published").Add(float64(len(batch)))
		}
	}
}

// Close — закрывает writer. Вызывается после остановки Run.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// collect — забирает из очереди всё, что уже накопилось, одной пачкой.
func (p *Publisher) collect(first kafka.Message) []kafka.Message {
	batch := []kafka.Message{first}
	for {
		select {
		case msg := <-p.queue:
			batch = append(batch, msg)
		default:
			return batch
		}
	}
}
