package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры консьюмера событий корзины.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// Значения по умолчанию для событий корзины.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second

	// событие «корзина изменилась» должно доходить до витрины быстро
	eventsMaxWait = 500 * time.Millisecond
)

// WithDefaults — копия с заполненными таймаутами; RetryMax не меньше RetryInitial.
func (c *ConsumerConfig) WithDefaults() ConsumerConfig {
	out := *c
	if out.ProcessTimeout <= 0 {
		out.ProcessTimeout = defaultProcessTimeout
	}
	if out.RetryInitial <= 0 {
		out.RetryInitial = defaultRetryInitial
	}
	if out.RetryMax <= 0 {
		out.RetryMax = defaultRetryMax
	}
	if out.RetryMax < out.RetryInitial {
		out.RetryMax = out.RetryInitial
	}
	return out
}

// ReaderConfig — настройки kafka.Reader с ручным коммитом оффсетов.
// Без явного "first" агент читает только новые события: старые изменения
// корзины покрывает сверка при открытии страницы.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		MaxWait:        eventsMaxWait,
	}

	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	} else {
		rc.StartOffset = kafka.LastOffset
	}
	return rc
}

// PublisherConfig — параметры публикации уведомлений.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	Buffer       int           // очередь до брокера; при переполнении уведомление отбрасывается
	BatchTimeout time.Duration // сколько writer копит пачку
}

// Writer — kafka.Writer для топика уведомлений; ключ сообщения — productId.
func (c *PublisherConfig) Writer() *kafka.Writer {
	bt := c.BatchTimeout
	if bt <= 0 {
		bt = 50 * time.Millisecond
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           bt,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
