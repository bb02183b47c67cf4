package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Локальная корзина и её долговременное хранение.
var (
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_store_operations_total",
			Help: "Local cart store mutations",
		},
		[]string{"op"}, // add|remove|set_quantity|replace_all|merge_in|clear
	)
	CartLines = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_lines",
			Help: "Number of lines currently in the local cart",
		},
	)
	PersistenceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_persistence_failures_total",
			Help: "Swallowed durable slot failures",
		},
		[]string{"op"}, // save|load|decode
	)
)

// Удалённая корзина и синхронизация.
var (
	RemoteRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_remote_requests_total",
			Help: "Backend cart requests by outcome",
		},
		[]string{"op", "outcome"}, // op: fetch|add|set; outcome: ok|unauthenticated|network|server|unknown
	)
	RemoteLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_remote_request_duration_seconds",
			Help:    "Backend cart request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	Mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Cart mutations by kind and final state",
		},
		[]string{"kind", "state"},
	)
	SurfaceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_surface_requests_total",
			Help: "Cart operations by originating UI surface",
		},
		[]string{"surface", "op"},
	)
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_notifications_total",
			Help: "Notifications emitted to the UI",
		},
		[]string{"kind"},
	)
	FeedOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_notification_feed_operations_total",
			Help: "Notification feed operations",
		},
		[]string{"op"}, // push|replace|drain|evicted|expired|published|publish_failed
	)
	FeedSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_notification_feed_size",
			Help: "Notifications waiting to be drained",
		},
	)
)

// События корзины из Kafka.
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует коллекторы в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			StoreOps, CartLines, PersistenceFailures,
			RemoteRequests, RemoteLatency, Mutations, SurfaceRequests, Notifications,
			FeedOps, FeedSize,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
