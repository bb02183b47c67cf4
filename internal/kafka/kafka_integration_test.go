//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/gateway/rest"
	ikafka "github.com/Yotrages/exquisite-wears/internal/kafka"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/internal/session"
	"github.com/Yotrages/exquisite-wears/internal/store/memory"
	"github.com/Yotrages/exquisite-wears/internal/testutil"
	"github.com/Yotrages/exquisite-wears/internal/usecase"
	"github.com/Yotrages/exquisite-wears/pkg/logger"
)

const token = "tok-itest"

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// 1) Событие cart.changed приводит к сверке: локальная корзина становится серверной
func TestKafka_CartChanged_Syncs_TC(t *testing.T) {
	st := newStack(t)

	st.backend.SetCart(token, map[string]int{"P2": 3}, "P2")
	st.store.AddItem(st.ctx, domain.CartLine{ProductID: "P1", Quantity: 1})

	st.run(t, "first")
	writeMsg(t, st.ctx, st.kf.Brokers, st.topic, []byte(`{"type":"cart.changed","productIds":["P2"]}`))

	waitCart(t, st.store, map[string]int{"P2": 3})
}

// 2) Не-JSON пропускается, валидное событие после него — обрабатывается
func TestKafka_Skip_InvalidJSON_Then_Sync_TC(t *testing.T) {
	st := newStack(t)
	st.backend.SetCart(token, map[string]int{"P5": 1}, "P5")

	st.run(t, "first")
	writeMsg(t, st.ctx, st.kf.Brokers, st.topic, []byte("not-a-json"))
	writeMsg(t, st.ctx, st.kf.Brokers, st.topic, []byte(`{"type":"order.created"}`))
	writeMsg(t, st.ctx, st.kf.Brokers, st.topic, []byte(`{"type":"cart.changed"}`))

	waitCart(t, st.store, map[string]int{"P5": 1})
	require.Equal(t, int64(1), st.backend.Fetches.Load())
}

// 3) Без сессии событие коммитится, а бэкенд не вызывается
func TestKafka_NoSession_Ignored_TC(t *testing.T) {
	st := newStack(t)
	st.session.Clear()
	st.store.AddItem(st.ctx, domain.CartLine{ProductID: "G1", Quantity: 2})

	st.run(t, "first")
	writeMsg(t, st.ctx, st.kf.Brokers, st.topic, []byte(`{"type":"cart.changed"}`))

	time.Sleep(3 * time.Second)
	require.Equal(t, int64(0), st.backend.Fetches.Load())
	require.Len(t, st.store.Snapshot(st.ctx), 1)
}

// 4) At-least-once: пока бэкенд недоступен, оффсет не коммитится; после восстановления — сверка
func TestKafka_Redelivery_WhileBackendDown_TC(t *testing.T) {
	st := newStack(t)
	st.backend.SetCart(token, map[string]int{"P9": 2}, "P9")
	st.backend.FailNext(3, 503)

	st.run(t, "first")
	writeMsg(t, st.ctx, st.kf.Brokers, st.topic, []byte(`{"type":"cart.changed"}`))

	waitCart(t, st.store, map[string]int{"P9": 2})
	require.GreaterOrEqual(t, st.backend.Fetches.Load(), int64(4))
}

// 5) Publisher пишет уведомление в топик; читаем его обратно
func TestKafka_Publisher_Writes_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartRedpanda(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group, err := kf.NewTopic(ctx, "cart-notify-"+safe(t))
	require.NoError(t, err)

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{Brokers: kf.Brokers, Topic: topic}, logger.NewNop())
	runCtx, cancelRun := context.WithCancel(ctx)
	go func() { _ = pub.Run(runCtx) }()
	t.Cleanup(func() { cancelRun(); _ = pub.Close() })

	want := domain.Notification{ID: "n-1", Kind: domain.KindServer, Op: "add", ProductID: "P1", Message: "Out of stock"}
	pub.Notify(ctx, want)

	r := kafka.NewReader(kafka.ReaderConfig{Brokers: kf.Brokers, Topic: topic, GroupID: group, StartOffset: kafka.FirstOffset})
	defer r.Close()

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "P1", string(msg.Key))

	var got domain.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Message, got.Message)
}

// -----------------функции-помощники-----------------

type stack struct {
	ctx     context.Context
	kf      *testutil.KafkaEnv
	topic   string
	group   string
	backend *testutil.FakeBackend
	store   *memory.CartStore
	session *session.Holder
	handler ports.CartEventHandler
	log     ports.Logger
}

func newStack(t *testing.T) *stack {
	t.Helper()

	// Длинный контекст — на контейнер
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartRedpanda(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// Короткий контекст — сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	topic, group, err := kf.NewTopic(ctx, "cart-events-"+safe(t))
	require.NoError(t, err)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	backend := testutil.NewFakeBackend(token)
	t.Cleanup(backend.Close)

	gw, err := rest.NewClient(rest.Config{BaseURL: backend.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	store := memory.NewCartStore(ctx, nil)
	syncer := usecase.NewCartSynchronizer(store, gw, nil, logg, usecase.SyncOptions{RequestTimeout: 2 * time.Second})
	t.Cleanup(func() { _ = syncer.Wait(context.Background()) })

	holder := session.NewHolder(token)

	return &stack{
		ctx:     ctx,
		kf:      kf,
		topic:   topic,
		group:   group,
		backend: backend,
		store:   store,
		session: holder,
		handler: usecase.NewCartEventService(syncer, holder, logg),
		log:     logg,
	}
}

// run — запускает консьюмер и даёт ему присоединиться к группе.
func (s *stack) run(t *testing.T, startOffset string) {
	t.Helper()
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          s.topic,
		GroupID:        s.group,
		StartOffset:    startOffset,
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       time.Second,
	}, s.handler, s.log)

	runCtx, cancelRun := context.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = consumer.Run(runCtx)
	}()
	t.Cleanup(func() {
		cancelRun()
		<-done
		_ = consumer.Close()
	})

	time.Sleep(1500 * time.Millisecond)
}

func waitCart(t *testing.T, store *memory.CartStore, want map[string]int) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		got := make(map[string]int)
		for _, l := range store.Snapshot(context.Background()) {
			got[l.ProductID] = l.Quantity
		}
		if len(got) == len(want) {
			match := true
			for id, q := range want {
				if got[id] != q {
					match = false
				}
			}
			if match {
				return
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("cart not synced in time: got %v, want %v", got, want)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: payload}))
}
