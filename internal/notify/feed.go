package notify

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
)

var (
	_ ports.Notifier         = (*Feed)(nil)
	_ ports.NotificationFeed = (*Feed)(nil)
)

// DefaultCapacity — размер ленты по умолчанию.
const DefaultCapacity = 100

type entry struct {
	id        string
	n         domain.Notification
	expiresAt time.Time
}

// Feed — ограниченная лента уведомлений для UI.
// Новые — в голове списка; при переполнении вытесняется самое старое.
// Уведомление с уже известным ID заменяет прежнее. ttl <= 0 — без устаревания.
type Feed struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewFeed(capacity int, ttl time.Duration) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Notify — добавить уведомление; никогда не блокируется на I/O.
func (f *Feed) Notify(_ context.Context, n domain.Notification) {
	if n.ID == "" {
		return
	}
	now := time.Now()
	if n.At.IsZero() {
		n.At = now.UTC()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if elem, ok := f.index[n.ID]; ok {
		ent := elem.Value.(*entry)
		ent.n = n
		ent.expiresAt = f.expiryFrom(now)
		f.ll.MoveToFront(elem)
		metrics.FeedOps.WithLabelValues("replace").Inc()
		return
	}

	f.pruneExpiredFromBack(now)

	elem := f.ll.PushFront(&entry{id: n.ID, n: n, expiresAt: f.expiryFrom(now)})
	f.index[n.ID] = elem
	metrics.FeedOps.WithLabelValues("push").Inc()

	if f.ll.Len() > f.capacity {
		f.evictOldest()
	}
	metrics.FeedSize.Set(float64(f.ll.Len()))
}

// Drain — забрать все актуальные уведомления (от старых к новым) и очистить ленту.
func (f *Feed) Drain() []domain.Notification {
	now := time.Now()

	f.mu.Lock()
	defer f.mu.Unlock()

	f.pruneExpiredFromBack(now)

	out := make([]domain.Notification, 0, f.ll.Len())
	for elem := f.ll.Back(); elem != nil; elem = elem.Prev() {
		out = append(out, elem.Value.(*entry).n)
	}
	f.ll.Init()
	clear(f.index)

	metrics.FeedOps.WithLabelValues("drain").Inc()
	metrics.FeedSize.Set(0)
	return out
}

// Len — сколько уведомлений ждёт выдачи (включая ещё не вычищенные устаревшие).
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ll.Len()
}
