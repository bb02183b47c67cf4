package notify

import (
	"container/list"
	"time"

	"github.com/Yotrages/exquisite-wears/pkg/metrics"
)

// evictOldest — удаляет самое старое уведомление.
func (f *Feed) evictOldest() {
	if back := f.ll.Back(); back != nil {
		f.removeElement(back)
		metrics.FeedOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (f *Feed) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(f.index, ent.id)
	}
	f.ll.Remove(elem)
}

// expiryFrom — момент устаревания для текущего времени.
func (f *Feed) expiryFrom(now time.Time) time.Time {
	if f.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(f.ttl)
}

// pruneExpiredFromBack — удаляет устаревшие уведомления из хвоста до первого актуального.
func (f *Feed) pruneExpiredFromBack(now time.Time) {
	if f.ttl <= 0 {
		return
	}
	for {
		back := f.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if ok && !now.After(ent.expiresAt) {
			return
		}
		f.removeElement(back)
		metrics.FeedOps.WithLabelValues("expired").Inc()
		metrics.FeedSize.Set(float64(f.ll.Len()))
	}
}
