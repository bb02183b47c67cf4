package ports

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// Notifier — неблокирующий канал уведомлений (toast); реализация не должна ждать I/O.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NotificationFeed — уведомления, накопленные для UI.
type NotificationFeed interface {
	Drain() []domain.Notification
}
