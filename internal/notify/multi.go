package notify

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
)

var _ ports.Notifier = Multi(nil)

// Multi — рассылка одного уведомления нескольким получателям по порядку.
type Multi []ports.Notifier

// NewMulti — собирает Multi, пропуская nil.
func NewMulti(notifiers ...ports.Notifier) Multi {
	out := make(Multi, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, target := range m {
		target.Notify(ctx, n)
	}
}
