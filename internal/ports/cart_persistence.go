package ports

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// CartPersister — адаптер долговременного хранения корзины.
// Save никогда не возвращает ошибку наружу (fire-and-forget), Load никогда не падает.
type CartPersister interface {
	Save(ctx context.Context, lines []domain.CartLine)
	Load(ctx context.Context) []domain.CartLine
}

// CartSlot — строковый слот «ключ -> значение» (файл, Postgres, память).
// Read возвращает (nil, nil), если слота ещё нет.
type CartSlot interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
}
