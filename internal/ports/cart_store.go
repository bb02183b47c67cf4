package ports

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// CartStore — локальная корзина, единственная изменяемая копия CartState в процессе.
// Требования к реализации: потокобезопасность; каждая мутация возвращает новое состояние
// (копию) и ровно один раз передаёт его в CartPersister.
type CartStore interface {
	// AddItem — увеличить количество существующей позиции или добавить новую в конец.
	AddItem(ctx context.Context, line domain.CartLine) []domain.CartLine

	// RemoveItem — удалить позицию; отсутствие позиции не ошибка.
	RemoveItem(ctx context.Context, productID string) []domain.CartLine

	// SetQuantity — quantity < 1 эквивалентно RemoveItem; иначе установить/вставить.
	SetQuantity(ctx context.Context, productID string, quantity int, details *domain.LineDetails) []domain.CartLine

	// ReplaceAll — установить авторитетный снимок сервера целиком.
	ReplaceAll(ctx context.Context, lines []domain.CartLine) []domain.CartLine

	// MergeIn — объединение: количество = max(local, incoming), новые — в конец.
	MergeIn(ctx context.Context, lines []domain.CartLine) []domain.CartLine

	// Clear — явная очистка корзины.
	Clear(ctx context.Context) []domain.CartLine

	// Snapshot — копия текущего состояния только для чтения.
	Snapshot(ctx context.Context) []domain.CartLine
}
