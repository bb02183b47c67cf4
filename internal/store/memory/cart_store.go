package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
)

// Проверка, что CartStore удовлетворяет интерфейсу CartStore.
var _ ports.CartStore = (*CartStore)(nil)

// CartStore — локальная корзина: упорядоченный набор позиций под мьютексом.
// Каждая мутация сохраняется через persister ровно один раз и под тем же мьютексом,
// поэтому порядок записей в слот совпадает с порядком мутаций.
type CartStore struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	persister ports.CartPersister
}

// NewCartStore — создаёт корзину и синхронно гидратирует её из persister.
// persister может быть nil (без долговременного хранения).
func NewCartStore(ctx context.Context, persister ports.CartPersister) *CartStore {
	s := &CartStore{persister: persister, lines: []domain.CartLine{}}
	if persister != nil {
		s.lines = normalizeLines(ctx, persister.Load(ctx))
	}
	metrics.CartLines.Set(float64(len(s.lines)))
	return s
}

// AddItem — существующей позиции добавляет line.Quantity, иначе добавляет позицию в конец.
// Количество < 1 или пустой productId ничего не меняют.
func (s *CartStore) AddItem(ctx context.Context, line domain.CartLine) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in, ok := admit(ctx, line); ok {
		if i := domain.IndexOf(s.lines, in.ProductID); i >= 0 {
			s.lines[i].Quantity += in.Quantity
		} else {
			s.lines = append(s.lines, in)
		}
	}
	return s.commit(ctx, "add")
}

// RemoveItem — удаляет позицию; отсутствие позиции не ошибка.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	return s.commit(ctx, "remove")
}

// SetQuantity — quantity < 1 удаляет позицию; иначе устанавливает количество
// (или вставляет позицию), остальные поля меняются только через details.
func (s *CartStore) SetQuantity(ctx context.Context, productID string, quantity int, details *domain.LineDetails) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case quantity < 1:
		s.removeLocked(productID)
	case strings.TrimSpace(productID) == "":
	default:
		if i := domain.IndexOf(s.lines, productID); i >= 0 {
			s.lines[i].Quantity = quantity
			details.Apply(&s.lines[i])
			clearBadHints(&s.lines[i])
		} else {
			line := domain.CartLine{ProductID: productID, Quantity: quantity}
			details.Apply(&line)
			clearBadHints(&line)
			s.lines = append(s.lines, line)
		}
	}
	return s.commit(ctx, "set_quantity")
}

// ReplaceAll — отбрасывает текущий набор и устанавливает lines в заданном порядке.
func (s *CartStore) ReplaceAll(ctx context.Context, lines []domain.CartLine) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = normalizeLines(ctx, lines)
	return s.commit(ctx, "replace_all")
}

// MergeIn — объединение без сложения: совпавшей позиции достаётся max(local, incoming),
// новые позиции добавляются в конец в порядке поступления.
func (s *CartStore) MergeIn(ctx context.Context, lines []domain.CartLine) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range lines {
		in, ok := admit(ctx, lines[i])
		if !ok {
			continue
		}
		if j := domain.IndexOf(s.lines, in.ProductID); j >= 0 {
			if in.Quantity > s.lines[j].Quantity {
				s.lines[j].Quantity = in.Quantity
			}
			continue
		}
		s.lines = append(s.lines, in)
	}
	return s.commit(ctx, "merge_in")
}

// Clear — явная очистка.
func (s *CartStore) Clear(ctx context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []domain.CartLine{}
	return s.commit(ctx, "clear")
}

// Snapshot — копия текущего состояния.
func (s *CartStore) Snapshot(_ context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.CloneLines(s.lines)
}
