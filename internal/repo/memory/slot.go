package memory

import (
	"context"
	"sync"

	"github.com/Yotrages/exquisite-wears/internal/ports"
)

// Проверка, что Slot удовлетворяет интерфейсу CartSlot.
var _ ports.CartSlot = (*Slot)(nil)

// Slot — слот корзины в памяти процесса (хранилище отключено, тесты).
type Slot struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewSlot — конструктор.
func NewSlot() *Slot {
	return &Slot{items: make(map[string][]byte)}
}

// Read — копия содержимого; (nil, nil), если записи нет.
func (s *Slot) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

// Write — сохраняет копию payload.
func (s *Slot) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = append([]byte(nil), payload...)
	return nil
}
