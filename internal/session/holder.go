package session

import (
	"strings"
	"sync"

	"github.com/Yotrages/exquisite-wears/internal/ports"
)

var _ ports.CredentialSource = (*Holder)(nil)

// Holder — учётные данные агента («хранилище токена»).
// Пустое значение означает гостевой режим.
type Holder struct {
	mu    sync.RWMutex
	token string
}

func NewHolder(token string) *Holder {
	return &Holder{token: strings.TrimSpace(token)}
}

// Set — вход: запомнить токен. Корзину не трогает.
func (h *Holder) Set(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// Clear — выход. Локальная корзина при этом сохраняется.
func (h *Holder) Clear() {
	h.Set("")
}

// Current — текущий токен и признак входа.
func (h *Holder) Current() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token, h.token != ""
}
