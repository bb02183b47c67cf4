package domain

import "time"

// Notification — неблокирующее уведомление для UI (toast).
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Op        string    `json:"op"`
	ProductID string    `json:"productId,omitempty"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
}

// CartEvent — событие бэкенда об изменении корзины (другое устройство/клиент).
type CartEvent struct {
	Type       string   `json:"type"`
	ProductIDs []string `json:"productIds,omitempty"`
	OccurredAt string   `json:"occurredAt,omitempty"`
}

// CartChangedEvent — единственный поддерживаемый тип события.
const CartChangedEvent = "cart.changed"
