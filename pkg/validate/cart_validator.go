package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
)

// Проверка, что CartValidator удовлетворяет интерфейсу LineValidator.
var _ ports.LineValidator = (*CartValidator)(nil)

// ErrInvalidLine — базовая (sentinel error) ошибка валидации позиции корзины.
var ErrInvalidLine = errors.New("cart line validation failed")

// ErrInvalidEvent — базовая ошибка валидации события корзины.
var ErrInvalidEvent = errors.New("cart event validation failed")

// CartValidator — валидация позиций корзины.
type CartValidator struct{}

// NewCartValidator — конструктор CartValidator.
// Возвращает ErrInvalidLine (с обёрнутой причиной) при любой проблеме.
func NewCartValidator() *CartValidator { return &CartValidator{} }

// ValidateLine — проверяет корректность полей позиции.
func (v *CartValidator) ValidateLine(_ context.Context, line *domain.CartLine) error {
	if line == nil {
		return fmt.Errorf("%w: позиция не может быть nil", ErrInvalidLine)
	}
	if strings.TrimSpace(line.ProductID) == "" {
		return fmt.Errorf("%w: productId обязателен", ErrInvalidLine)
	}
	if line.Quantity < 1 {
		return fmt.Errorf("%w: quantity должен быть >= 1", ErrInvalidLine)
	}
	if line.UnitPrice < 0 || math.IsNaN(line.UnitPrice) || math.IsInf(line.UnitPrice, 0) {
		return fmt.Errorf("%w: unitPrice должен быть неотрицательным числом", ErrInvalidLine)
	}
	if line.AvailableStock != nil && *line.AvailableStock < 0 {
		return fmt.Errorf("%w: availableStock должен быть неотрицательным", ErrInvalidLine)
	}
	return nil
}

// ValidateEvent — проверяет событие корзины из брокера.
func ValidateEvent(ev *domain.CartEvent) error {
	if ev == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if ev.Type != domain.CartChangedEvent {
		return fmt.Errorf("%w: неизвестный type %q", ErrInvalidEvent, ev.Type)
	}
	for i, id := range ev.ProductIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: productIds[%d] пуст", ErrInvalidEvent, i)
		}
	}
	return nil
}
