package ports

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// LineValidator — проверка позиции корзины.
type LineValidator interface {
	ValidateLine(ctx context.Context, line *domain.CartLine) error
}
