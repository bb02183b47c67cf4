//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeCartLine — мини-генератор валидной позиции корзины.
func MakeCartLine(opts ...func(*domain.CartLine)) domain.CartLine {
	stock := 10
	l := domain.CartLine{
		ProductID:      "prod-" + UniqSuffix(),
		Name:           "Linen Shirt",
		UnitPrice:      49.5,
		ImageRef:       "https://cdn.example.com/p.jpg",
		Quantity:       1,
		AvailableStock: &stock,
	}
	for _, fn := range opts {
		fn(&l)
	}
	return l
}

// WithProductID — переопределить productId.
func WithProductID(id string) func(*domain.CartLine) {
	return func(l *domain.CartLine) { l.ProductID = id }
}

// WithQuantity — переопределить количество.
func WithQuantity(q int) func(*domain.CartLine) {
	return func(l *domain.CartLine) { l.Quantity = q }
}
