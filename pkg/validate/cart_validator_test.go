package validate_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
)

func validLine() *domain.CartLine {
	stock := 5
	return &domain.CartLine{
		ProductID:      "p1",
		Name:           "Linen Shirt",
		UnitPrice:      49.9,
		ImageRef:       "img/p1.jpg",
		Quantity:       2,
		AvailableStock: &stock,
	}
}

func TestCartValidator_ValidateLine(t *testing.T) {
	v := validate.NewCartValidator()
	ctx := context.Background()

	t.Run("valid line", func(t *testing.T) {
		if err := v.ValidateLine(ctx, validLine()); err != nil {
			t.Fatalf("expected valid line, got: %v", err)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		l := validLine()
		l.UnitPrice = 0
		if err := v.ValidateLine(ctx, l); err != nil {
			t.Fatalf("expected valid line, got: %v", err)
		}
	})

	cases := []struct {
		name     string
		makeLine func() *domain.CartLine
		msg      string
	}{
		{
			name:     "nil line",
			makeLine: func() *domain.CartLine { return nil },
			msg:      "позиция не может быть nil",
		},
		{
			name: "empty productId",
			makeLine: func() *domain.CartLine {
				l := validLine()
				l.ProductID = "  "
				return l
			},
			msg: "productId обязателен",
		},
		{
			name: "zero quantity",
			makeLine: func() *domain.CartLine {
				l := validLine()
				l.Quantity = 0
				return l
			},
			msg: "quantity должен быть >= 1",
		},
		{
			name: "negative price",
			makeLine: func() *domain.CartLine {
				l := validLine()
				l.UnitPrice = -1
				return l
			},
			msg: "unitPrice должен быть неотрицательным числом",
		},
		{
			name: "NaN price",
			makeLine: func() *domain.CartLine {
				l := validLine()
				l.UnitPrice = math.NaN()
				return l
			},
			msg: "unitPrice должен быть неотрицательным числом",
		},
		{
			name: "negative stock",
			makeLine: func() *domain.CartLine {
				l := validLine()
				stock := -1
				l.AvailableStock = &stock
				return l
			},
			msg: "availableStock должен быть неотрицательным",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateLine(ctx, tc.makeLine())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidLine) {
				t.Fatalf("expected ErrInvalidLine, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected error to contain %q, got %q", tc.msg, err.Error())
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	if err := validate.ValidateEvent(&domain.CartEvent{Type: domain.CartChangedEvent}); err != nil {
		t.Fatalf("expected valid event, got: %v", err)
	}
	if err := validate.ValidateEvent(&domain.CartEvent{Type: domain.CartChangedEvent, ProductIDs: []string{"p1"}}); err != nil {
		t.Fatalf("expected valid event, got: %v", err)
	}

	bad := []*domain.CartEvent{
		nil,
		{Type: "order.created"},
		{Type: domain.CartChangedEvent, ProductIDs: []string{"p1", ""}},
	}
	for i, ev := range bad {
		if err := validate.ValidateEvent(ev); !errors.Is(err, validate.ErrInvalidEvent) {
			t.Fatalf("case %d: expected ErrInvalidEvent, got: %v", i, err)
		}
	}
}
