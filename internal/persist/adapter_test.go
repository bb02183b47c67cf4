package persist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports/mocks"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestSave_WritesJSONArrayUnderKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mocks.NewMockCartSlot(ctrl)
	a := NewAdapter(slot, "guest-cart", nil, noopLogger{}, time.Second)

	slot.EXPECT().
		Write(gomock.Any(), "guest-cart", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, payload []byte) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("write must be bounded by writeTimeout")
			}
			var lines []domain.CartLine
			if err := json.Unmarshal(payload, &lines); err != nil {
				t.Fatalf("payload is not a json array: %v", err)
			}
			if len(lines) != 1 || lines[0].ProductID != "p1" || lines[0].Quantity != 2 {
				t.Fatalf("unexpected payload: %s", payload)
			}
			return nil
		})

	a.Save(context.Background(), []domain.CartLine{{ProductID: "p1", Quantity: 2, UnitPrice: 3}})
}

func TestSave_EmptyStateIsEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mocks.NewMockCartSlot(ctrl)
	a := NewAdapter(slot, "", nil, noopLogger{}, 0)

	slot.EXPECT().Write(gomock.Any(), DefaultKey, []byte("[]")).Return(nil)
	a.Save(context.Background(), nil)
}

func TestSave_WriteError_IsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mocks.NewMockCartSlot(ctrl)
	a := NewAdapter(slot, "cart", nil, noopLogger{}, 0)

	slot.EXPECT().Write(gomock.Any(), "cart", gomock.Any()).Return(errors.New("quota exceeded"))

	// не паникует и ничего не возвращает
	a.Save(context.Background(), []domain.CartLine{{ProductID: "p1", Quantity: 1}})
}

func TestSave_IgnoresCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mocks.NewMockCartSlot(ctrl)
	a := NewAdapter(slot, "cart", nil, noopLogger{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slot.EXPECT().
		Write(gomock.Any(), "cart", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []byte) error {
			return ctx.Err()
		})

	a.Save(ctx, []domain.CartLine{{ProductID: "p1", Quantity: 1}})
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		err     error
		want    []string
	}{
		{name: "absent", payload: nil, want: []string{}},
		{name: "read error", err: errors.New("disk gone"), want: []string{}},
		{name: "garbage", payload: []byte("{not json"), want: []string{}},
		{name: "object instead of array", payload: []byte(`{"productId":"p1"}`), want: []string{}},
		{
			name:    "valid",
			payload: []byte(`[{"productId":"p1","unitPrice":1,"quantity":2},{"productId":"p2","unitPrice":1,"quantity":1}]`),
			want:    []string{"p1", "p2"},
		},
		{
			name: "drops invalid lines and collapses duplicates",
			payload: []byte(`[
				{"productId":"p1","unitPrice":1,"quantity":2},
				{"productId":"","unitPrice":1,"quantity":1},
				{"productId":"p2","unitPrice":-1,"quantity":1},
				{"productId":"p3","unitPrice":1,"quantity":0},
				{"productId":"p1","unitPrice":1,"quantity":5}
			]`),
			want: []string{"p1"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			slot := mocks.NewMockCartSlot(ctrl)
			slot.EXPECT().Read(gomock.Any(), "cart").Return(tc.payload, tc.err)

			a := NewAdapter(slot, "cart", validate.NewCartValidator(), noopLogger{}, 0)
			got := a.Load(context.Background())
			if got == nil {
				t.Fatalf("Load must never return nil")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %+v, want ids %v", got, tc.want)
			}
			for i, id := range tc.want {
				if got[i].ProductID != id {
					t.Fatalf("got %+v, want ids %v", got, tc.want)
				}
			}
		})
	}
}

func TestLoad_DuplicateKeepsLaterQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slot := mocks.NewMockCartSlot(ctrl)
	slot.EXPECT().Read(gomock.Any(), "cart").
		Return([]byte(`[{"productId":"p1","quantity":2},{"productId":"p2","quantity":1},{"productId":"p1","quantity":5}]`), nil)

	got := NewAdapter(slot, "cart", nil, noopLogger{}, 0).Load(context.Background())
	if len(got) != 2 || got[0].ProductID != "p1" || got[0].Quantity != 5 {
		t.Fatalf("unexpected lines: %+v", got)
	}
}
