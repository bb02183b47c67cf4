package rest

import (
	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// addItemRequest — тело POST /cart/items. Денормализованные поля необязательны.
type addItemRequest struct {
	ProductID string   `json:"productId" binding:"required"`
	Quantity  *int     `json:"quantity"`
	Variant   string   `json:"variant"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price" binding:"omitempty,gte=0"`
	Image     string   `json:"image"`
	Stock     *int     `json:"stock" binding:"omitempty,gte=0"`
}

func (r *addItemRequest) toDomain() domain.AddRequest {
	qty := 1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	return domain.AddRequest{
		ProductID: r.ProductID,
		Quantity:  qty,
		Variant:   r.Variant,
		Details: domain.LineDetails{
			Name:           r.Name,
			UnitPrice:      r.Price,
			ImageRef:       r.Image,
			AvailableStock: r.Stock,
		},
	}
}

// changeQuantityRequest — тело PUT /cart/items/:productId.
type changeQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// sessionRequest — тело POST /session.
type sessionRequest struct {
	Token string `json:"token" binding:"required"`
}

type mutationView struct {
	ID        string               `json:"id"`
	Kind      domain.MutationKind  `json:"kind"`
	ProductID string               `json:"productId,omitempty"`
	State     domain.MutationState `json:"state"`
	Error     string               `json:"error,omitempty"`
	ErrorKind string               `json:"errorKind,omitempty"`
}

// cartView — корзина с производными значениями.
type cartView struct {
	Items    []domain.CartLine `json:"items"`
	Totals   domain.CartTotals `json:"totals"`
	Mutation *mutationView     `json:"mutation,omitempty"`
}

func newCartView(lines []domain.CartLine) cartView {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartView{Items: lines, Totals: domain.Totals(lines)}
}

func newMutationView(m *domain.Mutation) *mutationView {
	v := &mutationView{
		ID:        m.ID,
		Kind:      m.Kind,
		ProductID: m.ProductID,
		State:     m.State(),
	}
	if err := m.Err(); err != nil {
		v.Error = err.Error()
		v.ErrorKind = domain.ErrorKind(err)
	}
	return v
}
