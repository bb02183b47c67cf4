package domain

import "encoding/json"

// ServerCartItem — позиция корзины в ответе бэкенда.
type ServerCartItem struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}

// UnmarshalJSON — нераспознанная ссылка на товар (null после удаления товара, число, массив)
// не ломает разбор всей корзины: позиция остаётся без идентификатора и отбрасывается в Lines.
func (it *ServerCartItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Product  json.RawMessage `json:"product"`
		Quantity int             `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = ServerCartItem{Quantity: raw.Quantity}
	if len(raw.Product) == 0 {
		return nil
	}
	var ref ProductRef
	if err := ref.UnmarshalJSON(raw.Product); err == nil {
		it.Product = ref
	}
	return nil
}

// ServerCartSnapshot — полная корзина, как её видит сервер после любой операции.
type ServerCartSnapshot struct {
	Items []ServerCartItem `json:"items"`
}

// Lines — отображает снимок сервера в позиции локальной корзины.
// Позиции без идентификатора или с количеством < 1 пропускаются.
func (s *ServerCartSnapshot) Lines() []CartLine {
	if s == nil {
		return []CartLine{}
	}
	lines := make([]CartLine, 0, len(s.Items))
	for _, it := range s.Items {
		id := it.Product.ID()
		if id == "" || it.Quantity < 1 {
			continue
		}
		line := CartLine{ProductID: id, Quantity: it.Quantity}
		if p, ok := it.Product.Populated(); ok {
			line.Name = p.Name
			line.UnitPrice = p.Price
			line.ImageRef = p.Image
			if p.Quantity != nil {
				stock := *p.Quantity
				line.AvailableStock = &stock
			}
		}
		lines = append(lines, line)
	}
	return lines
}
