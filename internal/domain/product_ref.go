package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidProductRef — ссылка на товар в ответе сервера не распознана.
var ErrInvalidProductRef = errors.New("invalid product reference")

// ProductSummary — «заполненный» товар из ответа сервера.
type ProductSummary struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity *int    `json:"quantity,omitempty"` // остаток на складе
}

// ProductRef — размеченное объединение: либо только идентификатор, либо заполненный товар.
// Сервер отдаёт то одно, то другое в поле items[].product.
type ProductRef struct {
	id      string
	summary *ProductSummary
}

// RefByID — ссылка только по идентификатору.
func RefByID(id string) ProductRef { return ProductRef{id: id} }

// RefPopulated — ссылка с заполненным товаром.
func RefPopulated(s ProductSummary) ProductRef {
	return ProductRef{id: s.ID, summary: &s}
}

// ID — идентификатор товара независимо от варианта.
func (r ProductRef) ID() string { return r.id }

// Populated — сужение к заполненному варианту.
func (r ProductRef) Populated() (ProductSummary, bool) {
	if r.summary == nil {
		return ProductSummary{}, false
	}
	return *r.summary, true
}

// UnmarshalJSON — строка -> RefByID, объект -> RefPopulated, остальное — ошибка.
func (r *ProductRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidProductRef
	}
	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidProductRef, err)
		}
		*r = RefByID(id)
		return nil
	case '{':
		var s ProductSummary
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidProductRef, err)
		}
		*r = RefPopulated(s)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidProductRef, string(data))
	}
}

// MarshalJSON — обратное преобразование (используется в тестах и фейковых бэкендах).
func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.summary != nil {
		return json.Marshal(r.summary)
	}
	return json.Marshal(r.id)
}
