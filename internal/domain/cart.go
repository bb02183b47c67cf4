package domain

// CartLine — одна позиция корзины (товар и его количество).
// Поля Name/UnitPrice/ImageRef денормализованы из данных товара на момент add/sync
// и могут устаревать между синхронизациями.
type CartLine struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name,omitempty"`
	UnitPrice      float64 `json:"unitPrice"`
	ImageRef       string  `json:"imageRef,omitempty"`
	Quantity       int     `json:"quantity"`
	AvailableStock *int    `json:"availableStock,omitempty"` // подсказка для UI, синхронизатором не применяется
}

// LineDetails — денормализованные поля, которые можно явно передать в SetQuantity.
// Пустое значение поля означает «не менять».
type LineDetails struct {
	Name           string
	UnitPrice      *float64
	ImageRef       string
	AvailableStock *int
}

// Apply — переносит явно заданные поля в позицию.
func (d *LineDetails) Apply(line *CartLine) {
	if d == nil || line == nil {
		return
	}
	if d.Name != "" {
		line.Name = d.Name
	}
	if d.UnitPrice != nil {
		line.UnitPrice = *d.UnitPrice
	}
	if d.ImageRef != "" {
		line.ImageRef = d.ImageRef
	}
	if d.AvailableStock != nil {
		stock := *d.AvailableStock
		line.AvailableStock = &stock
	}
}

// Clone — глубокая копия позиции.
func (l CartLine) Clone() CartLine {
	if l.AvailableStock != nil {
		stock := *l.AvailableStock
		l.AvailableStock = &stock
	}
	return l
}

// CloneLines — копия набора позиций; nil/пусто -> пустой срез (не nil), чтобы в JSON был [].
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for i := range lines {
		out = append(out, lines[i].Clone())
	}
	return out
}

// IndexOf — позиция товара в наборе или -1.
func IndexOf(lines []CartLine, productID string) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// CartTotals — производные значения корзины для отображения.
type CartTotals struct {
	Lines    int     `json:"lines"`
	Items    int     `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// Totals — считает количество позиций, штук и сумму по текущим ценам.
func Totals(lines []CartLine) CartTotals {
	var t CartTotals
	for i := range lines {
		t.Lines++
		t.Items += lines[i].Quantity
		t.Subtotal += lines[i].UnitPrice * float64(lines[i].Quantity)
	}
	return t
}

// AddRequest — запрос поверхности на добавление товара.
type AddRequest struct {
	ProductID string
	Quantity  int
	Variant   string
	Details   LineDetails
}

// Line — позиция, которую добавление создаёт локально.
func (r AddRequest) Line() CartLine {
	line := CartLine{ProductID: r.ProductID, Quantity: r.Quantity}
	r.Details.Apply(&line)
	return line
}
