package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

// FakeBackend — имитация REST-бэкенда корзины для тестов шлюза, роутера и консьюмера.
// Корзина хранится по токену; ответы — полный снимок в форме {"cart":{"items":[...]}}.
type FakeBackend struct {
	*httptest.Server

	mu      sync.Mutex
	tokens  map[string]struct{}
	carts   map[string][]fakeItem
	stock   map[string]int
	failing int // сколько следующих запросов ответить failStatus
	failSt  int

	Fetches atomic.Int64
	Adds    atomic.Int64
	Updates atomic.Int64
}

type fakeItem struct {
	ProductID string `json:"-"`
	Quantity  int    `json:"quantity"`
}

// NewFakeBackend — запускает сервер; токены из списка считаются действительными.
func NewFakeBackend(tokens ...string) *FakeBackend {
	b := &FakeBackend{
		tokens: make(map[string]struct{}, len(tokens)),
		carts:  make(map[string][]fakeItem),
		stock:  make(map[string]int),
	}
	for _, t := range tokens {
		b.tokens[t] = struct{}{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", b.handleFetch)
	mux.HandleFunc("POST /cart/add", b.handleAdd)
	mux.HandleFunc("PUT /cart/update", b.handleUpdate)
	b.Server = httptest.NewServer(mux)
	return b
}

// SetCart — задать серверную корзину пользователя.
func (b *FakeBackend) SetCart(token string, quantities map[string]int, order ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]fakeItem, 0, len(order))
	for _, id := range order {
		items = append(items, fakeItem{ProductID: id, Quantity: quantities[id]})
	}
	b.carts[token] = items
}

// SetStock — ограничить количество товара остатком (сервер «зажимает» add/update).
func (b *FakeBackend) SetStock(productID string, n int) {
	b.mu.Lock()
	b.stock[productID] = n
	b.mu.Unlock()
}

// FailNext — следующие n запросов получат status.
func (b *FakeBackend) FailNext(n, status int) {
	b.mu.Lock()
	b.failing, b.failSt = n, status
	b.mu.Unlock()
}

func (b *FakeBackend) handleFetch(w http.ResponseWriter, r *http.Request) {
	b.Fetches.Add(1)
	token, ok := b.begin(w, r)
	if !ok {
		return
	}
	b.writeCart(w, token)
}

func (b *FakeBackend) handleAdd(w http.ResponseWriter, r *http.Request) {
	b.Adds.Add(1)
	token, ok := b.begin(w, r)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	b.mu.Lock()
	items := b.carts[token]
	found := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity = b.clampLocked(req.ProductID, items[i].Quantity+req.Quantity)
			found = true
		}
	}
	if !found {
		items = append(items, fakeItem{ProductID: req.ProductID, Quantity: b.clampLocked(req.ProductID, req.Quantity)})
	}
	b.carts[token] = items
	b.mu.Unlock()

	b.writeCart(w, token)
}

func (b *FakeBackend) handleUpdate(w http.ResponseWriter, r *http.Request) {
	b.Updates.Add(1)
	token, ok := b.begin(w, r)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	b.mu.Lock()
	items := b.carts[token][:0:0]
	replaced := false
	for _, it := range b.carts[token] {
		if it.ProductID == req.ProductID {
			replaced = true
			if req.Quantity < 1 {
				continue
			}
			it.Quantity = b.clampLocked(it.ProductID, req.Quantity)
		}
		items = append(items, it)
	}
	if !replaced && req.Quantity > 0 {
		items = append(items, fakeItem{ProductID: req.ProductID, Quantity: b.clampLocked(req.ProductID, req.Quantity)})
	}
	b.carts[token] = items
	b.mu.Unlock()

	b.writeCart(w, token)
}

// begin — проверка токена и заданных сбоев.
func (b *FakeBackend) begin(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failing > 0 {
		b.failing--
		writeJSON(w, b.failSt, map[string]string{"message": "Service temporarily unavailable"})
		return "", false
	}
	if _, ok := b.tokens[token]; !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authorized"})
		return "", false
	}
	return token, true
}

func (b *FakeBackend) clampLocked(productID string, qty int) int {
	if limit, ok := b.stock[productID]; ok && qty > limit {
		return limit
	}
	return qty
}

func (b *FakeBackend) writeCart(w http.ResponseWriter, token string) {
	type product struct {
		ID    string  `json:"_id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	type item struct {
		Product  product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	b.mu.Lock()
	items := make([]item, 0, len(b.carts[token]))
	for _, it := range b.carts[token] {
		items = append(items, item{
			Product:  product{ID: it.ProductID, Name: "Product " + it.ProductID, Price: 10},
			Quantity: it.Quantity,
		})
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"cart": map[string]any{"items": items}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
