package ports

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// CartSyncService — публичные операции синхронизатора, доступные поверхностям.
// Операции не возвращают ошибок: результат отражается в *domain.Mutation.
type CartSyncService interface {
	AddProduct(ctx context.Context, req domain.AddRequest, credential string) *domain.Mutation
	ChangeQuantity(ctx context.Context, productID string, quantity int, credential string) *domain.Mutation
	SyncFromServer(ctx context.Context, credential string) *domain.Mutation

	// ClearLocal — явная очистка после оформления заказа (не операция поверхностей).
	ClearLocal(ctx context.Context) []domain.CartLine
	// Snapshot — корзина только для чтения.
	Snapshot(ctx context.Context) []domain.CartLine
}

// CredentialSource — текущие учётные данные клиента (если вошёл).
type CredentialSource interface {
	Current() (string, bool)
}

// CartEventHandler — обработка событий корзины из брокера.
type CartEventHandler interface {
	HandleCartEvent(ctx context.Context, raw []byte) error
}

// SessionStore — учётные данные, которыми управляет сам агент (вход/выход).
type SessionStore interface {
	CredentialSource
	Set(token string)
	Clear()
}
