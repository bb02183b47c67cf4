package ports

import (
	"context"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// RemoteCartGateway — единственный компонент, выполняющий сетевой I/O корзины.
// Каждая операция возвращает полный снимок корзины сервера.
// Ошибки: domain.ErrUnauthenticated, domain.ErrNetwork, *domain.ServerError.
type RemoteCartGateway interface {
	FetchCart(ctx context.Context, credential string) (*domain.ServerCartSnapshot, error)
	AddToServerCart(ctx context.Context, credential, productID string, quantity int, variant string) (*domain.ServerCartSnapshot, error)
	SetServerCartLine(ctx context.Context, credential, productID string, quantity int) (*domain.ServerCartSnapshot, error)
}
