// Пакет ctxmeta — метаданные операции с корзиной, которые едут через context.Context:
// request_id HTTP-запроса, поверхность UI и id мутации для фоновых запросов к бэкенду.
// HTTP-слой, синхронизатор и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID  ctxKey = "request_id"
	KeySurface    ctxKey = "surface"
	KeyMutationID ctxKey = "mutation_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyRequestID)
}

// WithSurface кладёт в контекст поверхность UI, инициировавшую операцию с корзиной
// (grid, detail, carousel, wishlist, search, recommendations, cart).
func WithSurface(ctx context.Context, surface string) context.Context {
	return withString(ctx, KeySurface, surface)
}

func SurfaceFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeySurface)
}

// WithMutationID — id мутации, к которой относится фоновый запрос.
// Логи удалённого вызова и сверки связываются с ответом HTTP API по этому id.
func WithMutationID(ctx context.Context, id string) context.Context {
	return withString(ctx, KeyMutationID, id)
}

func MutationIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyMutationID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
