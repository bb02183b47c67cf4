package httpx

import (
	"strings"

	"github.com/Yotrages/exquisite-wears/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// SurfaceHeader — заголовок, которым UI сообщает, с какой поверхности пришла операция.
const SurfaceHeader = "X-Cart-Surface"

// UnknownSurface — значение для отсутствующего или неизвестного заголовка.
const UnknownSurface = "unknown"

var knownSurfaces = map[string]struct{}{
	"grid":            {},
	"detail":          {},
	"carousel":        {},
	"wishlist":        {},
	"search":          {},
	"recommendations": {},
	"cart":            {},
}

// NormalizeSurface — приводит значение заголовка к известной поверхности или unknown.
func NormalizeSurface(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := knownSurfaces[s]; ok {
		return s
	}
	return UnknownSurface
}

// SurfaceMiddleware — кладёт нормализованную поверхность в контекст запроса.
func SurfaceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		surface := NormalizeSurface(c.GetHeader(SurfaceHeader))
		c.Request = c.Request.WithContext(ctxmeta.WithSurface(c.Request.Context(), surface))
		c.Next()
	}
}

// Surface — поверхность текущего запроса (unknown, если middleware не подключён).
func Surface(c *gin.Context) string {
	if s, ok := ctxmeta.SurfaceFromContext(c.Request.Context()); ok {
		return s
	}
	return UnknownSurface
}
