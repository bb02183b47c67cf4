package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [min, max].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QueryBool — читает булев query-параметр; отсутствие или мусор дают def.
func QueryBool(c *gin.Context, key string, def bool) bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	if raw == "" {
		// ?wait без значения считаем включённым флагом
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// BearerToken — достаёт токен из заголовка Authorization: Bearer <token>.
func BearerToken(c *gin.Context) (string, bool) {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(h[7:])
	return token, token != ""
}
