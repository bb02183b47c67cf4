package httpx

import (
	"github.com/Yotrages/exquisite-wears/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — сквозной id запроса.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen — длиннее считаем мусором и заменяем своим.
const maxRequestIDLen = 128

// RequestIDMiddleware — берёт X-Request-ID клиента или генерирует UUID,
// кладёт его в контекст и возвращает в ответе.
// Чужой id принимается только из печатных ASCII-символов: он попадает в логи.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
