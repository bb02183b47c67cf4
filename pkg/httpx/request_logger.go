package httpx

import (
	"net/http"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные пути, которые не логируем.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — одна строка на запрос; 5xx пишутся как WARN.
// request_id, trace_id и surface логгер берёт из контекста сам.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, quiet := quietPaths[path]; quiet {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		logf := log.Infof
		if c.Writer.Status() >= http.StatusInternalServerError {
			logf = log.Warnf
		}
		logf(c.Request.Context(),
			"request method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method, path, c.Writer.Status(), c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}
