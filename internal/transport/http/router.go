package rest

import (
	"net/http"

	"github.com/Yotrages/exquisite-wears/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — gin-роутер поверхностей корзины.
// serviceName пустой — без otelgin (тесты).
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(
		httpx.RequestIDMiddleware(),
		httpx.SurfaceMiddleware(),
		httpx.RequestLogger(h.log),
		gin.Recovery(),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cart := r.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.DELETE("", h.clearCart)
		cart.POST("/items", h.addItem)
		cart.PUT("/items/:productId", h.changeQuantity)
		cart.DELETE("/items/:productId", h.removeItem)
		cart.POST("/sync", h.syncCart)
	}

	r.GET("/notifications", h.drainNotifications)

	r.POST("/session", h.login)
	r.DELETE("/session", h.logout)

	return r
}
