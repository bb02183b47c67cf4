package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/internal/usecase"
	"github.com/Yotrages/exquisite-wears/pkg/httpx"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Handler — HTTP-обработчики поверхностей (сетка, карточка, карусель, избранное, поиск, корзина).
type Handler struct {
	service        ports.CartSyncService
	feed           ports.NotificationFeed
	session        ports.SessionStore
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewHandler — DI-конструктор. handlerTimeout ограничивает ожидание сверки (?wait, /cart/sync).
func NewHandler(
	service ports.CartSyncService,
	feed ports.NotificationFeed,
	session ports.SessionStore,
	log ports.Logger,
	handlerTimeout time.Duration,
) *Handler {
	if handlerTimeout <= 0 {
		handlerTimeout = 3 * time.Second
	}
	return &Handler{
		service:        service,
		feed:           feed,
		session:        session,
		log:            log,
		handlerTimeout: handlerTimeout,
	}
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, newCartView(h.service.Snapshot(c.Request.Context())))
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be >= 1"})
		return
	}

	h.countSurface(c, "add")
	m := h.service.AddProduct(c.Request.Context(), req.toDomain(), h.credential(c))
	h.respondMutation(c, m, httpx.QueryBool(c, "wait", false))
}

func (h *Handler) changeQuantity(c *gin.Context) {
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty productId"})
		return
	}
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	h.countSurface(c, "change")
	m := h.service.ChangeQuantity(c.Request.Context(), productID, *req.Quantity, h.credential(c))
	h.respondMutation(c, m, httpx.QueryBool(c, "wait", false))
}

func (h *Handler) removeItem(c *gin.Context) {
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty productId"})
		return
	}

	h.countSurface(c, "remove")
	m := h.service.ChangeQuantity(c.Request.Context(), productID, 0, h.credential(c))
	h.respondMutation(c, m, httpx.QueryBool(c, "wait", false))
}

// syncCart — монтирование страницы корзины: сверка всегда с ожиданием.
func (h *Handler) syncCart(c *gin.Context) {
	h.countSurface(c, "sync")
	m := h.service.SyncFromServer(c.Request.Context(), h.credential(c))
	h.respondMutation(c, m, true)
}

func (h *Handler) clearCart(c *gin.Context) {
	lines := h.service.ClearLocal(c.Request.Context())
	c.JSON(http.StatusOK, newCartView(lines))
}

func (h *Handler) drainNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.feed.Drain()})
}

// login — запомнить токен; корзина не меняется до следующей сверки.
func (h *Handler) login(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	h.session.Set(req.Token)
	h.log.Infof(c.Request.Context(), "session started")
	c.Status(http.StatusNoContent)
}

// logout — забыть токен; локальная корзина остаётся.
func (h *Handler) logout(c *gin.Context) {
	h.session.Clear()
	h.log.Infof(c.Request.Context(), "session cleared, local cart kept")
	c.Status(http.StatusNoContent)
}

// ---- вспомогательные ----

// credential — Authorization: Bearer важнее токена сессии агента.
func (h *Handler) credential(c *gin.Context) string {
	if token, ok := httpx.BearerToken(c); ok {
		return token
	}
	if token, ok := h.session.Current(); ok {
		return token
	}
	return ""
}

func (h *Handler) countSurface(c *gin.Context, op string) {
	metrics.SurfaceRequests.WithLabelValues(httpx.Surface(c), op).Inc()
}

// respondMutation — 400 для отклонённого запроса, 200 для завершённой мутации,
// 202 пока ответ бэкенда не пришёл.
func (h *Handler) respondMutation(c *gin.Context, m *domain.Mutation, wait bool) {
	if wait {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.handlerTimeout)
		m.Wait(ctx)
		cancel()
	}

	if errors.Is(m.Err(), usecase.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": m.Err().Error()})
		return
	}

	status := http.StatusAccepted
	select {
	case <-m.Done():
		status = http.StatusOK
	default:
	}

	view := newCartView(m.Snapshot())
	view.Mutation = newMutationView(m)
	c.JSON(status, view)
}
