package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/ports"
	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Проверка, что Client удовлетворяет интерфейсу RemoteCartGateway.
var _ ports.RemoteCartGateway = (*Client)(nil)

// maxBodyBytes — предел чтения ответа бэкенда.
const maxBodyBytes = 4 << 20

// Config — параметры REST-бэкенда корзины.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client — шлюз к эндпоинтам корзины бэкенда: GET /cart, POST /cart/add, PUT /cart/update.
// Бизнес-логики нет: запрос, разбор полного снимка, классификация ошибок.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option — настройка клиента.
type Option func(*Client)

// WithHTTPClient — подменить http.Client (тесты, свой транспорт).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient — конструктор. Транспорт обёрнут otelhttp: каждый вызов бэкенда — отдельный спан.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:   base,
		userAgent: cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// lineRequest — тело POST /cart/add и PUT /cart/update.
type lineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
}

// cartEnvelope — GET /cart отдаёт {items}, мутации — {cart:{items}}; принимаем оба вида.
type cartEnvelope struct {
	Items []domain.ServerCartItem    `json:"items"`
	Cart  *domain.ServerCartSnapshot `json:"cart"`
}

// FetchCart — авторитетная корзина текущего пользователя.
func (c *Client) FetchCart(ctx context.Context, credential string) (*domain.ServerCartSnapshot, error) {
	return c.do(ctx, "fetch", http.MethodGet, "/cart", credential, nil)
}

// AddToServerCart — увеличить (или создать) позицию на сервере.
func (c *Client) AddToServerCart(ctx context.Context, credential, productID string, quantity int, variant string) (*domain.ServerCartSnapshot, error) {
	return c.do(ctx, "add", http.MethodPost, "/cart/add", credential,
		&lineRequest{ProductID: productID, Quantity: quantity, Variant: variant})
}

// SetServerCartLine — установить количество; 0 означает удаление по контракту сервера.
func (c *Client) SetServerCartLine(ctx context.Context, credential, productID string, quantity int) (*domain.ServerCartSnapshot, error) {
	return c.do(ctx, "set", http.MethodPut, "/cart/update", credential,
		&lineRequest{ProductID: productID, Quantity: quantity})
}

func (c *Client) do(ctx context.Context, op, method, path, credential string, body any) (snap *domain.ServerCartSnapshot, err error) {
	start := time.Now()
	defer func() {
		metrics.RemoteLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = domain.ErrorKind(err)
		}
		metrics.RemoteRequests.WithLabelValues(op, outcome).Inc()
	}()

	// без учётных данных сеть не трогаем
	if strings.TrimSpace(credential) == "" {
		return nil, domain.ErrUnauthenticated
	}

	var reader io.Reader
	if body != nil {
		raw, mErr := json.Marshal(body)
		if mErr != nil {
			return nil, fmt.Errorf("marshal %s request: %w", op, mErr)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewNetworkError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseErrorResponse(resp.StatusCode, respBody)
	}
	return decodeSnapshot(respBody)
}

func decodeSnapshot(body []byte) (*domain.ServerCartSnapshot, error) {
	var env cartEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.ServerError{StatusCode: http.StatusOK, Message: "malformed cart response: " + err.Error()}
	}
	if env.Cart != nil {
		return env.Cart, nil
	}
	return &domain.ServerCartSnapshot{Items: env.Items}, nil
}
