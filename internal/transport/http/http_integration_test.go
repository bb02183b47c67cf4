//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Yotrages/exquisite-wears/internal/domain"
	"github.com/Yotrages/exquisite-wears/internal/gateway/rest"
	"github.com/Yotrages/exquisite-wears/internal/notify"
	"github.com/Yotrages/exquisite-wears/internal/persist"
	fileslot "github.com/Yotrages/exquisite-wears/internal/repo/file"
	"github.com/Yotrages/exquisite-wears/internal/session"
	"github.com/Yotrages/exquisite-wears/internal/store/memory"
	"github.com/Yotrages/exquisite-wears/internal/testutil"
	transport "github.com/Yotrages/exquisite-wears/internal/transport/http"
	"github.com/Yotrages/exquisite-wears/internal/usecase"
	"github.com/Yotrages/exquisite-wears/pkg/logger"
	"github.com/Yotrages/exquisite-wears/pkg/validate"
)

const userToken = "user-1"

// agent — агент целиком поверх файлового слота и фейкового бэкенда.
type agent struct {
	ts      *httptest.Server
	syncer  *usecase.CartSynchronizer
	backend *testutil.FakeBackend
}

func startAgent(t *testing.T, dir string, backend *testutil.FakeBackend) *agent {
	t.Helper()

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	slot, err := fileslot.NewSlot(dir)
	require.NoError(t, err)
	adapter := persist.NewAdapter(slot, persist.DefaultKey, validate.NewCartValidator(), logg, time.Second)
	store := memory.NewCartStore(context.Background(), adapter)

	gw, err := rest.NewClient(rest.Config{BaseURL: backend.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	feed := notify.NewFeed(10, 0)
	syncer := usecase.NewCartSynchronizer(store, gw, feed, logg, usecase.SyncOptions{RequestTimeout: 2 * time.Second})
	t.Cleanup(func() { _ = syncer.Wait(context.Background()) })

	h := transport.NewHandler(syncer, feed, session.NewHolder(""), logg, 2*time.Second)
	ts := httptest.NewServer(transport.NewRouter(h, ""))
	t.Cleanup(ts.Close)

	return &agent{ts: ts, syncer: syncer, backend: backend}
}

func (a *agent) call(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Surface", "detail")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var got map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	}
	return resp.StatusCode, got
}

func quantities(t *testing.T, body map[string]any) map[string]int {
	t.Helper()
	out := map[string]int{}
	items, _ := body["items"].([]any)
	for _, it := range items {
		m := it.(map[string]any)
		out[m["productId"].(string)] = int(m["quantity"].(float64))
	}
	return out
}

// 1) Гостевая корзина заменяется серверной при открытии страницы корзины после входа
func TestHTTP_GuestThenLoginSync_TC(t *testing.T) {
	backend := testutil.NewFakeBackend(userToken)
	t.Cleanup(backend.Close)
	backend.SetCart(userToken, map[string]int{"P2": 1}, "P2")

	a := startAgent(t, t.TempDir(), backend)

	status, body := a.call(t, http.MethodPost, "/cart/items", map[string]any{"productId": "P1"}, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]int{"P1": 1}, quantities(t, body))
	require.Equal(t, int64(0), backend.Adds.Load())

	status, body = a.call(t, http.MethodPost, "/cart/sync", nil, userToken)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "reconciled", body["mutation"].(map[string]any)["state"])
	require.Equal(t, map[string]int{"P2": 1}, quantities(t, body))
}

// 2) Сервер ограничивает количество остатком; ?wait=true отдаёт сверенную корзину
func TestHTTP_AddWait_ServerClamp_TC(t *testing.T) {
	backend := testutil.NewFakeBackend(userToken)
	t.Cleanup(backend.Close)
	backend.SetStock("P1", 2)

	a := startAgent(t, t.TempDir(), backend)

	status, body := a.call(t, http.MethodPost, "/cart/items?wait=true", map[string]any{"productId": "P1", "quantity": 5}, userToken)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]int{"P1": 2}, quantities(t, body))
}

// 3) Сбой бэкенда: локальное изменение остаётся, уведомление попадает в ленту
func TestHTTP_BackendDown_NotificationFeed_TC(t *testing.T) {
	backend := testutil.NewFakeBackend(userToken)
	t.Cleanup(backend.Close)
	backend.FailNext(1, http.StatusServiceUnavailable)

	a := startAgent(t, t.TempDir(), backend)

	status, body := a.call(t, http.MethodPut, "/cart/items/X?wait=true", map[string]any{"quantity": 3}, userToken)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]int{"X": 3}, quantities(t, body))
	require.Equal(t, "abandoned", body["mutation"].(map[string]any)["state"])

	_, notes := a.call(t, http.MethodGet, "/notifications", nil, "")
	list := notes["notifications"].([]any)
	require.Len(t, list, 1)
	require.Equal(t, "Service temporarily unavailable", list[0].(map[string]any)["message"])
}

// 4) Просроченный токен: гостевой режим без уведомлений
func TestHTTP_ExpiredToken_NoNotification_TC(t *testing.T) {
	backend := testutil.NewFakeBackend(userToken)
	t.Cleanup(backend.Close)

	a := startAgent(t, t.TempDir(), backend)

	status, body := a.call(t, http.MethodPost, "/cart/items?wait=true", map[string]any{"productId": "P1"}, "expired")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]int{"P1": 1}, quantities(t, body))
	require.Equal(t, domain.KindUnauthenticated, body["mutation"].(map[string]any)["errorKind"])

	_, notes := a.call(t, http.MethodGet, "/notifications", nil, "")
	require.Empty(t, notes["notifications"])
}

// 5) Корзина переживает перезапуск агента (тот же каталог слота)
func TestHTTP_CartSurvivesRestart_TC(t *testing.T) {
	backend := testutil.NewFakeBackend(userToken)
	t.Cleanup(backend.Close)
	dir := t.TempDir()

	first := startAgent(t, dir, backend)
	first.call(t, http.MethodPost, "/cart/items", map[string]any{"productId": "A", "quantity": 2}, "")
	first.call(t, http.MethodPost, "/cart/items", map[string]any{"productId": "B"}, "")
	first.ts.Close()

	second := startAgent(t, dir, backend)
	status, body := second.call(t, http.MethodGet, "/cart", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]int{"A": 2, "B": 1}, quantities(t, body))
}

// 6) Выход не очищает корзину; DELETE /cart — очищает
func TestHTTP_LogoutKeepsCart_ClearEmpties_TC(t *testing.T) {
	backend := testutil.NewFakeBackend(userToken)
	t.Cleanup(backend.Close)
	a := startAgent(t, t.TempDir(), backend)

	status, _ := a.call(t, http.MethodPost, "/session", map[string]any{"token": userToken}, "")
	require.Equal(t, http.StatusNoContent, status)
	a.call(t, http.MethodPost, "/cart/items?wait=true", map[string]any{"productId": "P1"}, "")
	require.Equal(t, int64(1), backend.Adds.Load())

	status, _ = a.call(t, http.MethodDelete, "/session", nil, "")
	require.Equal(t, http.StatusNoContent, status)

	_, body := a.call(t, http.MethodGet, "/cart", nil, "")
	require.Equal(t, map[string]int{"P1": 1}, quantities(t, body))

	_, body = a.call(t, http.MethodDelete, "/cart", nil, "")
	require.Empty(t, quantities(t, body))
}
