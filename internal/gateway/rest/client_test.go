package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/api/", Timeout: 2 * time.Second, UserAgent: "cart-agent/test"},
		WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, srv
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "  "}); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}

func TestFetchCart_PopulatedAndBareRefs(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/cart" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "cart-agent/test" {
			t.Errorf("User-Agent = %q", got)
		}
		_, _ = io.WriteString(w, `{"items":[
			{"product":{"_id":"p1","name":"Shirt","price":20.5,"image":"s.jpg","quantity":4},"quantity":2},
			{"product":"p2","quantity":1}
		]}`)
	})

	snap, err := c.FetchCart(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	lines := snap.Lines()
	if len(lines) != 2 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	if lines[0].ProductID != "p1" || lines[0].Name != "Shirt" || lines[0].UnitPrice != 20.5 ||
		lines[0].AvailableStock == nil || *lines[0].AvailableStock != 4 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected populated line: %+v", lines[0])
	}
	if lines[1].ProductID != "p2" || lines[1].Quantity != 1 || lines[1].Name != "" {
		t.Fatalf("unexpected bare line: %+v", lines[1])
	}
}

func TestAddToServerCart_SendsBodyAndParsesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart/add" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["productId"] != "p1" || body["quantity"] != float64(3) || body["variant"] != "XL" {
			t.Errorf("unexpected body: %v", body)
		}
		_, _ = io.WriteString(w, `{"cart":{"items":[{"product":{"_id":"p1","name":"Shirt","price":1},"quantity":3}]}}`)
	})

	snap, err := c.AddToServerCart(context.Background(), "tok", "p1", 3, "XL")
	if err != nil {
		t.Fatalf("AddToServerCart: %v", err)
	}
	if lines := snap.Lines(); len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("unexpected snapshot: %+v", lines)
	}
}

func TestSetServerCartLine_ZeroIsPassedThrough(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/cart/update" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["productId"] != "p1" || body["quantity"] != float64(0) {
			t.Errorf("unexpected body: %v", body)
		}
		if _, ok := body["variant"]; ok {
			t.Errorf("variant must be omitted on update: %v", body)
		}
		_, _ = io.WriteString(w, `{"cart":{"items":[]}}`)
	})

	snap, err := c.SetServerCartLine(context.Background(), "tok", "p1", 0)
	if err != nil {
		t.Fatalf("SetServerCartLine: %v", err)
	}
	if lines := snap.Lines(); lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty non-nil lines, got %v", lines)
	}
}

func TestEmptyCredential_NoNetworkCall(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	if _, err := c.FetchCart(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if called {
		t.Fatalf("gateway must not call the backend without credential")
	}
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    string
		message string
	}{
		{"401", http.StatusUnauthorized, `{"message":"jwt expired"}`, domain.KindUnauthenticated, ""},
		{"403", http.StatusForbidden, ``, domain.KindUnauthenticated, ""},
		{"400 with message", http.StatusBadRequest, `{"message":"Only 2 left in stock"}`, domain.KindServer, "Only 2 left in stock"},
		{"404 with error field", http.StatusNotFound, `{"error":"product not found"}`, domain.KindServer, "product not found"},
		{"500 plain text", http.StatusInternalServerError, `boom`, domain.KindServer, "boom"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := c.FetchCart(context.Background(), "tok")
			if got := domain.ErrorKind(err); got != tc.kind {
				t.Fatalf("kind = %q, want %q (err=%v)", got, tc.kind, err)
			}
			if got := domain.ServerMessage(err); got != tc.message {
				t.Fatalf("message = %q, want %q", got, tc.message)
			}
		})
	}
}

func TestMalformedBody_IsServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>maintenance</html>`)
	})
	_, err := c.FetchCart(context.Background(), "tok")
	if !errors.Is(err, domain.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
}

// Удалённый товар (product: null) или чужая форма ссылки пропускаются, остальная корзина сверяется.
func TestFetchCart_UnusableProductRefsSkipped(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"items":[
			{"product":null,"quantity":1},
			{"product":{"_id":"P2","name":"Dress","price":49.5},"quantity":2},
			{"product":42,"quantity":1},
			{"product":"P3","quantity":1}
		]}`)
	})

	snap, err := c.FetchCart(context.Background(), "tok")
	if err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	lines := snap.Lines()
	if len(lines) != 2 || lines[0].ProductID != "P2" || lines[0].Quantity != 2 || lines[1].ProductID != "P3" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestTransportFailure_IsNetworkError(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv.Close() // соединение будет отклонено

	_, err := c.FetchCart(context.Background(), "tok")
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestTimeout_IsNetworkError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.FetchCart(ctx, "tok")
	if domain.ErrorKind(err) != domain.KindNetwork {
		t.Fatalf("expected network kind, got %q (%v)", domain.ErrorKind(err), err)
	}
}
