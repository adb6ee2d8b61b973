package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.Handler) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	cfg := &Config{
		APIBaseURL:  srv.URL,
		Timeout:     5 * time.Second,
		SessionFile: filepath.Join(t.TempDir(), "session.yaml"),
	}
	return New(cfg, &out), &out
}

func TestRunUnknownCommand(t *testing.T) {
	a, out := newTestApp(t, http.NotFoundHandler())
	err := a.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
	assert.Contains(t, out.String(), "Usage: forkful")
}

func TestRunHelp(t *testing.T) {
	a, out := newTestApp(t, http.NotFoundHandler())
	require.NoError(t, a.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "cart set <menu-item-id> <qty>")
}

func TestCartWithoutSession(t *testing.T) {
	requests := 0
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	require.NoError(t, a.Run(context.Background(), []string{"cart"}))
	assert.Contains(t, out.String(), "Please log in to view your cart.")
	assert.Zero(t, requests, "no request without a session")
}

// requireMethod reproduces the method-qualified mux patterns ("POST /login")
// of Go 1.22+ on the Go 1.21 ServeMux, which has no method syntax.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func TestLoginThenCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", requireMethod(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1"}}`))
	}))
	mux.HandleFunc("/cart/u1", requireMethod(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"_id": "line-1",
				"menuItem": {"_id": "m1", "name": "Margherita", "price": 10.00},
				"price": 10.00,
				"quantity": 3
			}],
			"total": 30.00
		}`))
	}))

	a, out := newTestApp(t, mux)
	ctx := context.Background()
	require.NoError(t, a.Run(ctx, []string{"login", "ada@example.com", "pw"}))
	assert.Contains(t, out.String(), "u1")

	out.Reset()
	require.NoError(t, a.Run(ctx, []string{"cart"}))
	assert.Contains(t, out.String(), "Margherita")
	assert.Contains(t, out.String(), "Total:        $32.99")
}

func TestCartSetRejectsLowQuantityLocally(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/login", requireMethod(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1"}}`))
	}))
	mux.HandleFunc("/cart/u1/update", requireMethod(http.MethodPut, func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	a, _ := newTestApp(t, mux)
	ctx := context.Background()
	require.NoError(t, a.Run(ctx, []string{"login", "ada@example.com", "pw"}))

	err := a.Run(ctx, []string{"cart", "set", "m1", "0"})
	require.Error(t, err)
	assert.Zero(t, requests, "quantity below one is rejected before any request")
}

func TestLogoutClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", requireMethod(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"_id":"u1"}}`))
	}))

	a, out := newTestApp(t, mux)
	ctx := context.Background()
	require.NoError(t, a.Run(ctx, []string{"login", "ada@example.com", "pw"}))
	require.NoError(t, a.Run(ctx, []string{"logout"}))

	out.Reset()
	require.NoError(t, a.Run(ctx, []string{"cart"}))
	assert.Contains(t, out.String(), "Please log in")
}
