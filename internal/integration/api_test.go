package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"stocksinfo/internal/bootstrap"

	"github.com/stretchr/testify/require"
)

// fakeIEX serves the two upstream endpoints and accepts only token abc123.
func fakeIEX(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var quoteCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/stable/stock/market/list/mostactive/quote", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "abc123" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `"Forbidden"`)
			return
		}
		_, _ = io.WriteString(w, `[
			{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":150},
			{"symbol":"AMD","companyName":"Advanced Micro Devices Inc."}
		]`)
	})
	mux.HandleFunc("/stable/stock/AAPL/quote", func(w http.ResponseWriter, r *http.Request) {
		quoteCalls.Add(1)
		if r.URL.Query().Get("token") != "abc123" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = io.WriteString(w, `{"companyName":"Apple Inc.","symbol":"AAPL","latestPrice":150.0,"change":-2.5,"changePercent":-0.0164}`)
	})
	mux.HandleFunc("/stable/stock/BAD/quote", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"companyName":"Bad","symbol":"BAD","latestPrice":0,"change":0,"changePercent":0}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &quoteCalls
}

func startAPI(t *testing.T, upstream, settingsPath string) http.Handler {
	t.Helper()
	t.Setenv("PROVIDER", "iexcloud")
	t.Setenv("IEX_BASE_URL", upstream+"/stable")
	t.Setenv("IEX_TOKEN", "")
	t.Setenv("SETTINGS_BACKEND", "leveldb")
	t.Setenv("SETTINGS_PATH", settingsPath)
	t.Setenv("LOG_LEVEL", "error")

	app, cleanup, err := bootstrap.InitAPI(context.Background())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return app.Handler
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, r))
	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func TestAPI_TokenRetryThenCachedQuote(t *testing.T) {
	upstream, quoteCalls := fakeIEX(t)
	dir := t.TempDir()

	h := startAPI(t, upstream.URL, dir)

	code, body := call(t, h, http.MethodGet, "/companies", "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "To work with this app you need to input token", body["title"])

	code, body = call(t, h, http.MethodPut, "/token", `{"token":"abc123"}`)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["companies"], 2)

	code, body = call(t, h, http.MethodGet, "/quotes/AAPL", "")
	require.Equal(t, http.StatusOK, code)
	display := body["display"].(map[string]any)
	require.Equal(t, "150 USD", display["price"])
	require.Equal(t, "-2.5 (1.64%)↓", display["change"])

	code, _ = call(t, h, http.MethodGet, "/quotes/AAPL", "")
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, quoteCalls.Load())

	code, body = call(t, h, http.MethodGet, "/quotes/BAD", "")
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, "Invalid JSON!", body["title"])
}

func TestAPI_RestartRestoresCacheAndToken(t *testing.T) {
	upstream, quoteCalls := fakeIEX(t)
	dir := t.TempDir()

	t.Run("first process", func(t *testing.T) {
		h := startAPI(t, upstream.URL, dir)
		code, _ := call(t, h, http.MethodPut, "/token", `{"token":"abc123"}`)
		require.Equal(t, http.StatusOK, code)
		code, _ = call(t, h, http.MethodGet, "/quotes/AAPL", "")
		require.Equal(t, http.StatusOK, code)
	})

	h := startAPI(t, upstream.URL, dir)
	code, body := call(t, h, http.MethodGet, "/state", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "listing", body["state"])
	require.Equal(t, true, body["tokenSet"])

	code, _ = call(t, h, http.MethodGet, "/quotes/AAPL", "")
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, quoteCalls.Load())

	code, _ = call(t, h, http.MethodDelete, "/quotes", "")
	require.Equal(t, http.StatusNoContent, code)
	code, body = call(t, h, http.MethodGet, "/state", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "empty", body["state"])
}
