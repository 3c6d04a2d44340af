package runner

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/projectdiscovery/phishcheck"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, rps int) http.Handler {
	t.Helper()
	a, err := phishcheck.New(nil)
	require.NoError(t, err)
	return newServer(a, rps).routes()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzePost(t *testing.T) {
	h := newTestServer(t, 0)
	rec := do(h, http.MethodPost, "/analyze", `{"url":"http://www.paypal-login-secure-verify.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "MALICIOUS", got["label"])
	require.EqualValues(t, 0, got["prediction"])
	require.Equal(t, "http://www.paypal-login-secure-verify.com", got["url"])
}

func TestAnalyzeGet(t *testing.T) {
	h := newTestServer(t, 0)
	rec := do(h, http.MethodGet, "/analyze?url="+url.QueryEscape("https://en.wikipedia.org/wiki/Phishing"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got phishcheck.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, phishcheck.Safe, got.Label)
	require.Equal(t, 1, got.Prediction)
}

func TestAnalyzeErrors(t *testing.T) {
	h := newTestServer(t, 0)
	testcases := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{name: "blank url", method: http.MethodPost, target: "/analyze", body: `{"url":"  "}`, status: http.StatusBadRequest},
		{name: "missing url", method: http.MethodGet, target: "/analyze", status: http.StatusBadRequest},
		{name: "bad json", method: http.MethodPost, target: "/analyze", body: `{"url":`, status: http.StatusBadRequest},
		{name: "bad method", method: http.MethodPut, target: "/analyze", body: `{}`, status: http.StatusMethodNotAllowed},
	}
	for _, v := range testcases {
		t.Run(v.name, func(t *testing.T) {
			rec := do(h, v.method, v.target, v.body)
			require.Equal(t, v.status, rec.Code)
			var got errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.NotEmpty(t, got.Error)
		})
	}

	rec := do(h, http.MethodPost, "/analyze", `{"url":""}`)
	require.Contains(t, rec.Body.String(), "no url provided")
}

func TestAnalyzeRateLimit(t *testing.T) {
	h := newTestServer(t, 1)
	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/analyze?url=example.com", "").Code)
	require.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/analyze?url=example.com", "").Code)
}

func TestHealthz(t *testing.T) {
	rec := do(newTestServer(t, 0), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
