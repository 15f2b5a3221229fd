package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMatchWildcardRoute(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/runs/abc", "/api/v1/runs/*", true},
		{"/api/v1/runs/abc/extra", "/api/v1/runs/*", true},
		{"/api/v1/stats/abc", "/api/v1/runs/*", false},
		{"/swagger/index.html", "/swagger/*", true},
		{"/api/v1/runs/abc/warnings", "/api/v1/runs/*/warnings", true},
		{"/api/v1/runs/abc/stats", "/api/v1/runs/*/warnings", false},
		{"/api/v1/runs", "/api/v1/runs/*/warnings", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchWildcardRoute(tt.path, tt.pattern), "%s ~ %s", tt.path, tt.pattern)
	}
}

func TestRouter(t *testing.T) {
	r := New(zaptest.NewLogger(t))
	r.GET("/ping", func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "pong") })
	r.GET("/items/*/detail", func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "detail") })
	r.GET("/items/*", func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "item") })
	r.register(http.MethodPost, "/items/*", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/ping", http.StatusOK, "pong"},
		{http.MethodGet, "/items/1/detail", http.StatusOK, "detail"},
		{http.MethodGet, "/items/1", http.StatusOK, "item"},
		{http.MethodPost, "/items/1", http.StatusCreated, ""},
		{http.MethodPost, "/ping", http.StatusMethodNotAllowed, "Method Not Allowed\n"},
		{http.MethodDelete, "/items/1", http.StatusMethodNotAllowed, "Method Not Allowed\n"},
		{http.MethodGet, "/missing", http.StatusNotFound, "Not Found\n"},
	}
	client := srv.Client()
	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, tt.status, resp.StatusCode, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.body, string(body), "%s %s", tt.method, tt.path)
	}
	client.CloseIdleConnections()

	assert.Len(t, r.routes, 4)
	assert.Len(t, r.paths, 3)
}
