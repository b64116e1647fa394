package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const indexBody = `[
	{"name": "@scope/server-a", "runtime": "node", "vendor": "scope"},
	{"name": "mcp-server-fetch", "runtime": "python"}
]`

func indexServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/packages.json", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestResolve_Found(t *testing.T) {
	srv, _ := indexServer(t, http.StatusOK, indexBody)
	c := NewClient(srv.URL)

	pkg, err := c.Resolve(context.Background(), "mcp-server-fetch")
	require.NoError(t, err)
	require.Equal(t, "python", pkg.Runtime)
}

func TestResolve_NotFound(t *testing.T) {
	srv, _ := indexServer(t, http.StatusOK, indexBody)
	c := NewClient(srv.URL)

	_, err := c.Resolve(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_BadStatus(t *testing.T) {
	srv, _ := indexServer(t, http.StatusInternalServerError, "boom")
	c := NewClient(srv.URL)

	_, err := c.Resolve(context.Background(), "anything")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestResolve_MalformedIndex(t *testing.T) {
	srv, _ := indexServer(t, http.StatusOK, "{not a list")
	c := NewClient(srv.URL)

	_, err := c.Resolve(context.Background(), "anything")
	require.Error(t, err)
}

func TestResolve_IndexFetchedOnce(t *testing.T) {
	srv, hits := indexServer(t, http.StatusOK, indexBody)
	c := NewClient(srv.URL)

	_, err := c.Resolve(context.Background(), "@scope/server-a")
	require.NoError(t, err)
	_, err = c.Resolve(context.Background(), "mcp-server-fetch")
	require.NoError(t, err)
	require.Equal(t, 1, *hits)
}

func TestNewClient_EnvOverride(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://registry.env.example")
	c := NewClient("")
	require.Equal(t, "http://registry.env.example", c.baseURL)

	c = NewClient("http://explicit.example")
	require.Equal(t, "http://explicit.example", c.baseURL)

	t.Setenv(EnvBaseURL, "")
	c = NewClient("")
	require.Equal(t, DefaultBaseURL, c.baseURL)
}
