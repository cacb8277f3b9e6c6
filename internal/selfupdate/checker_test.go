package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/grind/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		server := releaseServer(t, "v2.1.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.1.0", result.LatestVersion)
		assert.Equal(t, "v2.0.0", result.CurrentVersion)
		assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
	})

	t.Run("up to date", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		server := releaseServer(t, "2.1.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "2.1.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("dev build counts as outdated", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0")
		checker := NewChecker(WithBaseURL(server.URL))

		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("bad release tag", func(t *testing.T) {
		server := releaseServer(t, "nightly")
		checker := NewChecker(WithBaseURL(server.URL))

		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected release tag")
	})

	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{" v1.2.3 ", "v1.2.3"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeVersion(tt.in))
	}
}
