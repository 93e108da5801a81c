package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/pathwise/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v2.1.0","html_url":"https://example.com/v2.1.0"}`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)

		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.3", result.CurrentVersion)
		assert.Equal(t, "v2.1.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v2.0.3","html_url":"https://example.com/v2.0.3"}`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("newer than release", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v1.9.0","html_url":"https://example.com/v1.9.0"}`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"2.1.0","html_url":"https://example.com/2.1.0"}`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "2.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "2.1.0", result.LatestVersion)
	})

	t.Run("unparseable current version", func(t *testing.T) {
		server := releaseServer(t, `{"tag_name":"v2.1.0","html_url":"https://example.com/v2.1.0"}`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "deadbeef"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("http error", func(t *testing.T) {
		server := releaseServer(t, `rate limited`, http.StatusForbidden)

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := releaseServer(t, `not json`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode release")
	})

	t.Run("missing tag", func(t *testing.T) {
		server := releaseServer(t, `{"html_url":"https://example.com"}`, http.StatusOK)

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no tag name")
	})
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{" 1.2.3 ", "v1.2.3"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in))
	}
}
