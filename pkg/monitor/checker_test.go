package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedwatch/pkg/domain"
)

func TestChecker_Check(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"feed_type": "mcp",
			"metadata": {"title": "Test", "origin": "` + "http://" + r.Host + `"},
			"capabilities": [{"name": "search", "path": "/api/search"}],
			"trust": {}
		}`))
	}))
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	feed := domain.FeedSource{ID: 1, URL: ts.URL + "/.well-known/mcp.llmfeed.json"}

	check := checker.Check(context.Background(), feed)

	assert.Equal(t, "LLMFeed-Health-Monitor/1.0", gotUA)
	assert.True(t, check.Reachable)
	require.NotNil(t, check.HTTPStatus)
	assert.Equal(t, http.StatusOK, *check.HTTPStatus)
	require.NotNil(t, check.ResponseTimeMs)
	assert.Empty(t, check.Errors)

	require.NotNil(t, check.Validation)
	assert.True(t, check.Validation.Valid)
	assert.Equal(t, int64(1), check.FeedID)
}

func TestChecker_Check_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	check := checker.Check(context.Background(), domain.FeedSource{ID: 1, URL: ts.URL})

	assert.True(t, check.Reachable, "a 500 still means the host answered")
	require.NotNil(t, check.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, *check.HTTPStatus)
	assert.Nil(t, check.Validation)
	require.Len(t, check.Errors, 1)
	assert.Contains(t, check.Errors[0], "unexpected status code: 500")
}

func TestChecker_Check_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	checker := NewChecker(time.Second, "LLMFeed-Health-Monitor/1.0")
	check := checker.Check(context.Background(), domain.FeedSource{ID: 1, URL: ts.URL})

	assert.False(t, check.Reachable)
	assert.Nil(t, check.HTTPStatus)
	assert.Nil(t, check.Validation)
	require.Len(t, check.Errors, 1)
	assert.Contains(t, check.Errors[0], "fetch feed")
}

func TestChecker_Check_InvalidDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not a feed</html>"))
	}))
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	check := checker.Check(context.Background(), domain.FeedSource{ID: 1, URL: ts.URL})

	assert.True(t, check.Reachable)
	require.NotNil(t, check.Validation)
	assert.False(t, check.Validation.Valid)
	assert.Equal(t, "INVALID_JSON", check.Validation.Issues[0].Code)
}
