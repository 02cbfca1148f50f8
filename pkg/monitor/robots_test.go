package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func robotsServer(t *testing.T, robots string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(robots))
	})
	return httptest.NewServer(mux)
}

func TestRobotsAllowed_Disallowed(t *testing.T) {
	ts := robotsServer(t, "User-agent: LLMFeed-Health-Monitor\nDisallow: /\n")
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	assert.False(t, checker.RobotsAllowed(context.Background(), ts.URL+"/.well-known/mcp.llmfeed.json"))
}

func TestRobotsAllowed_OtherAgentDisallowed(t *testing.T) {
	ts := robotsServer(t, "User-agent: BadBot\nDisallow: /\n")
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	assert.True(t, checker.RobotsAllowed(context.Background(), ts.URL+"/.well-known/mcp.llmfeed.json"),
		"disallow for another agent must not opt the feed out")
}

func TestRobotsAllowed_PathScoped(t *testing.T) {
	ts := robotsServer(t, "User-agent: LLMFeed-Health-Monitor\nDisallow: /private/\n")
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	assert.True(t, checker.RobotsAllowed(context.Background(), ts.URL+"/.well-known/mcp.llmfeed.json"))
	assert.False(t, checker.RobotsAllowed(context.Background(), ts.URL+"/private/feed.json"))
}

func TestRobotsAllowed_NoRobots(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	checker := NewChecker(5*time.Second, "LLMFeed-Health-Monitor/1.0")
	assert.True(t, checker.RobotsAllowed(context.Background(), ts.URL+"/feed.json"),
		"missing robots.txt defaults to allowed")
}

func TestRobotsAllowed_FetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	checker := NewChecker(time.Second, "LLMFeed-Health-Monitor/1.0")
	assert.True(t, checker.RobotsAllowed(context.Background(), ts.URL+"/feed.json"),
		"unreachable robots.txt defaults to allowed")
}
