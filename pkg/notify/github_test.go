package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedwatch/pkg/domain"
)

func TestGitHubSender_Send(t *testing.T) {
	var gotReq issueRequest
	var gotAuth, gotAccept string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/acme/site/issues", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"number":   42,
			"html_url": "https://github.com/acme/site/issues/42",
		})
	}))
	defer ts.Close()

	sender := NewGitHubSender("tok-123", ts.Client())
	sender.baseURL = ts.URL

	feed := domain.FeedSource{ID: 1, GitHubRepo: &domain.RepoRef{Owner: "acme", Repo: "site"}}
	rec := domain.OutreachRecord{}
	sender.Send(context.Background(), feed, Message{Subject: "LLMFeed validation issues detected", Body: "body"}, &rec)

	assert.True(t, rec.Success)
	assert.Equal(t, "Created issue #42 on acme/site", rec.Response)
	assert.Equal(t, "42", rec.MessageID)
	assert.Equal(t, "https://github.com/acme/site/issues/42", rec.URL)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/vnd.github.v3+json", gotAccept)
	assert.Equal(t, "LLMFeed validation issues detected", gotReq.Title)
	assert.Equal(t, []string{"llmfeed", "bot"}, gotReq.Labels)
}

func TestGitHubSender_NoRepo(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	sender := NewGitHubSender("tok", ts.Client())
	sender.baseURL = ts.URL

	rec := domain.OutreachRecord{}
	sender.Send(context.Background(), domain.FeedSource{ID: 1}, Message{}, &rec)

	assert.False(t, rec.Success)
	assert.Equal(t, "No GitHub repository associated with feed", rec.Response)
	assert.Zero(t, calls, "missing repo must not make any HTTP call")
}

func TestGitHubSender_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation Failed"}`))
	}))
	defer ts.Close()

	sender := NewGitHubSender("tok", ts.Client())
	sender.baseURL = ts.URL

	feed := domain.FeedSource{ID: 1, GitHubRepo: &domain.RepoRef{Owner: "acme", Repo: "site"}}
	rec := domain.OutreachRecord{}
	sender.Send(context.Background(), feed, Message{Subject: "s", Body: "b"}, &rec)

	assert.False(t, rec.Success)
	assert.Contains(t, rec.Response, "GitHub API error: 422")
	assert.Contains(t, rec.Response, "Validation Failed")
}

func TestGitHubSender_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // closed server forces a transport error

	sender := NewGitHubSender("tok", http.DefaultClient)
	sender.baseURL = ts.URL

	feed := domain.FeedSource{ID: 1, GitHubRepo: &domain.RepoRef{Owner: "acme", Repo: "site"}}
	rec := domain.OutreachRecord{}
	sender.Send(context.Background(), feed, Message{}, &rec)

	assert.False(t, rec.Success)
	assert.Contains(t, rec.Response, "GitHub request failed")
}
