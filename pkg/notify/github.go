package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"feedwatch/pkg/domain"
)

// githubAPIBase is the fixed GitHub REST endpoint, overridable in tests
const githubAPIBase = "https://api.github.com"

// issue labels applied to every created issue
var issueLabels = []string{"llmfeed", "bot"}

// GitHubSender creates issues on the repository associated with a feed
type GitHubSender struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewGitHubSender creates a sender with a validated token
func NewGitHubSender(token string, client *http.Client) *GitHubSender {
	return &GitHubSender{
		token:   token,
		baseURL: githubAPIBase,
		client:  client,
	}
}

// issueRequest is the issue creation payload
type issueRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// issueResponse is the subset of the creation response we report back
type issueResponse struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// Send creates an issue on the feed's repository and fills the result
// record. Transport failures are folded into the record, never returned.
func (s *GitHubSender) Send(ctx context.Context, feed domain.FeedSource, msg Message, rec *domain.OutreachRecord) {
	if feed.GitHubRepo == nil {
		rec.Response = "No GitHub repository associated with feed"
		return
	}

	payload, err := json.Marshal(issueRequest{Title: msg.Subject, Body: msg.Body, Labels: issueLabels})
	if err != nil {
		rec.Response = fmt.Sprintf("GitHub request failed: %v", err)
		return
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues", s.baseURL, feed.GitHubRepo.Owner, feed.GitHubRepo.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		rec.Response = fmt.Sprintf("GitHub request failed: %v", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		rec.Response = fmt.Sprintf("GitHub request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		rec.Response = fmt.Sprintf("GitHub response read failed: %v", err)
		return
	}

	if resp.StatusCode != http.StatusCreated {
		rec.Response = fmt.Sprintf("GitHub API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return
	}

	var issue issueResponse
	if err := json.Unmarshal(body, &issue); err != nil {
		rec.Response = fmt.Sprintf("GitHub response parse failed: %v", err)
		return
	}

	rec.Success = true
	rec.Response = fmt.Sprintf("Created issue #%d on %s/%s", issue.Number, feed.GitHubRepo.Owner, feed.GitHubRepo.Repo)
	rec.MessageID = fmt.Sprintf("%d", issue.Number)
	rec.URL = issue.HTMLURL
}
