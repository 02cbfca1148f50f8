// Package monitor performs feed health checks: it fetches the published
// feed document, validates it as an llmfeed manifest and records the
// observation. It also probes robots.txt for the documented opt-out
// convention.
package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"feedwatch/pkg/domain"
)

// maxBodySize bounds how much of a feed document is read
const maxBodySize = 2 * 1024 * 1024

// Checker fetches and validates feed documents
type Checker struct {
	client    *http.Client
	userAgent string
}

// NewChecker creates a checker with its own pooled HTTP client
func NewChecker(timeout time.Duration, userAgent string) *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Check performs one health observation of a feed. It never returns an
// error: unreachability and validation problems are part of the result.
func (c *Checker) Check(ctx context.Context, feed domain.FeedSource) domain.HealthCheck {
	check := domain.HealthCheck{
		FeedID:    feed.ID,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, http.NoBody)
	if err != nil {
		check.Errors = append(check.Errors, fmt.Sprintf("create request: %v", err))
		return check
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		check.Errors = append(check.Errors, fmt.Sprintf("fetch feed: %v", err))
		return check
	}
	defer resp.Body.Close()

	check.Reachable = true
	check.HTTPStatus = &resp.StatusCode
	check.ResponseTimeMs = &elapsed

	if resp.StatusCode != http.StatusOK {
		check.Errors = append(check.Errors, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
		return check
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		check.Errors = append(check.Errors, fmt.Sprintf("read feed body: %v", err))
		return check
	}

	validation := Validate(body, feed.URL)
	check.Validation = &validation
	return check
}

// robotsURL builds the robots.txt location for a feed's origin
func robotsURL(feedURL string) (string, error) {
	u, err := url.Parse(feedURL)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("feed url %q has no origin", feedURL)
	}
	return fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host), nil
}
