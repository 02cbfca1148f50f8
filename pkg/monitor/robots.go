package monitor

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

// robotsAgent is the documented opt-out user agent token
const robotsAgent = "LLMFeed-Health-Monitor"

// RobotsAllowed reports whether the feed's origin permits crawling its
// path for the monitor user agent. Any failure to fetch or parse
// robots.txt defaults to allowed; only an explicit disallow opts a site
// out.
func (c *Checker) RobotsAllowed(ctx context.Context, feedURL string) bool {
	robots, err := robotsURL(feedURL)
	if err != nil {
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robots, http.NoBody)
	if err != nil {
		return true
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return true
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return true
	}

	path := "/"
	if u, err := url.Parse(feedURL); err == nil && u.Path != "" {
		path = u.Path
	}

	return data.FindGroup(robotsAgent).Test(path)
}
