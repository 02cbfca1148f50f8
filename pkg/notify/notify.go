// Package notify implements the outreach decision and dispatch engine: it
// decides whether a feed's health warrants contacting its owner, picks the
// best available channel, enforces a per-feed-per-channel rate limit over
// persisted history, renders channel-specific payloads and dispatches
// through one of several external APIs, normalizing every outcome into one
// result record. Dispatch never returns an error upward; a scheduler
// iterating many feeds can always trust a structured result.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"feedwatch/pkg/config"
	"feedwatch/pkg/domain"
)

// Request is one dispatch decision: which feed, which channel, what state
type Request struct {
	Feed      domain.FeedSource
	Check     domain.HealthCheck
	Channel   domain.Channel
	ReportURL string
}

// DryRunResponse is the literal response of a dry-run dispatch
const DryRunResponse = "Dry run - notification not sent"

// rateLimitedPrefix marks rejection records produced by the window check
const rateLimitedPrefix = "Rate limited"

// IsRateLimited reports whether rec is a rate-limit rejection rather than a
// dispatch attempt. Rejections must not be appended to outreach history:
// a persisted rejection inside the window would itself hold the count at
// the limit and the window would never reopen.
func IsRateLimited(rec domain.OutreachRecord) bool {
	return !rec.Success && strings.HasPrefix(rec.Response, rateLimitedPrefix)
}

// Notifier routes dispatch requests to per-channel senders. Each sender is
// present only when its credentials are configured; an absent sender turns
// into a clean rejection, not a crash. The notifier itself is stateless:
// rate limiting is computed from caller-supplied history, so concurrent
// calls for the same (feed, channel) pair must be serialized externally.
type Notifier struct {
	github  *GitHubSender
	email   *EmailSender
	twitter *TwitterSender

	dryRun bool
	limit  int
	window time.Duration

	now func() time.Time
}

// New builds a notifier from config, constructing only the senders whose
// credential blocks are present
func New(cfg config.NotifyConfig, timeout time.Duration) *Notifier {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	n := &Notifier{
		dryRun: cfg.DryRun,
		limit:  cfg.RateLimit,
		window: cfg.Window,
		now:    time.Now,
	}
	if cfg.GitHub.Enabled() {
		n.github = NewGitHubSender(cfg.GitHub.Token, client)
	}
	if cfg.SMTP.Enabled() {
		n.email = NewEmailSender(cfg.SMTP)
	}
	if cfg.Twitter.Enabled() {
		n.twitter = NewTwitterSender(cfg.Twitter, client)
	}
	return n
}

// Window returns the rolling rate-limit window, so callers know how much
// history to supply
func (n *Notifier) Window() time.Duration { return n.window }

// Send dispatches one notification and returns the normalized outcome.
// Order is fixed: the rate limit short-circuits before any network I/O and
// before the dry-run check, so rate-limited attempts never log as "would
// send". The timestamp is captured once at entry and reused across all
// branches.
func (n *Notifier) Send(ctx context.Context, req Request, history []domain.OutreachRecord) domain.OutreachRecord {
	rec := domain.OutreachRecord{
		Type:      domain.ActionTypeNotification,
		FeedID:    req.Feed.ID,
		Channel:   req.Channel,
		Timestamp: n.now(),
	}

	if rateLimited(history, req.Feed.ID, req.Channel, rec.Timestamp, n.window, n.limit) {
		rec.Response = fmt.Sprintf("%s - max %d message(s) per %s window", rateLimitedPrefix, n.limit, n.window)
		return rec
	}

	if n.dryRun {
		rec.Success = true
		rec.Response = DryRunResponse
		return rec
	}

	msg := Render(req.Channel, RenderContext{Feed: req.Feed, Check: req.Check, ReportURL: req.ReportURL})

	switch req.Channel {
	case domain.ChannelGitHub:
		if n.github == nil {
			rec.Response = "No GitHub token configured"
			return rec
		}
		n.github.Send(ctx, req.Feed, msg, &rec)
	case domain.ChannelEmail:
		if n.email == nil {
			rec.Response = "No SMTP credentials configured"
			return rec
		}
		n.email.Send(req.Feed, msg, &rec)
	case domain.ChannelTwitter:
		if n.twitter == nil {
			rec.Response = "No Twitter credentials configured"
			return rec
		}
		n.twitter.Send(ctx, req.Feed, msg, &rec)
	default:
		rec.Response = fmt.Sprintf("Unknown channel: %s", req.Channel)
	}

	return rec
}
