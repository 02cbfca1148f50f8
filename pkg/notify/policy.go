package notify

import (
	"feedwatch/pkg/domain"
)

// healthyScore is the score at or above which a valid feed is never bothered
const healthyScore = 80

// PolicyOptions tune the notification decision per campaign
type PolicyOptions struct {
	MinScore      *int // when set, feeds scoring at or above it are skipped
	RequireErrors bool // when set, warnings-only feeds are skipped
}

// ShouldNotify decides whether a health check warrants contacting the feed
// owner. A missing validation result is treated as not yet known good and
// falls through to true unless RequireErrors filters it out.
func ShouldNotify(check domain.HealthCheck, opts PolicyOptions) bool {
	v := check.Validation

	if v != nil && v.Valid && v.Score >= healthyScore {
		return false
	}
	if opts.MinScore != nil && v != nil && v.Score >= *opts.MinScore {
		return false
	}
	if opts.RequireErrors && (v == nil || v.ErrorCount == 0) {
		return false
	}
	return true
}

// SelectBestChannel picks the preferred contact channel for a feed in fixed
// priority order: GitHub issue, then email, then Twitter DM. The second
// return is false when the feed has no usable contact metadata at all, in
// which case the caller must skip the feed silently.
func SelectBestChannel(feed domain.FeedSource) (domain.Channel, bool) {
	if feed.GitHubRepo != nil {
		return domain.ChannelGitHub, true
	}
	if feed.Contact != nil && feed.Contact.Email != "" {
		return domain.ChannelEmail, true
	}
	if feed.Contact != nil && feed.Contact.Twitter != "" {
		return domain.ChannelTwitter, true
	}
	return "", false
}
