package notify

import (
	"time"

	"feedwatch/pkg/domain"
)

// recentCount counts dispatch attempts for the given feed and channel with
// a timestamp inside the rolling window ending at now. Rate-limit rejections
// are not attempts and are skipped even if a caller persisted them. Pure
// computation over caller-supplied history; the engine keeps no counters of
// its own, so restart safety depends entirely on the completeness of
// persisted history.
func recentCount(history []domain.OutreachRecord, feedID int64, channel domain.Channel, now time.Time, window time.Duration) int {
	cutoff := now.Add(-window)
	count := 0
	for _, h := range history {
		if h.FeedID == feedID && h.Channel == channel && h.Timestamp.After(cutoff) && !IsRateLimited(h) {
			count++
		}
	}
	return count
}

// rateLimited reports whether another message to feed+channel would exceed
// the limit. The check-then-append sequence is not atomic; callers running
// concurrent dispatches must serialize per (feedID, channel) externally.
func rateLimited(history []domain.OutreachRecord, feedID int64, channel domain.Channel, now time.Time, window time.Duration, limit int) bool {
	return recentCount(history, feedID, channel, now, window) >= limit
}
