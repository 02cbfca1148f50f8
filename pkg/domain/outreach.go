package domain

import "time"

// Channel identifies an outreach contact channel
type Channel string

// outreach channels in priority order
const (
	ChannelGitHub  Channel = "github"
	ChannelEmail   Channel = "email"
	ChannelTwitter Channel = "twitter"
)

// ActionTypeNotification is the discriminator carried by every dispatch result
const ActionTypeNotification = "notification"

// OutreachRecord is one outreach attempt. The same shape serves as the
// append-only history row and as the normalized result of a dispatch:
// every dispatch path, including rejections, produces exactly one record.
type OutreachRecord struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	FeedID    int64     `json:"feed_id"`
	Channel   Channel   `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Response  string    `json:"response"`
	MessageID string    `json:"message_id,omitempty"`
	URL       string    `json:"url,omitempty"`
}
