package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"feedwatch/pkg/config"
	"feedwatch/pkg/domain"
)

// twitterAPIBase is the fixed Twitter v2 endpoint, overridable in tests
const twitterAPIBase = "https://api.twitter.com"

// TwitterSender delivers direct messages via the Twitter v2 API. Each send
// is two sequential calls: a handle to user-id lookup, then a
// conversation-scoped message to that id. A failed lookup short-circuits
// without ever attempting the send call.
type TwitterSender struct {
	cfg     config.TwitterConfig
	baseURL string
	client  *http.Client
}

// NewTwitterSender creates a sender from validated API credentials
func NewTwitterSender(cfg config.TwitterConfig, client *http.Client) *TwitterSender {
	return &TwitterSender{
		cfg:     cfg,
		baseURL: twitterAPIBase,
		client:  client,
	}
}

type userLookupResponse struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

type dmRequest struct {
	Text string `json:"text"`
}

type dmResponse struct {
	Data struct {
		DMEventID string `json:"dm_event_id"`
	} `json:"data"`
}

// Send delivers the message as a DM to the feed's Twitter contact and
// fills the result record
func (s *TwitterSender) Send(ctx context.Context, feed domain.FeedSource, msg Message, rec *domain.OutreachRecord) {
	if feed.Contact == nil || feed.Contact.Twitter == "" {
		rec.Response = "No Twitter handle for feed"
		return
	}

	handle := strings.TrimPrefix(feed.Contact.Twitter, "@")

	userID, ok := s.lookupUser(ctx, handle, rec)
	if !ok {
		return
	}

	s.sendDM(ctx, handle, userID, msg, rec)
}

// lookupUser resolves a handle to a user id. On failure it fills the
// record and returns ok=false so the caller never reaches the send call.
func (s *TwitterSender) lookupUser(ctx context.Context, handle string, rec *domain.OutreachRecord) (userID string, ok bool) {
	url := fmt.Sprintf("%s/2/users/by/username/%s", s.baseURL, handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter request failed: %v", err)
		return "", false
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter request failed: %v", err)
		return "", false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter response read failed: %v", err)
		return "", false
	}

	if resp.StatusCode != http.StatusOK {
		rec.Response = fmt.Sprintf("Could not find Twitter user: %s (status %d)", handle, resp.StatusCode)
		return "", false
	}

	var lookup userLookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil || lookup.Data.ID == "" {
		rec.Response = fmt.Sprintf("Could not find Twitter user: %s", handle)
		return "", false
	}

	return lookup.Data.ID, true
}

// sendDM posts the message into a conversation with the resolved user
func (s *TwitterSender) sendDM(ctx context.Context, handle, userID string, msg Message, rec *domain.OutreachRecord) {
	payload, err := json.Marshal(dmRequest{Text: msg.Body})
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter request failed: %v", err)
		return
	}

	url := fmt.Sprintf("%s/2/dm_conversations/with/%s/messages", s.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter request failed: %v", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		rec.Response = fmt.Sprintf("Twitter response read failed: %v", err)
		return
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		rec.Response = fmt.Sprintf("Twitter API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return
	}

	var dm dmResponse
	if err := json.Unmarshal(body, &dm); err != nil {
		rec.Response = fmt.Sprintf("Twitter response parse failed: %v", err)
		return
	}

	rec.Success = true
	rec.Response = fmt.Sprintf("DM sent to @%s", handle)
	rec.MessageID = dm.Data.DMEventID
}
