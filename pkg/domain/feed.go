package domain

import (
	"net/url"
	"strings"
	"time"
)

// RepoRef identifies a GitHub repository associated with a feed
type RepoRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// Contact holds owner contact metadata discovered for a feed
type Contact struct {
	Email   string `json:"email,omitempty"`
	Twitter string `json:"twitter,omitempty"`
	Website string `json:"website,omitempty"`
}

// FeedSource represents a monitored feed document
type FeedSource struct {
	ID           int64     `json:"id"`
	URL          string    `json:"url"`
	Domain       string    `json:"domain"`
	GitHubRepo   *RepoRef  `json:"github_repo,omitempty"`
	Contact      *Contact  `json:"contact,omitempty"`
	OptedOut     bool      `json:"opted_out"`
	OptOutReason string    `json:"opt_out_reason,omitempty"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewFeedSource creates a feed source with the domain derived from the URL
func NewFeedSource(feedURL string) FeedSource {
	return FeedSource{
		URL:     feedURL,
		Domain:  DomainOf(feedURL),
		Enabled: true,
	}
}

// DomainOf extracts the host part of a feed URL, empty on parse failure
func DomainOf(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// HasContact reports whether any contact channel datum is present
func (f *FeedSource) HasContact() bool {
	if f.GitHubRepo != nil {
		return true
	}
	if f.Contact == nil {
		return false
	}
	return f.Contact.Email != "" || f.Contact.Twitter != ""
}
