package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainOf(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://acme.dev/.well-known/mcp.llmfeed.json", "acme.dev"},
		{"https://ACME.Dev/feed.json", "acme.dev"},
		{"https://acme.dev:8443/feed.json", "acme.dev"},
		{"not a url at all ://", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DomainOf(tt.url), "url: %s", tt.url)
	}
}

func TestNewFeedSource(t *testing.T) {
	feed := NewFeedSource("https://acme.dev/feed.json")
	assert.Equal(t, "acme.dev", feed.Domain)
	assert.True(t, feed.Enabled)
	assert.False(t, feed.OptedOut)
}

func TestFeedSource_HasContact(t *testing.T) {
	tests := []struct {
		name string
		feed FeedSource
		want bool
	}{
		{"no contact data", FeedSource{}, false},
		{"github repo only", FeedSource{GitHubRepo: &RepoRef{Owner: "acme", Repo: "site"}}, true},
		{"email only", FeedSource{Contact: &Contact{Email: "owner@acme.dev"}}, true},
		{"twitter only", FeedSource{Contact: &Contact{Twitter: "@acme"}}, true},
		{"website only", FeedSource{Contact: &Contact{Website: "https://acme.dev"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.feed.HasContact())
		})
	}
}
