package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feedwatch/pkg/domain"
)

func TestShouldNotify_HealthySuppressed(t *testing.T) {
	check := domain.HealthCheck{
		Validation: &domain.ValidationResult{Valid: true, Score: 85},
	}
	assert.False(t, ShouldNotify(check, PolicyOptions{}))
}

func TestShouldNotify_BrokenFeed(t *testing.T) {
	check := domain.HealthCheck{
		Validation: &domain.ValidationResult{Valid: false, Score: 40, ErrorCount: 2},
	}
	assert.True(t, ShouldNotify(check, PolicyOptions{}))
}

func TestShouldNotify_ValidButLowScore(t *testing.T) {
	// valid but below the healthy bar still warrants a notification
	check := domain.HealthCheck{
		Validation: &domain.ValidationResult{Valid: true, Score: 60},
	}
	assert.True(t, ShouldNotify(check, PolicyOptions{}))
}

func TestShouldNotify_MinScoreOverride(t *testing.T) {
	check := domain.HealthCheck{
		Validation: &domain.ValidationResult{Valid: false, Score: 55, ErrorCount: 1},
	}

	minScore := 50
	assert.False(t, ShouldNotify(check, PolicyOptions{MinScore: &minScore}),
		"score at or above caller threshold should be skipped")

	minScore = 70
	assert.True(t, ShouldNotify(check, PolicyOptions{MinScore: &minScore}))
}

func TestShouldNotify_RequireErrors(t *testing.T) {
	warningsOnly := domain.HealthCheck{
		Validation: &domain.ValidationResult{Valid: false, Score: 70, WarningCount: 3},
	}
	assert.False(t, ShouldNotify(warningsOnly, PolicyOptions{RequireErrors: true}))
	assert.True(t, ShouldNotify(warningsOnly, PolicyOptions{}))

	withErrors := domain.HealthCheck{
		Validation: &domain.ValidationResult{Valid: false, Score: 30, ErrorCount: 1},
	}
	assert.True(t, ShouldNotify(withErrors, PolicyOptions{RequireErrors: true}))
}

func TestShouldNotify_NoValidation(t *testing.T) {
	// absence of a validation result is not yet known good
	check := domain.HealthCheck{Reachable: false}
	assert.True(t, ShouldNotify(check, PolicyOptions{}))
	assert.False(t, ShouldNotify(check, PolicyOptions{RequireErrors: true}))
}

func TestSelectBestChannel_Priority(t *testing.T) {
	feed := domain.FeedSource{
		GitHubRepo: &domain.RepoRef{Owner: "acme", Repo: "site"},
		Contact:    &domain.Contact{Email: "owner@acme.dev", Twitter: "@acme"},
	}
	ch, ok := SelectBestChannel(feed)
	assert.True(t, ok)
	assert.Equal(t, domain.ChannelGitHub, ch)

	feed.GitHubRepo = nil
	ch, ok = SelectBestChannel(feed)
	assert.True(t, ok)
	assert.Equal(t, domain.ChannelEmail, ch)

	feed.Contact.Email = ""
	ch, ok = SelectBestChannel(feed)
	assert.True(t, ok)
	assert.Equal(t, domain.ChannelTwitter, ch)
}

func TestSelectBestChannel_NoContact(t *testing.T) {
	_, ok := SelectBestChannel(domain.FeedSource{URL: "https://acme.dev/.well-known/mcp.llmfeed.json"})
	assert.False(t, ok, "feed without contact metadata must be skipped")

	_, ok = SelectBestChannel(domain.FeedSource{Contact: &domain.Contact{Website: "https://acme.dev"}})
	assert.False(t, ok, "website alone is not a contact channel")
}
