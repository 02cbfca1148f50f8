package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedwatch/pkg/domain"
)

func TestFeedRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.FeedSource{
		URL:        "https://acme.dev/.well-known/mcp.llmfeed.json",
		Domain:     "acme.dev",
		GitHubRepo: &domain.RepoRef{Owner: "acme", Repo: "site"},
		Contact:    &domain.Contact{Email: "owner@acme.dev", Twitter: "@acme"},
		Enabled:    true,
	}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))
	assert.NotZero(t, feed.ID)

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, feed.URL, got.URL)
	assert.Equal(t, "acme.dev", got.Domain)
	require.NotNil(t, got.GitHubRepo)
	assert.Equal(t, "acme", got.GitHubRepo.Owner)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "owner@acme.dev", got.Contact.Email)
	assert.False(t, got.OptedOut)

	byURL, err := repos.Feed.GetFeedByURL(context.Background(), feed.URL)
	require.NoError(t, err)
	assert.Equal(t, feed.ID, byURL.ID)
}

func TestFeedRepository_GetFeeds_ActiveOnly(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	active := domain.NewFeedSource("https://a.example.com/feed.json")
	disabled := domain.NewFeedSource("https://b.example.com/feed.json")
	disabled.Enabled = false
	opted := domain.NewFeedSource("https://c.example.com/feed.json")
	opted.OptedOut = true
	opted.OptOutReason = "owner request"

	for _, f := range []*domain.FeedSource{&active, &disabled, &opted} {
		require.NoError(t, repos.Feed.CreateFeed(context.Background(), f))
	}

	all, err := repos.Feed.GetFeeds(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	eligible, err := repos.Feed.GetFeeds(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, active.URL, eligible[0].URL)
}

func TestFeedRepository_SetOptOut(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://acme.dev/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	require.NoError(t, repos.Feed.SetOptOut(context.Background(), feed.ID, "robots.txt disallow"))

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.True(t, got.OptedOut)
	assert.Equal(t, "robots.txt disallow", got.OptOutReason)
}

func TestFeedRepository_UpdateFeedContact(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://acme.dev/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	err := repos.Feed.UpdateFeedContact(context.Background(), feed.ID,
		&domain.RepoRef{Owner: "acme", Repo: "website"},
		&domain.Contact{Email: "new@acme.dev"})
	require.NoError(t, err)

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	require.NotNil(t, got.GitHubRepo)
	assert.Equal(t, "website", got.GitHubRepo.Repo)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "new@acme.dev", got.Contact.Email)
	assert.Empty(t, got.Contact.Twitter)
}

func TestFeedRepository_DuplicateURL(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://acme.dev/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	dup := domain.NewFeedSource("https://acme.dev/feed.json")
	assert.Error(t, repos.Feed.CreateFeed(context.Background(), &dup))
}
