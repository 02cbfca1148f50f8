package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedwatch/pkg/domain"
)

func TestHealthRepository_SaveAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://acme.dev/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	status := 200
	respTime := int64(120)
	validation := domain.NewValidationResult([]domain.ValidationIssue{
		{Type: domain.IssueWarning, Code: "MISSING_TITLE", Message: "metadata.title is missing", Path: "metadata.title"},
	}, 90, 3)
	check := &domain.HealthCheck{
		FeedID:         feed.ID,
		Timestamp:      time.Now().UTC(),
		Reachable:      true,
		HTTPStatus:     &status,
		ResponseTimeMs: &respTime,
		Validation:     &validation,
	}
	require.NoError(t, repos.Health.SaveHealthCheck(context.Background(), check))
	assert.NotZero(t, check.ID)

	got, err := repos.Health.LatestHealth(context.Background(), feed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Reachable)
	require.NotNil(t, got.HTTPStatus)
	assert.Equal(t, 200, *got.HTTPStatus)
	require.NotNil(t, got.Validation)
	assert.Equal(t, 90, got.Validation.Score)
	assert.Equal(t, 1, got.Validation.WarningCount)
	assert.True(t, got.Validation.Valid)
	require.Len(t, got.Validation.Issues, 1)
	assert.Equal(t, "MISSING_TITLE", got.Validation.Issues[0].Code)
}

func TestHealthRepository_UnreachableCheck(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://down.example.com/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	check := &domain.HealthCheck{
		FeedID:    feed.ID,
		Timestamp: time.Now().UTC(),
		Reachable: false,
		Errors:    []string{"connection refused"},
	}
	require.NoError(t, repos.Health.SaveHealthCheck(context.Background(), check))

	got, err := repos.Health.LatestHealth(context.Background(), feed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Reachable)
	assert.Nil(t, got.HTTPStatus)
	assert.Nil(t, got.Validation)
	assert.Equal(t, []string{"connection refused"}, got.Errors)
}

func TestHealthRepository_GetRecentHealth(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://acme.dev/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		check := &domain.HealthCheck{
			FeedID:    feed.ID,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Reachable: true,
		}
		require.NoError(t, repos.Health.SaveHealthCheck(context.Background(), check))
	}

	recent, err := repos.Health.GetRecentHealth(context.Background(), feed.ID, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	// newest first
	assert.True(t, recent[0].Timestamp.After(recent[1].Timestamp))
	assert.True(t, recent[1].Timestamp.After(recent[2].Timestamp))
}

func TestHealthRepository_LatestHealth_NoRows(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := domain.NewFeedSource("https://acme.dev/feed.json")
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), &feed))

	got, err := repos.Health.LatestHealth(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
