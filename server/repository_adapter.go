package server

import (
	"context"

	"feedwatch/pkg/domain"
	"feedwatch/pkg/repository"
)

// RepositoryAdapter adapts the split repositories to the server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CreateFeed registers a feed
func (r *RepositoryAdapter) CreateFeed(ctx context.Context, feed *domain.FeedSource) error {
	return r.repos.Feed.CreateFeed(ctx, feed)
}

// GetFeed returns one feed by ID
func (r *RepositoryAdapter) GetFeed(ctx context.Context, id int64) (*domain.FeedSource, error) {
	return r.repos.Feed.GetFeed(ctx, id)
}

// GetFeedByURL returns one feed by its URL
func (r *RepositoryAdapter) GetFeedByURL(ctx context.Context, url string) (*domain.FeedSource, error) {
	return r.repos.Feed.GetFeedByURL(ctx, url)
}

// GetFeeds returns feeds, optionally only those still monitored
func (r *RepositoryAdapter) GetFeeds(ctx context.Context, activeOnly bool) ([]*domain.FeedSource, error) {
	return r.repos.Feed.GetFeeds(ctx, activeOnly)
}

// SetOptOut marks a feed as opted out of monitoring and outreach
func (r *RepositoryAdapter) SetOptOut(ctx context.Context, feedID int64, reason string) error {
	return r.repos.Feed.SetOptOut(ctx, feedID, reason)
}

// GetRecentHealth returns recent health checks for a feed, newest first
func (r *RepositoryAdapter) GetRecentHealth(ctx context.Context, feedID int64, limit int) ([]domain.HealthCheck, error) {
	return r.repos.Health.GetRecentHealth(ctx, feedID, limit)
}

// GetOutreachByFeed returns the outreach audit log for a feed, newest first
func (r *RepositoryAdapter) GetOutreachByFeed(ctx context.Context, feedID int64, limit int) ([]domain.OutreachRecord, error) {
	return r.repos.Outreach.GetOutreachByFeed(ctx, feedID, limit)
}
