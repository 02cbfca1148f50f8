package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"feedwatch/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID             int64     `db:"id"`
	URL            string    `db:"url"`
	Domain         string    `db:"domain"`
	GitHubOwner    string    `db:"github_owner"`
	GitHubRepo     string    `db:"github_repo"`
	ContactEmail   string    `db:"contact_email"`
	ContactTwitter string    `db:"contact_twitter"`
	ContactWebsite string    `db:"contact_website"`
	OptedOut       bool      `db:"opted_out"`
	OptOutReason   string    `db:"opt_out_reason"`
	Enabled        bool      `db:"enabled"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.FeedSource) error {
	sqlFeed := toSQLFeed(feed)

	query := `
		INSERT INTO feeds (url, domain, github_owner, github_repo,
		                   contact_email, contact_twitter, contact_website,
		                   opted_out, opt_out_reason, enabled)
		VALUES (:url, :domain, :github_owner, :github_repo,
		        :contact_email, :contact_twitter, :contact_website,
		        :opted_out, :opt_out_reason, :enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.FeedSource, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return toDomainFeed(&sqlFeed), nil
}

// GetFeedByURL retrieves a feed by its URL
func (r *FeedRepository) GetFeedByURL(ctx context.Context, url string) (*domain.FeedSource, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE url = ?", url)
	if err != nil {
		return nil, fmt.Errorf("get feed by url: %w", err)
	}
	return toDomainFeed(&sqlFeed), nil
}

// GetFeeds retrieves feeds, optionally limited to those eligible for
// monitoring (enabled and not opted out)
func (r *FeedRepository) GetFeeds(ctx context.Context, activeOnly bool) ([]*domain.FeedSource, error) {
	query := "SELECT * FROM feeds"
	if activeOnly {
		query += " WHERE enabled = 1 AND opted_out = 0"
	}
	query += " ORDER BY domain, url"

	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, query)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]*domain.FeedSource, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = toDomainFeed(&f)
	}
	return feeds, nil
}

// UpdateFeedContact replaces contact metadata for a feed
func (r *FeedRepository) UpdateFeedContact(ctx context.Context, feedID int64, repo *domain.RepoRef, contact *domain.Contact) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		sqlFeed := feedSQL{ID: feedID}
		if repo != nil {
			sqlFeed.GitHubOwner = repo.Owner
			sqlFeed.GitHubRepo = repo.Repo
		}
		if contact != nil {
			sqlFeed.ContactEmail = contact.Email
			sqlFeed.ContactTwitter = contact.Twitter
			sqlFeed.ContactWebsite = contact.Website
		}

		query := `
			UPDATE feeds
			SET github_owner = :github_owner,
			    github_repo = :github_repo,
			    contact_email = :contact_email,
			    contact_twitter = :contact_twitter,
			    contact_website = :contact_website
			WHERE id = :id
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlFeed)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed contact: %w", err)}
		}
		return nil
	})
}

// SetOptOut records a feed owner's opt-out decision
func (r *FeedRepository) SetOptOut(ctx context.Context, feedID int64, reason string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET opted_out = 1,
			    opt_out_reason = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, reason, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set opt out: %w", err)}
		}
		return nil
	})
}

func toSQLFeed(feed *domain.FeedSource) *feedSQL {
	sqlFeed := &feedSQL{
		ID:           feed.ID,
		URL:          feed.URL,
		Domain:       feed.Domain,
		OptedOut:     feed.OptedOut,
		OptOutReason: feed.OptOutReason,
		Enabled:      feed.Enabled,
	}
	if feed.GitHubRepo != nil {
		sqlFeed.GitHubOwner = feed.GitHubRepo.Owner
		sqlFeed.GitHubRepo = feed.GitHubRepo.Repo
	}
	if feed.Contact != nil {
		sqlFeed.ContactEmail = feed.Contact.Email
		sqlFeed.ContactTwitter = feed.Contact.Twitter
		sqlFeed.ContactWebsite = feed.Contact.Website
	}
	return sqlFeed
}

func toDomainFeed(sqlFeed *feedSQL) *domain.FeedSource {
	feed := &domain.FeedSource{
		ID:           sqlFeed.ID,
		URL:          sqlFeed.URL,
		Domain:       sqlFeed.Domain,
		OptedOut:     sqlFeed.OptedOut,
		OptOutReason: sqlFeed.OptOutReason,
		Enabled:      sqlFeed.Enabled,
		CreatedAt:    sqlFeed.CreatedAt,
	}
	if sqlFeed.GitHubOwner != "" && sqlFeed.GitHubRepo != "" {
		feed.GitHubRepo = &domain.RepoRef{Owner: sqlFeed.GitHubOwner, Repo: sqlFeed.GitHubRepo}
	}
	if sqlFeed.ContactEmail != "" || sqlFeed.ContactTwitter != "" || sqlFeed.ContactWebsite != "" {
		feed.Contact = &domain.Contact{
			Email:   sqlFeed.ContactEmail,
			Twitter: sqlFeed.ContactTwitter,
			Website: sqlFeed.ContactWebsite,
		}
	}
	return feed
}
