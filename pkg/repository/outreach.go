package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"feedwatch/pkg/domain"
)

// OutreachRepository handles the append-only outreach log. Entries are
// never mutated after insert; rate limiting and auditability both depend
// on that.
type OutreachRepository struct {
	db *sqlx.DB
}

// outreachSQL represents an outreach record for SQL operations
type outreachSQL struct {
	ID        int64     `db:"id"`
	FeedID    int64     `db:"feed_id"`
	Channel   string    `db:"channel"`
	Timestamp time.Time `db:"timestamp"`
	Success   bool      `db:"success"`
	Response  string    `db:"response"`
	MessageID string    `db:"message_id"`
	URL       string    `db:"url"`
}

// NewOutreachRepository creates a new outreach repository
func NewOutreachRepository(database *sqlx.DB) *OutreachRepository {
	return &OutreachRepository{db: database}
}

// SaveOutreach appends one outreach record
func (r *OutreachRepository) SaveOutreach(ctx context.Context, rec *domain.OutreachRecord) error {
	sqlRec := &outreachSQL{
		FeedID:    rec.FeedID,
		Channel:   string(rec.Channel),
		Timestamp: rec.Timestamp,
		Success:   rec.Success,
		Response:  rec.Response,
		MessageID: rec.MessageID,
		URL:       rec.URL,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO outreach_history (feed_id, channel, timestamp, success, response, message_id, url)
			VALUES (:feed_id, :channel, :timestamp, :success, :response, :message_id, :url)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlRec)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save outreach: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		rec.ID = id
		return nil
	})
}

// GetRecentOutreach retrieves records for a feed and channel inside the
// rolling window ending now, newest first
func (r *OutreachRepository) GetRecentOutreach(ctx context.Context, feedID int64, channel domain.Channel, within time.Duration) ([]domain.OutreachRecord, error) {
	cutoff := time.Now().Add(-within)

	query := `
		SELECT * FROM outreach_history
		WHERE feed_id = ? AND channel = ? AND timestamp > ?
		ORDER BY timestamp DESC
	`
	var sqlRecs []outreachSQL
	if err := r.db.SelectContext(ctx, &sqlRecs, query, feedID, string(channel), cutoff); err != nil {
		return nil, fmt.Errorf("get recent outreach: %w", err)
	}
	return toDomainOutreach(sqlRecs), nil
}

// GetOutreachByFeed retrieves the latest records for a feed across all
// channels, newest first
func (r *OutreachRepository) GetOutreachByFeed(ctx context.Context, feedID int64, limit int) ([]domain.OutreachRecord, error) {
	query := `
		SELECT * FROM outreach_history
		WHERE feed_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`
	var sqlRecs []outreachSQL
	if err := r.db.SelectContext(ctx, &sqlRecs, query, feedID, limit); err != nil {
		return nil, fmt.Errorf("get outreach by feed: %w", err)
	}
	return toDomainOutreach(sqlRecs), nil
}

func toDomainOutreach(sqlRecs []outreachSQL) []domain.OutreachRecord {
	recs := make([]domain.OutreachRecord, len(sqlRecs))
	for i, s := range sqlRecs {
		recs[i] = domain.OutreachRecord{
			ID:        s.ID,
			Type:      domain.ActionTypeNotification,
			FeedID:    s.FeedID,
			Channel:   domain.Channel(s.Channel),
			Timestamp: s.Timestamp,
			Success:   s.Success,
			Response:  s.Response,
			MessageID: s.MessageID,
			URL:       s.URL,
		}
	}
	return recs
}
