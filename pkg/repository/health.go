package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"feedwatch/pkg/domain"
)

// HealthRepository handles the append-only health check history
type HealthRepository struct {
	db *sqlx.DB
}

// healthSQL represents a health check for SQL operations
type healthSQL struct {
	ID             int64     `db:"id"`
	FeedID         int64     `db:"feed_id"`
	Timestamp      time.Time `db:"timestamp"`
	Reachable      bool      `db:"reachable"`
	HTTPStatus     *int      `db:"http_status"`
	ResponseTimeMs *int64    `db:"response_time_ms"`
	Validation     *string   `db:"validation"`
	Errors         string    `db:"errors"`
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(database *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: database}
}

// SaveHealthCheck appends one observation to a feed's history. Checks are
// immutable once recorded; there is no update path.
func (r *HealthRepository) SaveHealthCheck(ctx context.Context, check *domain.HealthCheck) error {
	sqlCheck, err := toSQLHealth(check)
	if err != nil {
		return err
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO health_checks (feed_id, timestamp, reachable, http_status, response_time_ms, validation, errors)
			VALUES (:feed_id, :timestamp, :reachable, :http_status, :response_time_ms, :validation, :errors)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlCheck)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save health check: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		check.ID = id
		return nil
	})
}

// GetRecentHealth retrieves the latest checks for a feed, newest first
func (r *HealthRepository) GetRecentHealth(ctx context.Context, feedID int64, limit int) ([]domain.HealthCheck, error) {
	query := `
		SELECT * FROM health_checks
		WHERE feed_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`
	var sqlChecks []healthSQL
	if err := r.db.SelectContext(ctx, &sqlChecks, query, feedID, limit); err != nil {
		return nil, fmt.Errorf("get recent health: %w", err)
	}

	checks := make([]domain.HealthCheck, 0, len(sqlChecks))
	for _, c := range sqlChecks {
		check, err := toDomainHealth(&c)
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}
	return checks, nil
}

// LatestHealth retrieves the most recent check for a feed, nil when the
// feed has never been checked
func (r *HealthRepository) LatestHealth(ctx context.Context, feedID int64) (*domain.HealthCheck, error) {
	checks, err := r.GetRecentHealth(ctx, feedID, 1)
	if err != nil {
		return nil, err
	}
	if len(checks) == 0 {
		return nil, nil
	}
	return &checks[0], nil
}

func toSQLHealth(check *domain.HealthCheck) (*healthSQL, error) {
	errorsJSON, err := json.Marshal(check.Errors)
	if err != nil {
		return nil, fmt.Errorf("marshal check errors: %w", err)
	}

	sqlCheck := &healthSQL{
		FeedID:         check.FeedID,
		Timestamp:      check.Timestamp,
		Reachable:      check.Reachable,
		HTTPStatus:     check.HTTPStatus,
		ResponseTimeMs: check.ResponseTimeMs,
		Errors:         string(errorsJSON),
	}
	if check.Validation != nil {
		validationJSON, err := json.Marshal(check.Validation)
		if err != nil {
			return nil, fmt.Errorf("marshal validation: %w", err)
		}
		s := string(validationJSON)
		sqlCheck.Validation = &s
	}
	return sqlCheck, nil
}

func toDomainHealth(sqlCheck *healthSQL) (*domain.HealthCheck, error) {
	check := &domain.HealthCheck{
		ID:             sqlCheck.ID,
		FeedID:         sqlCheck.FeedID,
		Timestamp:      sqlCheck.Timestamp,
		Reachable:      sqlCheck.Reachable,
		HTTPStatus:     sqlCheck.HTTPStatus,
		ResponseTimeMs: sqlCheck.ResponseTimeMs,
	}
	if sqlCheck.Errors != "" {
		if err := json.Unmarshal([]byte(sqlCheck.Errors), &check.Errors); err != nil {
			return nil, fmt.Errorf("unmarshal check errors: %w", err)
		}
	}
	if sqlCheck.Validation != nil && *sqlCheck.Validation != "" {
		var validation domain.ValidationResult
		if err := json.Unmarshal([]byte(*sqlCheck.Validation), &validation); err != nil {
			return nil, fmt.Errorf("unmarshal validation: %w", err)
		}
		check.Validation = &validation
	}
	return check, nil
}
