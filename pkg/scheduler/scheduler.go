// Package scheduler drives the periodic crawl-and-notify cycle: it walks
// active feeds on a ticker, records a health check for each, and hands
// unhealthy feeds to the notifier. Nothing a single feed does can abort the
// cycle; every failure ends up in the log or in the outreach history.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"feedwatch/pkg/domain"
	"feedwatch/pkg/notify"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/health_store.go -pkg mocks -skip-ensure -fmt goimports . HealthStore
//go:generate moq -out mocks/outreach_store.go -pkg mocks -skip-ensure -fmt goimports . OutreachStore
//go:generate moq -out mocks/checker.go -pkg mocks -skip-ensure -fmt goimports . Checker
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// FeedStore provides the feed inventory
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.FeedSource, error)
	GetFeeds(ctx context.Context, activeOnly bool) ([]*domain.FeedSource, error)
	SetOptOut(ctx context.Context, feedID int64, reason string) error
}

// HealthStore persists health check observations
type HealthStore interface {
	SaveHealthCheck(ctx context.Context, check *domain.HealthCheck) error
}

// OutreachStore persists dispatch outcomes and serves rate-limit history
type OutreachStore interface {
	SaveOutreach(ctx context.Context, rec *domain.OutreachRecord) error
	GetRecentOutreach(ctx context.Context, feedID int64, channel domain.Channel, within time.Duration) ([]domain.OutreachRecord, error)
}

// Checker fetches and validates a single feed
type Checker interface {
	Check(ctx context.Context, feed domain.FeedSource) domain.HealthCheck
	RobotsAllowed(ctx context.Context, feedURL string) bool
}

// Notifier dispatches a notification and reports the outcome as a record
type Notifier interface {
	Send(ctx context.Context, req notify.Request, history []domain.OutreachRecord) domain.OutreachRecord
	Window() time.Duration
}

// Params holds scheduler dependencies and settings
type Params struct {
	Feeds    FeedStore
	Health   HealthStore
	Outreach OutreachStore
	Checker  Checker
	Notifier Notifier

	Interval   time.Duration
	MaxWorkers int
	BaseURL    string
	Policy     notify.PolicyOptions
}

// Scheduler manages the periodic monitoring cycle
type Scheduler struct {
	feeds    FeedStore
	health   HealthStore
	outreach OutreachStore
	checker  Checker
	notifier Notifier

	interval   time.Duration
	maxWorkers int
	baseURL    string
	policy     notify.PolicyOptions

	wg        sync.WaitGroup
	cancel    context.CancelFunc
	feedLocks keyedMutex
}

// NewScheduler creates a scheduler, applying defaults for zero settings
func NewScheduler(params Params) *Scheduler {
	if params.Interval == 0 {
		params.Interval = time.Hour
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}

	return &Scheduler{
		feeds:      params.Feeds,
		health:     params.Health,
		outreach:   params.Outreach,
		checker:    params.Checker,
		notifier:   params.Notifier,
		interval:   params.Interval,
		maxWorkers: params.MaxWorkers,
		baseURL:    strings.TrimSuffix(params.BaseURL, "/"),
		policy:     params.Policy,
	}
}

// Start begins the monitoring loop, running the first cycle immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.monitorWorker(ctx)

	lgr.Printf("[INFO] scheduler started, interval %v, max workers %d", s.interval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) monitorWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// runCycle checks every active feed concurrently
func (s *Scheduler) runCycle(ctx context.Context) {
	feeds, err := s.feeds.GetFeeds(ctx, true)
	if err != nil {
		lgr.Printf("[ERROR] failed to get active feeds: %v", err)
		return
	}

	lgr.Printf("[INFO] checking %d feeds", len(feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, f := range feeds {
		feed := *f
		g.Go(func() error {
			s.processFeed(gctx, feed)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures are per-feed

	lgr.Printf("[INFO] cycle completed")
}

// processFeed runs the full pipeline for one feed: robots check, health
// check, notification decision, dispatch, audit record
func (s *Scheduler) processFeed(ctx context.Context, feed domain.FeedSource) {
	if feed.OptedOut {
		return
	}

	if !s.checker.RobotsAllowed(ctx, feed.URL) {
		lgr.Printf("[INFO] robots.txt disallows %s, opting feed out", feed.URL)
		if err := s.feeds.SetOptOut(ctx, feed.ID, "robots.txt disallow"); err != nil {
			lgr.Printf("[ERROR] failed to record opt-out for feed %d: %v", feed.ID, err)
		}
		return
	}

	check := s.checker.Check(ctx, feed)
	if err := s.health.SaveHealthCheck(ctx, &check); err != nil {
		lgr.Printf("[ERROR] failed to save health check for feed %d: %v", feed.ID, err)
	}

	if !notify.ShouldNotify(check, s.policy) {
		lgr.Printf("[DEBUG] feed %s healthy enough, no notification", feed.URL)
		return
	}

	channel, ok := notify.SelectBestChannel(feed)
	if !ok {
		lgr.Printf("[INFO] feed %s needs attention but has no contact channel", feed.URL)
		return
	}

	// serialize per (feed, channel) so the rate-limit history read and the
	// dispatch it gates cannot interleave with another worker's
	unlock := s.feedLocks.lock(fmt.Sprintf("%d/%s", feed.ID, channel))
	defer unlock()

	history, err := s.outreach.GetRecentOutreach(ctx, feed.ID, channel, s.notifier.Window())
	if err != nil {
		lgr.Printf("[ERROR] failed to get outreach history for feed %d: %v", feed.ID, err)
		return // without history the rate limit can't be trusted, skip dispatch
	}

	rec := s.notifier.Send(ctx, notify.Request{
		Feed:      feed,
		Check:     check,
		Channel:   channel,
		ReportURL: s.reportURL(feed.ID),
	}, history)

	// rate-limit rejections are policy decisions, not attempts; persisting
	// one would keep the window count at the limit forever
	if notify.IsRateLimited(rec) {
		lgr.Printf("[INFO] outreach to %s via %s suppressed: %s", feed.URL, channel, rec.Response)
		return
	}

	if err := s.outreach.SaveOutreach(ctx, &rec); err != nil {
		lgr.Printf("[ERROR] failed to save outreach record for feed %d: %v", feed.ID, err)
	}

	if rec.Success {
		lgr.Printf("[INFO] notified owner of %s via %s: %s", feed.URL, channel, rec.Response)
	} else {
		lgr.Printf("[WARN] notification for %s via %s not sent: %s", feed.URL, channel, rec.Response)
	}
}

// CheckFeedNow triggers the full pipeline for one feed immediately
func (s *Scheduler) CheckFeedNow(ctx context.Context, feedID int64) error {
	feed, err := s.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return fmt.Errorf("get feed: %w", err)
	}

	s.processFeed(ctx, *feed)
	return nil
}

func (s *Scheduler) reportURL(feedID int64) string {
	if s.baseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/v1/feeds/%d/health", s.baseURL, feedID)
}

// keyedMutex hands out one mutex per key
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
