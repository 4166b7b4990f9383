package trashion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/totobolto-dev/trashion-api/internal/logging"
	"github.com/totobolto-dev/trashion-api/internal/metrics"
	"github.com/totobolto-dev/trashion-api/internal/notify"
	"github.com/totobolto-dev/trashion-api/internal/store"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

// Version of the service, overridable at build time via -ldflags.
var Version = "0.3.0"

// ErrNoCachedData is returned when a scrape is not allowed (outside business
// hours) and no previous snapshot exists to fall back on.
var ErrNoCachedData = errors.New("no cached data available")

// Scraper abstracts the browser-driven inventory extraction.
type Scraper interface {
	Scrape(ctx context.Context) (*scrape.Snapshot, error)
}

// Service is the high-level entry point wiring the scraper, snapshot store,
// business-hours gate, and notifications together. All surfaces (HTTP, MCP,
// CLI, monitor) go through it.
type Service struct {
	scraper  Scraper
	store    store.SnapshotStore
	notifier notify.Notifier
	hours    scrape.Hours
	interval time.Duration
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	monitoring atomic.Bool
}

// Option configures the Service.
type Option func(*Service)

// WithNotifier sets the sold-item notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithHours sets the business-hours window gating live scrapes.
func WithHours(h scrape.Hours) Option {
	return func(s *Service) {
		s.hours = h
	}
}

// WithInterval sets the check interval reported by Status; the monitor loop
// is expected to run with the same interval.
func WithInterval(interval time.Duration) Option {
	return func(s *Service) {
		s.interval = interval
	}
}

// WithCacheTTL sets how long a snapshot is served from cache before a fresh
// scrape is attempted.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service around a scraper and a snapshot store.
func NewService(scraper Scraper, snapshots store.SnapshotStore, opts ...Option) *Service {
	s := &Service{
		scraper:  scraper,
		store:    snapshots,
		notifier: notify.NewDiscord(""), // disabled by default
		interval: 5 * time.Minute,
		cacheTTL: 5 * time.Minute,
		logger:   logging.NewNop(),
		metrics:  metrics.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hours returns the configured business-hours window.
func (s *Service) Hours() scrape.Hours { return s.hours }

// WithinHours reports whether a live scrape is currently allowed.
func (s *Service) WithinHours() bool { return s.hours.Within(s.now()) }

// SetMonitoring flags whether the background monitor loop is running.
func (s *Service) SetMonitoring(active bool) { s.monitoring.Store(active) }

// Monitoring reports whether the background monitor loop is running.
func (s *Service) Monitoring() bool { return s.monitoring.Load() }

// NotificationsEnabled reports whether sold-item alerts are configured.
func (s *Service) NotificationsEnabled() bool { return s.notifier.Enabled() }

// Inventory returns the current inventory, serving the cached snapshot while
// it is younger than the cache TTL and scraping fresh otherwise.
func (s *Service) Inventory(ctx context.Context) (*scrape.Snapshot, error) {
	if snap, err := s.store.Current(ctx); err == nil {
		if age := snap.Age(s.now()); age < s.cacheTTL {
			cached := *snap
			cached.FromCache = true
			cached.CacheAge = int(age.Seconds())
			return &cached, nil
		}
	} else if !errors.Is(err, store.ErrSnapshotNotFound) {
		return nil, err
	}

	snap, _, err := s.Refresh(ctx)
	return snap, err
}

// Refresh runs a full check: scrape (business-hours gated), persist, compare
// against the previous snapshot, alert on sold items, and promote the new
// snapshot as the next baseline. It returns the snapshot and the sold IDs.
//
// Outside business hours the cached snapshot is returned with a note instead,
// matching the original service's behavior.
func (s *Service) Refresh(ctx context.Context) (*scrape.Snapshot, []string, error) {
	if !s.hours.Within(s.now()) {
		s.logger.Info("outside business hours, using cached data", "hours", s.hours.String())
		snap, err := s.store.Current(ctx)
		if err != nil {
			if errors.Is(err, store.ErrSnapshotNotFound) {
				return nil, nil, ErrNoCachedData
			}
			return nil, nil, err
		}
		cached := *snap
		cached.FromCache = true
		cached.Note = "Outside business hours - cached data"
		return &cached, nil, nil
	}

	start := s.now()
	snap, err := s.scraper.Scrape(ctx)
	if err != nil {
		s.metrics.ScrapesTotal.WithLabelValues("error").Inc()
		return nil, nil, fmt.Errorf("scrape failed: %w", err)
	}
	s.metrics.ScrapesTotal.WithLabelValues("success").Inc()
	s.metrics.ScrapeDuration.Observe(s.now().Sub(start).Seconds())
	s.metrics.InventoryItems.Set(float64(snap.Count))

	if err := s.store.SaveCurrent(ctx, snap); err != nil {
		return nil, nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	var sold []string
	prev, err := s.store.Previous(ctx)
	switch {
	case err == nil:
		sold = scrape.Sold(prev, snap)
	case errors.Is(err, store.ErrSnapshotNotFound):
		// First run: nothing to compare against yet.
	default:
		return nil, nil, err
	}

	if len(sold) > 0 {
		s.logger.Info("items sold", "count", len(sold), "ids", sold)
		s.metrics.SoldItemsTotal.Add(float64(len(sold)))
		if s.notifier.Enabled() {
			if err := s.notifier.NotifySold(ctx, sold); err != nil {
				// Alerts are best effort; the snapshot pipeline must not stall on them.
				s.logger.Warn("failed to send notification", "err", err)
			} else {
				s.metrics.NotificationsSent.Inc()
			}
		}
	}

	if err := s.store.Promote(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to promote snapshot: %w", err)
	}

	return snap, sold, nil
}

// Status summarizes the service state for the API and CLI surfaces.
type Status struct {
	Platform         string     `json:"platform"`
	MonitoringActive bool       `json:"monitoring_active"`
	BusinessHours    string     `json:"business_hours"`
	WithinHours      bool       `json:"currently_in_hours"`
	Timezone         string     `json:"timezone"`
	IntervalSeconds  int        `json:"interval_seconds"`
	Notifications    bool       `json:"notifications_enabled"`
	LastCheck        *time.Time `json:"last_check,omitempty"`
	ItemCount        *int       `json:"item_count,omitempty"`
	LastClicks       *int       `json:"last_clicks,omitempty"`
	SnapshotAge      *int       `json:"snapshot_age_seconds,omitempty"`
}

// Status reports the monitor state plus the latest snapshot's vitals, if any.
func (s *Service) Status(ctx context.Context) (Status, error) {
	tz := "Local"
	if s.hours.Location != nil {
		tz = s.hours.Location.String()
	}
	st := Status{
		Platform:         "trashion-api",
		MonitoringActive: s.Monitoring(),
		BusinessHours:    s.hours.String(),
		WithinHours:      s.WithinHours(),
		Timezone:         tz,
		IntervalSeconds:  int(s.interval.Seconds()),
		Notifications:    s.notifier.Enabled(),
	}

	snap, err := s.store.Current(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			return st, nil
		}
		return st, err
	}

	age := int(snap.Age(s.now()).Seconds())
	st.LastCheck = &snap.Timestamp
	st.ItemCount = &snap.Count
	st.LastClicks = &snap.Clicks
	st.SnapshotAge = &age
	return st, nil
}
