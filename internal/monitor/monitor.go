package monitor

import (
	"context"
	"log/slog"
	"time"

	trashion "github.com/totobolto-dev/trashion-api"
	"github.com/totobolto-dev/trashion-api/internal/logging"
)

// Cap on a single off-hours sleep so config changes and shutdowns are
// picked up at least hourly.
const maxOffHoursSleep = time.Hour

// Retry delay after a failed check.
const errorBackoff = time.Minute

// Monitor periodically refreshes the inventory during business hours and lets
// the Service handle diffing and notifications.
type Monitor struct {
	svc      *trashion.Service
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration)
}

// Option configures the monitor.
type Option func(*Monitor)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// WithSleeper overrides the sleep function (tests).
func WithSleeper(sleep func(ctx context.Context, d time.Duration)) Option {
	return func(m *Monitor) {
		m.sleep = sleep
	}
}

// New creates a Monitor around the service.
func New(svc *trashion.Service, interval time.Duration, opts ...Option) *Monitor {
	m := &Monitor{
		svc:      svc,
		interval: interval,
		logger:   logging.NewNop(),
		now:      time.Now,
		sleep:    sleepCtx,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run blocks until the context is cancelled. Outside business hours it sleeps
// toward the next opening (capped at one hour per nap); inside, it refreshes
// the inventory every interval. Errors are logged and retried, the loop never
// dies on its own.
func (m *Monitor) Run(ctx context.Context) error {
	hours := m.svc.Hours()
	m.logger.Info("monitoring started",
		"business_hours", hours.String(),
		"interval", m.interval,
		"notifications", m.svc.NotificationsEnabled(),
	)

	m.svc.SetMonitoring(true)
	defer m.svc.SetMonitoring(false)

	for {
		if err := ctx.Err(); err != nil {
			m.logger.Info("monitoring stopped")
			return err
		}

		now := m.now()
		if !hours.Within(now) {
			next := hours.NextStart(now)
			wait := next.Sub(now)
			if wait > maxOffHoursSleep {
				wait = maxOffHoursSleep
			}
			m.logger.Info("outside business hours",
				"next_start", next.Format("15:04"),
				"sleeping", wait.Round(time.Minute),
			)
			m.sleep(ctx, wait)
			continue
		}

		snap, sold, err := m.svc.Refresh(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			m.logger.Error("check failed", "err", err)
			m.sleep(ctx, errorBackoff)
			continue
		}

		m.logger.Info("check complete", "items", snap.Count, "sold", len(sold))
		m.sleep(ctx, m.interval)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
