package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Selector of the storefront's paging button.
const loadMoreSelector = ".wpgb-load-more"

// Scraper drives a headless Chromium session against the storefront and
// extracts the full inventory, clicking "Load More" until exhausted.
type Scraper struct {
	url         string
	maxClicks   int
	settleDelay time.Duration
	headless    bool
	logger      *slog.Logger
}

// Option configures the scraper.
type Option func(*Scraper)

// WithMaxClicks caps the number of "Load More" clicks per run.
func WithMaxClicks(n int) Option {
	return func(s *Scraper) {
		s.maxClicks = n
	}
}

// WithSettleDelay sets how long to wait after each click for items to load.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Scraper) {
		s.settleDelay = d
	}
}

// WithHeadless toggles headless mode (on by default).
func WithHeadless(headless bool) Option {
	return func(s *Scraper) {
		s.headless = headless
	}
}

// WithLogger sets the logger for scrape progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// New creates a Scraper for the given storefront URL.
func New(url string, opts ...Option) *Scraper {
	s := &Scraper{
		url:         url,
		maxClicks:   20,
		settleDelay: 2 * time.Second,
		headless:    true,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape runs one full inventory pass and returns the resulting snapshot.
// The Playwright driver must already be installed (see pkg/provision).
func (s *Scraper) Scrape(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	s.logger.Info("starting scrape", "url", s.url)

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright driver: %w", err)
	}
	defer pw.Stop() //nolint:errcheck

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.headless),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close() //nolint:errcheck

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if _, err := page.Goto(s.url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.url, err)
	}
	s.sleep(ctx, s.settleDelay)

	var all []string
	clicks := 0

	for clicks < s.maxClicks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := page.Content()
		if err != nil {
			return nil, fmt.Errorf("failed to read page content: %w", err)
		}
		before := len(all)
		all = MergeIDs(all, ExtractIDs(html))
		s.logger.Debug("page pass", "clicks", clicks, "new_items", len(all)-before, "total", len(all))

		loadMore := page.Locator(loadMoreSelector)
		visible, err := loadMore.IsVisible()
		if err != nil || !visible {
			// Button gone: everything is loaded.
			break
		}

		if err := loadMore.Click(); err != nil {
			// The button can disappear between the visibility check and the
			// click when the last page loads; treat that as completion.
			s.logger.Debug("load more click failed, assuming done", "err", err)
			break
		}
		clicks++
		s.sleep(ctx, s.settleDelay)
	}

	// Final pass picks up items rendered after the last click.
	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read final page content: %w", err)
	}
	all = MergeIDs(all, ExtractIDs(html))

	snap := NewSnapshot(all, clicks)
	s.logger.Info("scrape complete",
		"items", snap.Count,
		"clicks", clicks,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return snap, nil
}

// sleep waits for d or until the context is cancelled.
func (s *Scraper) sleep(ctx context.Context, d time.Duration) {
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
