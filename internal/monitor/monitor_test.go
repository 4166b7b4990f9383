package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trashion "github.com/totobolto-dev/trashion-api"
	filestore "github.com/totobolto-dev/trashion-api/internal/store/file"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

type countingScraper struct {
	calls int
	stop  context.CancelFunc
	after int
}

func (c *countingScraper) Scrape(ctx context.Context) (*scrape.Snapshot, error) {
	c.calls++
	if c.calls >= c.after {
		c.stop()
	}
	return &scrape.Snapshot{ID: "run", IDs: []string{"1001"}, Count: 1, Timestamp: time.Now()}, nil
}

func TestMonitor_RefreshesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, err := scrape.NewHours(0, 24, "UTC")
	require.NoError(t, err)

	scraper := &countingScraper{stop: cancel, after: 3}
	svc := trashion.NewService(scraper, filestore.New(t.TempDir()), trashion.WithHours(h))

	m := New(svc, time.Millisecond)
	err = m.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, scraper.calls, 3)
	assert.False(t, svc.Monitoring(), "monitoring flag resets on exit")
}

type failingScraper struct {
	calls int
}

func (f *failingScraper) Scrape(ctx context.Context) (*scrape.Snapshot, error) {
	f.calls++
	return nil, errors.New("browser crashed")
}

func TestMonitor_RetriesAfterError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, err := scrape.NewHours(0, 24, "UTC")
	require.NoError(t, err)

	scraper := &failingScraper{}
	svc := trashion.NewService(scraper, filestore.New(t.TempDir()), trashion.WithHours(h))

	var slept []time.Duration
	m := New(svc, time.Minute,
		WithSleeper(func(ctx context.Context, d time.Duration) {
			slept = append(slept, d)
			if len(slept) == 2 {
				cancel()
			}
		}),
	)

	err = m.Run(ctx)

	// Failed checks back off and retry; the loop only ends with the context.
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, scraper.calls, "failed check is retried")
	require.Len(t, slept, 2)
	for _, d := range slept {
		assert.Equal(t, errorBackoff, d)
	}
	assert.False(t, svc.Monitoring(), "monitoring flag resets on exit")
}

func TestMonitor_SleepsOutsideHours(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, err := scrape.NewHours(12, 19, "Europe/Helsinki")
	require.NoError(t, err)
	frozen := time.Date(2026, 8, 20, 3, 0, 0, 0, h.Location)

	scraper := &countingScraper{stop: cancel, after: 1}
	svc := trashion.NewService(scraper, filestore.New(t.TempDir()),
		trashion.WithHours(h),
		trashion.WithClock(func() time.Time { return frozen }),
	)

	var slept []time.Duration
	m := New(svc, time.Minute,
		WithClock(func() time.Time { return frozen }),
		WithSleeper(func(ctx context.Context, d time.Duration) {
			slept = append(slept, d)
			cancel() // one nap is enough for the test
		}),
	)

	err = m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, scraper.calls, "no scrapes outside business hours")
	require.Len(t, slept, 1)
	assert.Equal(t, maxOffHoursSleep, slept[0], "off-hours naps are capped at one hour")
}
