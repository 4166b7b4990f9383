package presentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	trashion "github.com/totobolto-dev/trashion-api"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

func TestStatusReport(t *testing.T) {
	st := trashion.Status{
		BusinessHours: "12:00-19:00 Europe/Helsinki",
		WithinHours:   true,
		Notifications: false,
	}

	t.Run("Without Snapshot", func(t *testing.T) {
		out := StatusReport(st, nil)
		assert.Contains(t, out, "No snapshot yet")
		assert.Contains(t, out, "12:00-19:00 Europe/Helsinki")
	})

	t.Run("With Snapshot", func(t *testing.T) {
		snap := &scrape.Snapshot{
			Count:     42,
			Timestamp: time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			Clicks:    7,
			Note:      "cached",
		}
		out := StatusReport(st, snap)
		assert.Contains(t, out, "**Items:** 42")
		assert.Contains(t, out, "**Load More clicks:** 7")
		assert.Contains(t, out, "cached")
	})
}
