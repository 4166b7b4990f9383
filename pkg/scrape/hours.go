package scrape

import (
	"fmt"
	"time"
)

// Hours is the business-hours window during which live scraping is allowed.
// The window is [Start, End) in the configured location.
type Hours struct {
	Start    int
	End      int
	Location *time.Location
}

// NewHours builds a business-hours window for the given timezone.
func NewHours(start, end int, timezone string) (Hours, error) {
	if start < 0 || start > 23 || end < 0 || end > 24 {
		return Hours{}, fmt.Errorf("invalid business hours: %d-%d", start, end)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Hours{}, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return Hours{Start: start, End: end, Location: loc}, nil
}

// Within reports whether t falls inside the business-hours window.
func (h Hours) Within(t time.Time) bool {
	if h.Location == nil {
		// No window configured: always open.
		return true
	}
	hour := t.In(h.Location).Hour()
	return hour >= h.Start && hour < h.End
}

// NextStart returns the next opening time after t.
// If t is past today's closing hour, the opening rolls over to tomorrow.
func (h Hours) NextStart(t time.Time) time.Time {
	local := t.In(h.Location)
	next := time.Date(local.Year(), local.Month(), local.Day(), h.Start, 0, 0, 0, h.Location)
	if local.Hour() >= h.End {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// String renders the window as "12:00-19:00 Europe/Helsinki".
func (h Hours) String() string {
	name := "Local"
	if h.Location != nil {
		name = h.Location.String()
	}
	return fmt.Sprintf("%02d:00-%02d:00 %s", h.Start, h.End, name)
}
