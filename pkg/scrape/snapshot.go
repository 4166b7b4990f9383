package scrape

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the result of one full inventory scrape.
// IDs are the 4-digit item identifiers found on the storefront, sorted ascending.
type Snapshot struct {
	ID        string    `json:"id"`
	IDs       []string  `json:"ids"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
	Clicks    int       `json:"clicks"`
	FromCache bool      `json:"from_cache"`
	CacheAge  int       `json:"cache_age_seconds,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// NewSnapshot builds a snapshot from a set of extracted IDs.
// It assigns a fresh run ID and stamps the current time.
func NewSnapshot(ids []string, clicks int) *Snapshot {
	return &Snapshot{
		ID:        uuid.NewString(),
		IDs:       ids,
		Count:     len(ids),
		Timestamp: time.Now(),
		Clicks:    clicks,
	}
}

// Age returns how long ago the snapshot was taken.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.Timestamp)
}
