package store

import (
	"context"
	"errors"

	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

// ErrSnapshotNotFound is returned when no snapshot has been persisted yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists the current and previous inventory snapshots.
// "Previous" is the baseline for sold-item detection; Promote copies the
// current snapshot into it after a comparison has been made.
type SnapshotStore interface {
	SaveCurrent(ctx context.Context, snap *scrape.Snapshot) error
	Current(ctx context.Context) (*scrape.Snapshot, error)
	Previous(ctx context.Context) (*scrape.Snapshot, error)
	Promote(ctx context.Context) error
}
