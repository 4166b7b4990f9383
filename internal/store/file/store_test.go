package file

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totobolto-dev/trashion-api/internal/store"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	snap := &scrape.Snapshot{
		ID:        "run-1",
		IDs:       []string{"1001", "1002"},
		Count:     2,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Clicks:    3,
	}

	require.NoError(t, s.SaveCurrent(ctx, snap))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.IDs, got.IDs)
	assert.Equal(t, snap.Clicks, got.Clicks)
	assert.True(t, snap.Timestamp.Equal(got.Timestamp))
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	_, err := s.Current(ctx)
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)

	_, err = s.Previous(ctx)
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)

	assert.ErrorIs(t, s.Promote(ctx), store.ErrSnapshotNotFound)
}

func TestStore_Promote(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	first := &scrape.Snapshot{ID: "run-1", IDs: []string{"1001", "1002"}, Count: 2}
	require.NoError(t, s.SaveCurrent(ctx, first))
	require.NoError(t, s.Promote(ctx))

	second := &scrape.Snapshot{ID: "run-2", IDs: []string{"1001"}, Count: 1}
	require.NoError(t, s.SaveCurrent(ctx, second))

	prev, err := s.Previous(ctx)
	require.NoError(t, err)
	curr, err := s.Current(ctx)
	require.NoError(t, err)

	assert.Equal(t, "run-1", prev.ID)
	assert.Equal(t, "run-2", curr.ID)
	assert.Equal(t, []string{"1002"}, scrape.Sold(prev, curr))
}

func TestStore_OverwriteIsAtomicEnough(t *testing.T) {
	// Re-saving must fully replace the file, never append or truncate partially.
	ctx := context.Background()
	s := New(t.TempDir())

	big := &scrape.Snapshot{ID: "big", IDs: make([]string, 500)}
	for i := range big.IDs {
		big.IDs[i] = "1000"
	}
	require.NoError(t, s.SaveCurrent(ctx, big))

	small := &scrape.Snapshot{ID: "small", IDs: []string{"1001"}}
	require.NoError(t, s.SaveCurrent(ctx, small))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "small", got.ID)
	assert.Len(t, got.IDs, 1)
}
