package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totobolto-dev/trashion-api/internal/store"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewFromClient(client, opts...), mr
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	snap := &scrape.Snapshot{ID: "run-1", IDs: []string{"1001", "1002"}, Count: 2}
	require.NoError(t, s.SaveCurrent(ctx, snap))

	got, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.IDs, got.IDs)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Current(ctx)
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
	assert.ErrorIs(t, s.Promote(ctx), store.ErrSnapshotNotFound)
}

func TestStore_Promote(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveCurrent(ctx, &scrape.Snapshot{ID: "run-1", IDs: []string{"1001", "1002"}}))
	require.NoError(t, s.Promote(ctx))
	require.NoError(t, s.SaveCurrent(ctx, &scrape.Snapshot{ID: "run-2", IDs: []string{"1002"}}))

	prev, err := s.Previous(ctx)
	require.NoError(t, err)
	curr, err := s.Current(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"1001"}, scrape.Sold(prev, curr))
}

func TestStore_TTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, WithTTL(time.Minute), WithPrefix("test:"))

	require.NoError(t, s.SaveCurrent(ctx, &scrape.Snapshot{ID: "run-1"}))

	ttl := mr.TTL("test:current")
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	_, err := s.Current(ctx)
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
}
