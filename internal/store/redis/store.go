package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/totobolto-dev/trashion-api/internal/store"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

// Store implements store.SnapshotStore on Redis. Suited for deployments with
// an ephemeral filesystem, where snapshots must outlive a dyno restart.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored snapshots. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "trashion:inventory:",
		ttl:    0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ store.SnapshotStore = (*Store)(nil)

func (s *Store) currentKey() string  { return s.prefix + "current" }
func (s *Store) previousKey() string { return s.prefix + "previous" }

// SaveCurrent persists the snapshot under the current key.
func (s *Store) SaveCurrent(ctx context.Context, snap *scrape.Snapshot) error {
	return s.set(ctx, s.currentKey(), snap)
}

// Current returns the latest snapshot.
func (s *Store) Current(ctx context.Context) (*scrape.Snapshot, error) {
	return s.get(ctx, s.currentKey())
}

// Previous returns the sold-detection baseline.
func (s *Store) Previous(ctx context.Context) (*scrape.Snapshot, error) {
	return s.get(ctx, s.previousKey())
}

// Promote copies the current snapshot into the previous slot.
func (s *Store) Promote(ctx context.Context) error {
	snap, err := s.get(ctx, s.currentKey())
	if err != nil {
		return err
	}
	return s.set(ctx, s.previousKey(), snap)
}

func (s *Store) set(ctx context.Context, key string, snap *scrape.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot to redis: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (*scrape.Snapshot, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot from redis: %w", err)
	}

	var snap scrape.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot at %s: %w", key, err)
	}
	return &snap, nil
}
