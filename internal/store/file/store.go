package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/totobolto-dev/trashion-api/internal/store"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

// File names match the original deployment so an existing data directory
// keeps working after an upgrade.
const (
	currentFile  = "inventory_data.json"
	previousFile = "inventory_previous.json"
)

// Store implements store.SnapshotStore on the local filesystem.
// Snapshots are stored as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a Store with the given base path.
// If basePath is empty, it defaults to the current directory.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = "."
	}
	return &Store{BasePath: basePath}
}

var _ store.SnapshotStore = (*Store)(nil)

// SaveCurrent persists the snapshot atomically: write to a temp file, fsync,
// then rename over the destination.
func (s *Store) SaveCurrent(ctx context.Context, snap *scrape.Snapshot) error {
	return s.write(currentFile, snap)
}

// Current returns the latest snapshot.
func (s *Store) Current(ctx context.Context) (*scrape.Snapshot, error) {
	return s.read(currentFile)
}

// Previous returns the sold-detection baseline.
func (s *Store) Previous(ctx context.Context) (*scrape.Snapshot, error) {
	return s.read(previousFile)
}

// Promote copies the current snapshot into the previous slot.
func (s *Store) Promote(ctx context.Context) error {
	snap, err := s.read(currentFile)
	if err != nil {
		return err
	}
	return s.write(previousFile, snap)
}

func (s *Store) read(name string) (*scrape.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.BasePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap scrape.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", name, err)
	}
	return &snap, nil
}

func (s *Store) write(name string, snap *scrape.Snapshot) error {
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure data directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, name)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+name+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}
