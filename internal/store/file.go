package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"eventdirectory/internal/domain"
)

type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a SnapshotStore backed by a single JSON document at
// path. A missing file loads as an empty snapshot; the directory is created on
// first save.
func NewFileStore(path string) domain.SnapshotStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileStore) load() (*domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return DecodeSnapshot(raw)
}

// Update holds the store lock for the whole load-mutate-save cycle, so each
// logical write is one atomic replace for every caller of this store instance.
func (s *fileStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	raw, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}
