package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"eventdirectory/internal/domain"
)

// memStore is an in-memory SnapshotStore for tests. Update works on a copy and
// commits only when the mutation succeeds, matching the real stores.
type memStore struct {
	snap *domain.Snapshot
	err  error
}

func newMemStore(t *testing.T, snap *domain.Snapshot) *memStore {
	t.Helper()
	if snap == nil {
		snap = domain.NewSnapshot()
	}
	return &memStore{snap: snap}
}

func (m *memStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return copySnapshot(m.snap), nil
}

func (m *memStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	if m.err != nil {
		return m.err
	}
	work := copySnapshot(m.snap)
	if err := fn(work); err != nil {
		return err
	}
	m.snap = work
	return nil
}

func copySnapshot(snap *domain.Snapshot) *domain.Snapshot {
	raw, err := json.Marshal(snap)
	if err != nil {
		panic(err)
	}
	out := domain.NewSnapshot()
	if err := json.Unmarshal(raw, out); err != nil {
		panic(err)
	}
	return out
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err), "expected ValidationError, got %v", err)
}
