package services

import (
	"context"
	"strings"

	"eventdirectory/internal/domain"
)

type userDirectory struct {
	store domain.SnapshotStore
}

// NewUserDirectory creates a read-only UserDirectory over the snapshot store.
// Users are seeded externally; the directory never writes them.
func NewUserDirectory(store domain.SnapshotStore) domain.UserDirectory {
	return &userDirectory{store: store}
}

func (d *userDirectory) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range snap.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (d *userDirectory) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	lookup := strings.ToLower(strings.TrimSpace(email))
	snap, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range snap.Users {
		if strings.ToLower(u.Email) == lookup {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}
