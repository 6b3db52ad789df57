package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"eventdirectory/internal/domain"
)

// DefaultSnapshotName is the document key used when none is configured.
const DefaultSnapshotName = "directory"

type postgresStore struct {
	db   *sql.DB
	name string
}

// NewPostgresStore returns a SnapshotStore that keeps the whole document as a
// single jsonb row in the snapshots table, keyed by name. The read-whole /
// write-whole discipline is unchanged; Update serializes writers with a
// row-locking transaction instead of an in-process mutex, so it also holds
// across processes sharing the database.
func NewPostgresStore(db *sql.DB, name string) domain.SnapshotStore {
	if name == "" {
		name = DefaultSnapshotName
	}
	return &postgresStore{db: db, name: name}
}

// EnsureSchema creates the snapshots table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			name     text PRIMARY KEY,
			document jsonb NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

func (s *postgresStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT document FROM snapshots WHERE name = $1`
	var raw []byte
	err := s.db.QueryRowContext(ctx, query, s.name).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return DecodeSnapshot(raw)
}

func (s *postgresStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `SELECT document FROM snapshots WHERE name = $1 FOR UPDATE`
	var raw []byte
	err = tx.QueryRowContext(ctx, query, s.name).Scan(&raw)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lock snapshot: %w", err)
	}

	snap, err := DecodeSnapshot(raw)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	encoded, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	upsert := `
		INSERT INTO snapshots (name, document)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document
	`
	if _, err := tx.ExecContext(ctx, upsert, s.name, encoded); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot update: %w", err)
	}
	return nil
}
