package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventdirectory/internal/domain"
)

func TestPostgresStore_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		wantEvents int
		wantErr    bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				doc := `{"events": [{"slug": "gophercon", "name": "GopherCon"}]}`
				mock.ExpectQuery(`SELECT document FROM snapshots WHERE name = \$1`).
					WithArgs("directory").
					WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(doc)))
			},
			wantEvents: 1,
		},
		{
			name: "missing row loads empty snapshot",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT document FROM snapshots`).
					WithArgs("directory").
					WillReturnError(sql.ErrNoRows)
			},
			wantEvents: 0,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT document FROM snapshots`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			s := NewPostgresStore(db, "")
			snap, err := s.Load(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, snap.Events, tt.wantEvents)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_Update(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT document FROM snapshots WHERE name = \$1 FOR UPDATE`).
		WithArgs("directory").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO snapshots \(name, document\)`).
		WithArgs("directory", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := NewPostgresStore(db, "directory")
	err = s.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Events = append(snap.Events, &domain.Event{Slug: "gophercon", Name: "GopherCon"})
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateMutationErrorRollsBack(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT document FROM snapshots WHERE name = \$1 FOR UPDATE`).
		WithArgs("directory").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(`{}`)))
	mock.ExpectRollback()

	s := NewPostgresStore(db, "directory")
	err = s.Update(ctx, func(snap *domain.Snapshot) error {
		return domain.NewValidationError("rejected")
	})
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
