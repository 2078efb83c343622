package storage

import (
	"context"
	"database/sql"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// Snapshot is one saved copy of a shipment record. Each application
// owns a single slot which is overwritten on every save.
type Snapshot struct {
	ApplicationID string               `json:"application_id"` // Owner of the slot.
	Version       int64                `json:"version"`        // Bumped on every save.
	Record        model.ShipmentRecord `json:"record"`         // The saved form state.
	UpdatedAt     int64                `json:"updated_at"`     // Unix timestamp of the save.
	UpdatedBy     string               `json:"updated_by"`     // Requester of the save.
}

type SnapshotStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// PutSnapshot overwrites the slot owned by snapshot.ApplicationID.
	PutSnapshot(ctx context.Context, tx Tx, snapshot Snapshot) error

	// GetSnapshot returns model.ErrSnapshotNotFound when the slot is
	// empty.
	GetSnapshot(ctx context.Context, tx Tx, applicationID string) (Snapshot, error)
}
