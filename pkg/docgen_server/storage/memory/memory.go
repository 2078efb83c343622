// Package memory provides an in-process SnapshotStorage. It backs the
// render CLI and tests where no database is available.
package memory

import (
	"context"
	"sync"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage"
)

type _Storage struct {
	mtx       sync.RWMutex
	snapshots map[string]storage.Snapshot
}

type _Tx struct{}

func NewStorage() *_Storage {
	return &_Storage{
		snapshots: make(map[string]storage.Snapshot),
	}
}

func (s *_Storage) CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error) {
	tx := &_Tx{}
	return tx, context.WithValue(ctx, storage.TRANSACTION, tx), nil
}

func (s *_Storage) PutSnapshot(ctx context.Context, tx storage.Tx, snapshot storage.Snapshot) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.snapshots[snapshot.ApplicationID] = snapshot
	return nil
}

func (s *_Storage) GetSnapshot(ctx context.Context, tx storage.Tx, applicationID string) (storage.Snapshot, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snapshot, ok := s.snapshots[applicationID]
	if !ok {
		return storage.Snapshot{}, model.ErrSnapshotNotFound
	}
	return snapshot, nil
}

func (tx *_Tx) Commit(ctx context.Context) error {
	return nil
}

func (tx *_Tx) Rollback(ctx context.Context) error {
	return nil
}

func (tx *_Tx) Exec(ctx context.Context, sql string, args ...any) (storage.Result, error) {
	return nil, nil
}

func (tx *_Tx) Query(ctx context.Context, sql string, args ...any) (storage.Rows, error) {
	return nil, nil
}

func (tx *_Tx) QueryRow(ctx context.Context, sql string, args ...any) storage.Row {
	return nil
}
