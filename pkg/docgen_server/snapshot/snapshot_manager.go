// Package snapshot manages the single saved copy of a shipment record
// each application keeps. Saving overwrites the slot and bumps its
// version.
package snapshot

import (
	"context"
	"database/sql"
	"errors"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage"
)

type SnapshotManager interface {
	Save(ctx context.Context, ts int64, req SaveSnapshotRequest) (storage.Snapshot, error)
	Load(ctx context.Context, req LoadSnapshotRequest) (storage.Snapshot, error)
}

type SaveSnapshotRequest struct {
	Requester     string               `json:"requester"`
	ApplicationID string               `json:"application_id"`
	Record        model.ShipmentRecord `json:"record"`
}

type LoadSnapshotRequest struct {
	ApplicationID string `json:"application_id"`
}

type _SnapshotManager struct {
	storage storage.SnapshotStorage
}

func NewSnapshotManager(storage storage.SnapshotStorage) SnapshotManager {
	return &_SnapshotManager{
		storage: storage,
	}
}

func (m *_SnapshotManager) Save(ctx context.Context, ts int64, req SaveSnapshotRequest) (storage.Snapshot, error) {
	err := ValidateSaveSnapshotRequest(req)
	if err != nil {
		return storage.Snapshot{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return storage.Snapshot{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// A snapshot may hold a half-filled form, so the record itself is
	// not validated here. Only the slot version needs the old value.
	old, err := m.storage.GetSnapshot(ctx, tx, req.ApplicationID)
	if err != nil && !errors.Is(err, model.ErrSnapshotNotFound) {
		return storage.Snapshot{}, err
	}

	snapshot := storage.Snapshot{
		ApplicationID: req.ApplicationID,
		Version:       old.Version + 1,
		Record:        req.Record,
		UpdatedAt:     ts,
		UpdatedBy:     req.Requester,
	}

	err = m.storage.PutSnapshot(ctx, tx, snapshot)
	if err != nil {
		return storage.Snapshot{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return storage.Snapshot{}, err
	}

	return snapshot, nil
}

func (m *_SnapshotManager) Load(ctx context.Context, req LoadSnapshotRequest) (storage.Snapshot, error) {
	err := ValidateLoadSnapshotRequest(req)
	if err != nil {
		return storage.Snapshot{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.Snapshot{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	snapshot, err := m.storage.GetSnapshot(ctx, tx, req.ApplicationID)
	if err != nil {
		return storage.Snapshot{}, err
	}

	return snapshot, nil
}
