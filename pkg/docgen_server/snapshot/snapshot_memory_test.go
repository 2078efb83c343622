package snapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/snapshot"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage/memory"
)

// Exercises the manager against a real store instead of mocks.
func TestSnapshotManagerWithMemoryStorage(t *testing.T) {
	ctx := context.Background()
	manager := snapshot.NewSnapshotManager(memory.NewStorage())

	_, err := manager.Load(ctx, snapshot.LoadSnapshotRequest{ApplicationID: "app_id"})
	require.ErrorIs(t, err, model.ErrSnapshotNotFound)

	record := model.ShipmentRecord{
		Exporter: model.Party{Name: "Acme Exports"},
		Shipment: model.ShipmentInfo{InvoiceNumber: "INV-2026-001"},
	}

	ts := time.Now().Unix()
	saved, err := manager.Save(ctx, ts, snapshot.SaveSnapshotRequest{
		Requester:     "requester",
		ApplicationID: "app_id",
		Record:        record,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	record.Shipment.PONumber = "PO-555"
	saved, err = manager.Save(ctx, ts+10, snapshot.SaveSnapshotRequest{
		Requester:     "requester",
		ApplicationID: "app_id",
		Record:        record,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	loaded, err := manager.Load(ctx, snapshot.LoadSnapshotRequest{ApplicationID: "app_id"})
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
	assert.Equal(t, "PO-555", loaded.Record.Shipment.PONumber)
}
