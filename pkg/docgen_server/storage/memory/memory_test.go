package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage/memory"
)

type MemoryStorageTestSuite struct {
	suite.Suite
	ctx     context.Context
	storage storage.SnapshotStorage
}

func TestMemoryStorage(t *testing.T) {
	suite.Run(t, new(MemoryStorageTestSuite))
}

func (s *MemoryStorageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.NewStorage()
}

func (s *MemoryStorageTestSuite) TestPutAndGetSnapshot() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	snapshot := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       1,
		Record: model.ShipmentRecord{
			Exporter: model.Party{Name: "Acme Exports"},
		},
		UpdatedAt: time.Now().Unix(),
		UpdatedBy: "requester",
	}

	s.Require().NoError(s.storage.PutSnapshot(ctx, tx, snapshot))
	s.Require().NoError(tx.Commit(ctx))

	loaded, err := s.storage.GetSnapshot(ctx, tx, "app_id")
	s.Require().NoError(err)
	s.Assert().Equal(snapshot, loaded)
}

func (s *MemoryStorageTestSuite) TestPutSnapshotOverwrites() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	first := storage.Snapshot{ApplicationID: "app_id", Version: 1, UpdatedBy: "requester"}
	second := storage.Snapshot{ApplicationID: "app_id", Version: 2, UpdatedBy: "requester"}

	s.Require().NoError(s.storage.PutSnapshot(ctx, tx, first))
	s.Require().NoError(s.storage.PutSnapshot(ctx, tx, second))

	loaded, err := s.storage.GetSnapshot(ctx, tx, "app_id")
	s.Require().NoError(err)
	s.Assert().Equal(second, loaded)
}

func (s *MemoryStorageTestSuite) TestGetSnapshotEmptySlot() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = s.storage.GetSnapshot(ctx, tx, "missing_app")
	s.Require().ErrorIs(err, model.ErrSnapshotNotFound)
}
