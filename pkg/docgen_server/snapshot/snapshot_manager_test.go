package snapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/snapshot"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage"
	mock_storage "github.com/exportdocs/exportdocs/test/mock/docgen_server/storage"
)

type SnapshotManagerTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	storage *mock_storage.MockSnapshotStorage
	tx      *mock_storage.MockTx
	manager snapshot.SnapshotManager
}

func TestSnapshotManager(t *testing.T) {
	suite.Run(t, new(SnapshotManagerTestSuite))
}

func (s *SnapshotManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockSnapshotStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.manager = snapshot.NewSnapshotManager(s.storage)
}

func (s *SnapshotManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SnapshotManagerTestSuite) TestSaveFirstSnapshot() {
	ts := time.Now().Unix()

	req := snapshot.SaveSnapshotRequest{
		Requester:     "requester",
		ApplicationID: "app_id",
		Record: model.ShipmentRecord{
			Exporter: model.Party{Name: "Acme Exports"},
		},
	}

	expectedSnapshot := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       1,
		Record:        req.Record,
		UpdatedAt:     ts,
		UpdatedBy:     "requester",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetSnapshot(gomock.Any(), s.tx, "app_id").Return(storage.Snapshot{}, model.ErrSnapshotNotFound),
		s.storage.EXPECT().PutSnapshot(gomock.Any(), s.tx, expectedSnapshot).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.manager.Save(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal(expectedSnapshot, res)
}

func (s *SnapshotManagerTestSuite) TestSaveOverwritesSlot() {
	ts := time.Now().Unix()

	req := snapshot.SaveSnapshotRequest{
		Requester:     "requester",
		ApplicationID: "app_id",
		Record: model.ShipmentRecord{
			Exporter: model.Party{Name: "Acme Exports"},
		},
	}

	old := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       3,
		UpdatedAt:     ts - 100,
		UpdatedBy:     "someone_else",
	}

	expectedSnapshot := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       4,
		Record:        req.Record,
		UpdatedAt:     ts,
		UpdatedBy:     "requester",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetSnapshot(gomock.Any(), s.tx, "app_id").Return(old, nil),
		s.storage.EXPECT().PutSnapshot(gomock.Any(), s.tx, expectedSnapshot).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.manager.Save(s.ctx, ts, req)
	s.NoError(err)
	s.Assert().Equal(expectedSnapshot, res)
}

func (s *SnapshotManagerTestSuite) TestSaveWithInvalidRequest() {
	ts := time.Now().Unix()

	req := snapshot.SaveSnapshotRequest{
		Requester: "requester",
	}

	_, err := s.manager.Save(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
	s.Assert().Contains(err.Error(), "application_id")
}

func (s *SnapshotManagerTestSuite) TestLoad() {
	expectedSnapshot := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       2,
		Record: model.ShipmentRecord{
			Exporter: model.Party{Name: "Acme Exports"},
		},
		UpdatedAt: time.Now().Unix(),
		UpdatedBy: "requester",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetSnapshot(gomock.Any(), s.tx, "app_id").Return(expectedSnapshot, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	res, err := s.manager.Load(s.ctx, snapshot.LoadSnapshotRequest{ApplicationID: "app_id"})
	s.NoError(err)
	s.Assert().Equal(expectedSnapshot, res)
}

func (s *SnapshotManagerTestSuite) TestLoadEmptySlot() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().GetSnapshot(gomock.Any(), s.tx, "app_id").Return(storage.Snapshot{}, model.ErrSnapshotNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Load(s.ctx, snapshot.LoadSnapshotRequest{ApplicationID: "app_id"})
	s.Require().ErrorIs(err, model.ErrSnapshotNotFound)
}
