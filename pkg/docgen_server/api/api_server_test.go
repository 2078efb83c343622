package api_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/api"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/docgen"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/snapshot"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage"
	"github.com/exportdocs/exportdocs/pkg/util"
	mock_docgen "github.com/exportdocs/exportdocs/test/mock/docgen_server/docgen"
	mock_snapshot "github.com/exportdocs/exportdocs/test/mock/docgen_server/snapshot"
)

type APITestSuite struct {
	suite.Suite

	ctx           context.Context
	ctrl          *gomock.Controller
	generatorCtrl *mock_docgen.MockGeneratorController
	snapshotMgr   *mock_snapshot.MockSnapshotManager

	basePortNumber int32
	localAddress   string
	api            *api.API
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupSuite() {
	s.basePortNumber = 9300
}

func (s *APITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.generatorCtrl = mock_docgen.NewMockGeneratorController(s.ctrl)
	s.snapshotMgr = mock_snapshot.NewMockSnapshotManager(s.ctrl)

	portNum := atomic.AddInt32(&s.basePortNumber, 1)
	s.localAddress = fmt.Sprintf("localhost:%d", portNum)
	api, err := api.NewAPIWithController(s.generatorCtrl, s.snapshotMgr, s.localAddress)
	s.Require().NoError(err)
	s.api = api
	go func() {
		s.api.Run()
	}()
	time.Sleep(100 * time.Millisecond)
}

func (s *APITestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.api.Close(s.ctx)
}

func sampleRecord() model.ShipmentRecord {
	return model.ShipmentRecord{
		Exporter:  model.Party{Name: "Acme Exports"},
		Consignee: model.Party{Name: "Globex Imports"},
		Shipment: model.ShipmentInfo{
			InvoiceNumber: "INV-2026-001",
			InvoiceDate:   model.NewDateFromStringNoError("2026-01-15"),
			Currency:      model.CurrencyUSD,
		},
		Items: []model.LineItem{
			{
				Description: "Widgets",
				Quantity:    model.NewDecimalFromInt(10),
				UnitPrice:   model.NewDecimalFromInt(125),
			},
		},
	}
}

func (s *APITestSuite) TestHealthCheck() {
	endPoint := fmt.Sprintf("http://%s/health", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodGet, endPoint, nil)
	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *APITestSuite) TestGenerateDocuments() {
	request := docgen.GenerateRequest{
		Record:    sampleRecord(),
		Documents: []docgen.DocumentID{docgen.DocCommercialInvoice, docgen.DocPackingList},
	}

	result := docgen.GenerateResult{
		HTML:          "<!DOCTYPE html><html></html>",
		DocumentCount: 2,
	}

	endPoint := fmt.Sprintf("http://%s/documents", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodPost, endPoint, util.StructToJSONReader(request))
	httpRequest.Header.Set("Content-Type", "application/json")

	s.generatorCtrl.EXPECT().Generate(gomock.Any(), request).Return(result, nil)

	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal("text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	s.Require().Equal("2", resp.Header.Get("X-Document-Count"))
	body, _ := io.ReadAll(resp.Body)
	s.Assert().Equal(result.HTML, string(body))
}

func (s *APITestSuite) TestGenerateDocumentsWithEmptySelection() {
	request := docgen.GenerateRequest{
		Record: sampleRecord(),
	}

	endPoint := fmt.Sprintf("http://%s/documents", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodPost, endPoint, util.StructToJSONReader(request))
	httpRequest.Header.Set("Content-Type", "application/json")

	s.generatorCtrl.EXPECT().Generate(gomock.Any(), request).Return(docgen.GenerateResult{}, model.ErrNoDocumentSelected)

	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APITestSuite) TestExportCSV() {
	request := docgen.ExportCSVRequest{
		Record: sampleRecord(),
	}

	result := docgen.ExportCSVResult{
		CSV: "EXPORTER INFORMATION\nname,Acme Exports\n",
	}

	endPoint := fmt.Sprintf("http://%s/export/csv", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodPost, endPoint, util.StructToJSONReader(request))
	httpRequest.Header.Set("Content-Type", "application/json")

	s.generatorCtrl.EXPECT().ExportCSV(gomock.Any(), request).Return(result, nil)

	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal("text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	s.Assert().Equal(result.CSV, string(body))
}

func (s *APITestSuite) TestSaveSnapshot() {
	request := snapshot.SaveSnapshotRequest{
		Requester: "requester",
		Record:    sampleRecord(),
	}

	expectedRequest := request
	expectedRequest.ApplicationID = "app_id"

	saved := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       1,
		Record:        request.Record,
		UpdatedAt:     time.Now().Unix(),
		UpdatedBy:     "requester",
	}

	endPoint := fmt.Sprintf("http://%s/snapshot/app_id", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodPut, endPoint, util.StructToJSONReader(request))
	httpRequest.Header.Set("Content-Type", "application/json")

	s.snapshotMgr.EXPECT().Save(gomock.Any(), gomock.Any(), expectedRequest).Return(saved, nil)

	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal("application/json", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	s.Assert().Equal(util.StructToJSON(saved), strings.TrimSpace(string(body)))
}

func (s *APITestSuite) TestLoadSnapshot() {
	saved := storage.Snapshot{
		ApplicationID: "app_id",
		Version:       2,
		Record:        sampleRecord(),
		UpdatedAt:     time.Now().Unix(),
		UpdatedBy:     "requester",
	}

	endPoint := fmt.Sprintf("http://%s/snapshot/app_id", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodGet, endPoint, nil)

	s.snapshotMgr.EXPECT().Load(gomock.Any(), snapshot.LoadSnapshotRequest{ApplicationID: "app_id"}).Return(saved, nil)

	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.Assert().Equal(util.StructToJSON(saved), strings.TrimSpace(string(body)))
}

func (s *APITestSuite) TestLoadSnapshotNotFound() {
	endPoint := fmt.Sprintf("http://%s/snapshot/missing_app", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodGet, endPoint, nil)

	s.snapshotMgr.EXPECT().Load(gomock.Any(), snapshot.LoadSnapshotRequest{ApplicationID: "missing_app"}).Return(storage.Snapshot{}, model.ErrSnapshotNotFound)

	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
}
