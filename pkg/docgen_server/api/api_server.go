package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/docgen"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/middleware"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/snapshot"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage/postgres"
	"github.com/exportdocs/exportdocs/pkg/util"
)

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
}

type API struct {
	generatorCtrl docgen.GeneratorController
	snapshotMgr   snapshot.SnapshotManager

	httpServer *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	generatorCtrl := docgen.NewGeneratorController(nil)
	snapshotMgr := snapshot.NewSnapshotManager(storage)
	api, err := NewAPIWithController(generatorCtrl, snapshotMgr, cfg.LocalAddress)
	if err != nil {
		return nil, err
	}

	return api, nil
}

func NewAPIWithController(generatorCtrl docgen.GeneratorController, snapshotMgr snapshot.SnapshotManager, localAddress string) (*API, error) {
	apiServer := &API{
		generatorCtrl: generatorCtrl,
		snapshotMgr:   snapshotMgr,
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.TimeTrace)
	r.HandleFunc("/health", apiServer.healthCheck).Methods(http.MethodGet)
	r.HandleFunc("/documents", apiServer.generateDocuments).Methods(http.MethodPost)
	r.HandleFunc("/export/csv", apiServer.exportCSV).Methods(http.MethodPost)
	r.HandleFunc("/snapshot/{application_id}", apiServer.saveSnapshot).Methods(http.MethodPut)
	r.HandleFunc("/snapshot/{application_id}", apiServer.loadSnapshot).Methods(http.MethodGet)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (a *API) generateDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req docgen.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.generatorCtrl.Generate(ctx, req)
	if err != nil {
		errCode := model.ErrorToHttpStatus(err)
		if errCode/100 == 5 {
			logrus.Errorf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		} else {
			logrus.Debugf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		}
		http.Error(w, err.Error(), errCode)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Document-Count", strconv.Itoa(result.DocumentCount))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.HTML)); err != nil {
		logrus.Warnf("generateDocuments failed to write response: %v", err)
	}
}

func (a *API) exportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req docgen.ExportCSVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.generatorCtrl.ExportCSV(ctx, req)
	if err != nil {
		errCode := model.ErrorToHttpStatus(err)
		logrus.Debugf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		http.Error(w, err.Error(), errCode)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shipment_data.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.CSV)); err != nil {
		logrus.Warnf("exportCSV failed to write response: %v", err)
	}
}

func (a *API) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appID := mux.Vars(r)["application_id"]

	var req snapshot.SaveSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ApplicationID = appID

	result, err := a.snapshotMgr.Save(ctx, time.Now().Unix(), req)
	if err != nil {
		errCode := model.ErrorToHttpStatus(err)
		if errCode/100 == 5 {
			logrus.Errorf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		} else {
			logrus.Debugf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		}
		http.Error(w, err.Error(), errCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("saveSnapshot failed to encode/write response: %v", err)
	}
}

func (a *API) loadSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appID := mux.Vars(r)["application_id"]

	result, err := a.snapshotMgr.Load(ctx, snapshot.LoadSnapshotRequest{ApplicationID: appID})
	if err != nil {
		errCode := model.ErrorToHttpStatus(err)
		if errCode/100 == 5 {
			logrus.Errorf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		} else {
			logrus.Debugf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
		}
		http.Error(w, err.Error(), errCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("loadSnapshot failed to encode/write response: %v", err)
	}
}
