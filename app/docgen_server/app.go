package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/exportdocs/exportdocs/pkg/config"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/api"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/docgen"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/export"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/util"
)

const appName string = "docgen-server"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the server"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Render struct {
		Input  string `short:"i" long:"input" help:"Path to the shipment record JSON file" type:"existingfile" required:""`
		Output string `short:"o" long:"output" help:"Path of the generated HTML file" default:"documents.html"`
		CSV    string `long:"csv" help:"Also write the sectioned CSV export to this path"`
		Docs   string `short:"d" long:"docs" help:"Comma separated document identifiers. Defaults to the default selection"`
	} `cmd:"" help:"Render documents from a shipment record file"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Server   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

type App struct{}

func (a *App) Run() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	case "render":
		a.runRender(cli)
	default:
	}
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()

	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	apiConfig := api.APIConfig{
		Database:     appConfig.Database,
		LocalAddress: net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port)),
	}
	apiServer, err := api.NewAPIWithConfig(apiConfig)
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runMigrate(cli CLI) {
	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	// setup database connection
	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	// create the database if it doesn't exist
	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	// run the migrations
	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}

func (a *App) runRender(cli CLI) {
	ctx := context.Background()

	raw, err := os.ReadFile(cli.Render.Input)
	if err != nil {
		logrus.Errorf("failed to read input file: %v", err)
		os.Exit(128)
	}

	var record model.ShipmentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		logrus.Errorf("failed to parse shipment record: %v", err)
		os.Exit(128)
	}

	documents := docgen.DefaultSelection()
	if cli.Render.Docs != "" {
		documents = documents[:0]
		for _, id := range strings.Split(cli.Render.Docs, ",") {
			documents = append(documents, docgen.DocumentID(strings.TrimSpace(id)))
		}
	}

	generatorCtrl := docgen.NewGeneratorController(nil)
	result, err := generatorCtrl.Generate(ctx, docgen.GenerateRequest{
		Record:    record,
		Documents: documents,
	})
	if err != nil {
		logrus.Errorf("failed to generate documents: %v", err)
		os.Exit(1)
	}

	if err := os.WriteFile(cli.Render.Output, []byte(result.HTML), 0644); err != nil {
		logrus.Errorf("failed to write output file: %v", err)
		os.Exit(1)
	}
	logrus.Infof("wrote %d document(s) to %s", result.DocumentCount, cli.Render.Output)

	if cli.Render.CSV != "" {
		if err := os.WriteFile(cli.Render.CSV, []byte(export.MarshalShipmentCSV(record)), 0644); err != nil {
			logrus.Errorf("failed to write CSV file: %v", err)
			os.Exit(1)
		}
		logrus.Infof("wrote CSV export to %s", cli.Render.CSV)
	}
}
