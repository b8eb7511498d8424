package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apiserver "github.com/ocrdiff/ocrdiff/internal/api_server"
	"github.com/ocrdiff/ocrdiff/internal/config"
	"github.com/ocrdiff/ocrdiff/internal/engine"
	"github.com/ocrdiff/ocrdiff/internal/fileio"
	"github.com/ocrdiff/ocrdiff/internal/service"
	"github.com/ocrdiff/ocrdiff/internal/store"
	"github.com/ocrdiff/ocrdiff/pkg/log"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ocrdiff api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		engines, err := buildEngines(cfg)
		if err != nil {
			zap.S().Fatalf("building engines: %v", err)
		}

		active := engine.InitializeAll(ctx, engines)
		if len(active) == 0 {
			zap.S().Fatal("no recognition engine could be initialized")
		}
		defer engine.CleanupAll(active)

		s := store.NewStore()
		defer s.Close()

		uploads := fileio.NewUploads(cfg.Service.UploadFolder)
		if err := uploads.EnsureRoot(); err != nil {
			zap.S().Fatalf("creating upload folder: %v", err)
		}

		taskSrv := service.NewTaskService(s, engine.NewRunner(active), uploads)

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalf("creating listener: %s", err)
			}

			server := apiserver.New(cfg, taskSrv, listener)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalf("Error running server: %s", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalf("creating metrics listener: %s", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalf("Error running metrics server: %s", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func buildEngines(cfg *config.Config) ([]engine.Engine, error) {
	var engines []engine.Engine

	if cfg.Engines.EnableTesseract {
		engines = append(engines, engine.NewTesseractEngine(cfg.Engines.TesseractLanguages))
	}

	if cfg.Engines.ManifestPath != "" {
		manifest, err := engine.LoadManifest(cfg.Engines.ManifestPath)
		if err != nil {
			return nil, err
		}
		configured, err := manifest.Build()
		if err != nil {
			return nil, err
		}
		engines = append(engines, configured...)
	}

	return engines, nil
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
