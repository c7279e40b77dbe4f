package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-dashboard/internal/pkg/config"
	"github.com/FACorreiaa/go-dashboard/internal/server"
	"github.com/FACorreiaa/go-dashboard/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.Observability.LogLevel),
		zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	otelShutdown, err := server.InitObservability(cfg.Observability, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv := server.New(cfg, logger.Log)
	srv.SetRouter(server.SetupRouter(cfg, logger.Log))

	httpServer := srv.HTTPServer()
	pprofServer := server.NewPprofServer(cfg.Observability.PprofAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return server.ServePprof(pprofServer, logger.Log)
	})
	g.Go(func() error {
		// Second Ctrl+C kills the process instead of waiting on shutdown.
		<-gctx.Done()
		stop()
		return server.GracefulShutdown(gctx, logger.Log, httpServer, pprofServer)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("Graceful shutdown complete")
	return nil
}
