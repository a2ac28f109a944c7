package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	slogger := logger.Setup(configs.AppEnv)

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, slogger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := startWebServer(ctx, app, configs.HTTPPort); err != nil {
		slogger.Error("Web server stopped", "error", err)
	}

	jobManager.StopAll()
	if err := app.Close(); err != nil {
		slogger.Error("Failed to release resources", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slogger.Info("Shutdown complete")
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
