package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medebd/medicine-api/catalogparser"
	"github.com/medebd/medicine-api/config"
	"github.com/medebd/medicine-api/data"
	"github.com/medebd/medicine-api/logging"
	"github.com/medebd/medicine-api/scheduler"
	"github.com/medebd/medicine-api/server"
)

func main() {
	// .env is optional, real deployments use environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogRetentionWeeks)

	store := data.NewContainer()
	store.SetServerStartTime(time.Now())

	loader := catalogparser.NewLoader(cfg.DataDir)

	sched := scheduler.NewScheduler(store, loader)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start catalog scheduler", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, store)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logging.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		logging.Info("Received shutdown signal", "signal", sig.String())
	}

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
