package main

import (
	"context"
	"fmt"
	"os"

	"cablestats/internal/config"
	"cablestats/internal/logging"
	"cablestats/internal/pipeline"
	"cablestats/internal/store"
	"cablestats/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := logging.New(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	cfg := config.Default()

	tracker := openTracker(cfg, logger)
	defer store.Close()

	if _, err := pipeline.Run(context.Background(), pipeline.Options{
		Config:  cfg,
		Logger:  logger,
		Tracker: tracker,
		Report:  os.Stdout,
	}); err != nil {
		logger.Error("❌ Run failed", zap.Error(err))
		return 1
	}
	return 0
}

// openTracker records the run in the history database. Without a usable
// database the run still proceeds, untracked.
func openTracker(cfg config.Config, logger *zap.Logger) pipeline.Tracker {
	if cfg.DBPath == "" {
		return nil
	}
	if err := utils.NewOutputManager(cfg.DataDir).EnsureOutputDirExists(); err != nil {
		logger.Warn("run history disabled", zap.Error(err))
		return nil
	}
	if err := store.InitDB(cfg.DBPath); err != nil {
		logger.Warn("run history disabled", zap.String("db", cfg.DBPath), zap.Error(err))
		return nil
	}

	tracker, err := store.NewRunTracker(cfg.ManifestPath)
	if err != nil {
		logger.Warn("run history disabled", zap.Error(err))
		return nil
	}
	logger.Info("📝 Run registered", zap.String("run_id", tracker.RunID))
	return tracker
}
