package main

import (
	"fmt"
	"os"

	"cablestats/internal/api"
	"cablestats/internal/config"
	"cablestats/internal/logging"
	"cablestats/internal/store"
	"cablestats/pkg/router"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addr    string
	dbPath  string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cablestats-api",
	Short: "Serve recorded cable stats runs over HTTP",
	Long: `Serves the run history written by cablestats as read-only JSON.

Endpoints:
  GET /api/v1/runs          all runs, newest first
  GET /api/v1/runs/{id}     one run with stats and unit warnings
  GET /api/v1/stats/latest  stats of the latest completed run
  GET /swagger/index.html   API documentation`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: serve,
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	rootCmd.Flags().StringVar(&dbPath, "db", config.Default().DBPath, "run history database")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func serve(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("run history not found: %w", err)
	}
	if err := store.InitDB(dbPath); err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer store.Close()

	r := router.New(logger)
	api.RegisterRoutes(r, logger)
	return r.Start(addr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
