package main

import (
	"github.com/monocle-dev/huddle/db"
	"github.com/monocle-dev/huddle/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "huddle",
	Short: "Room chat with schedules and project tracking",
	Long: `huddle serves room-scoped chat over websockets. Lines starting with a
command prefix create schedules, projects and tasks instead of chat messages.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// withRuntime loads config, builds the logger and opens the database, then
// runs fn and releases everything.
func withRuntime(fn func(cfg *config.Config, database *gorm.DB, logger *zap.Logger) error) error {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	database, err := db.ConnectDatabase(cfg)
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		return err
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	return fn(cfg, database, logger)
}
