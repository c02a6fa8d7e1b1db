package main

import (
	"github.com/monocle-dev/huddle/db"
	"github.com/monocle-dev/huddle/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(_ *config.Config, database *gorm.DB, logger *zap.Logger) error {
			if err := db.MigrateDatabase(database); err != nil {
				logger.Error("migration failed", zap.Error(err))
				return err
			}
			logger.Info("database migrated")
			return nil
		})
	},
}
