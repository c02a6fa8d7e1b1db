package db

import (
	"testing"

	"github.com/monocle-dev/huddle/internal/config"
	"github.com/monocle-dev/huddle/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDatabase_SQLiteAndMigrate(t *testing.T) {
	gdb, err := ConnectDatabase(&config.Config{DatabaseURL: "sqlite::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.NoError(t, MigrateDatabase(gdb))
	require.NoError(t, MigrateDatabase(gdb), "migrations must be repeatable")

	migrator := gdb.Migrator()
	for _, model := range []interface{}{&models.User{}, &models.Message{}, &models.Schedule{}, &models.Project{}} {
		assert.True(t, migrator.HasTable(model), "%T", model)
	}
	assert.True(t, migrator.HasIndex(&models.Project{}, "idx_projects_room_name"))
}
