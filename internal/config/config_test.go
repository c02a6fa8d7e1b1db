package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_LOCALE", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := LoadConfig()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultRedisPrefix, cfg.RedisPrefix)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("APP_LOCALE", "ko")
	t.Setenv("APP_ENV", "development")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "ko", cfg.Locale)
	assert.True(t, cfg.IsDevelopment())
}

func TestSQLitePath(t *testing.T) {
	cfg := &Config{DatabaseURL: "sqlite:/tmp/huddle.db"}
	path, ok := cfg.SQLitePath()
	require.True(t, ok)
	assert.Equal(t, "/tmp/huddle.db", path)

	cfg.DatabaseURL = "host=db user=huddle dbname=huddle"
	_, ok = cfg.SQLitePath()
	assert.False(t, ok)
}
