package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "3000"
	DefaultDatabaseURL   = "sqlite:huddle.db"
	DefaultLocale        = "en"
	DefaultRedisPrefix   = "huddle:room:"
	EnvDevelopment       = "development"
	sqliteDatabasePrefix = "sqlite:"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	Domain         string
	ClientURL      string
	AllowedOrigins []string
	RedisAddr      string
	RedisPrefix    string
	Locale         string
	Timezone       string
	Env            string
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", DefaultDatabaseURL),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Domain:         os.Getenv("DOMAIN"),
		ClientURL:      os.Getenv("CLIENT_URL"),
		AllowedOrigins: parseList(os.Getenv("ALLOWED_ORIGINS")),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPrefix:    getEnv("REDIS_CHANNEL_PREFIX", DefaultRedisPrefix),
		Locale:         getEnv("APP_LOCALE", DefaultLocale),
		Timezone:       getEnv("APP_TIMEZONE", "Local"),
		Env:            os.Getenv("APP_ENV"),
	}
}

// SQLitePath reports whether DatabaseURL points at a sqlite file and returns its path.
func (c *Config) SQLitePath() (string, bool) {
	if strings.HasPrefix(c.DatabaseURL, sqliteDatabasePrefix) {
		return strings.TrimPrefix(c.DatabaseURL, sqliteDatabasePrefix), true
	}
	return "", false
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
