// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string

	HTTPPort string

	// DBPath is the sqlite database file used by default. When PostgresDSN
	// is set it takes precedence and sqlite is not opened.
	DBPath      string
	PostgresDSN string

	NotificationsPath string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads HH_* variables from the process environment. A .env file in
// HH_CONFIG_DIR (or the working directory) is loaded first when present;
// real environment variables win over file values.
func Load() (Config, error) {
	dir := os.Getenv("HH_CONFIG_DIR")
	envFile := ".env"
	if dir != "" {
		envFile = filepath.Join(dir, ".env")
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		ServiceName:       envOr("HH_SERVICE_NAME", "herobanner"),
		HTTPPort:          envOr("HH_HTTP_PORT", "8080"),
		DBPath:            envOr("HH_DB_PATH", "hometown_hero.db"),
		PostgresDSN:       os.Getenv("HH_POSTGRES_DSN"),
		NotificationsPath: envOr("HH_NOTIFICATIONS_PATH", "notifications.txt"),
		SMTPHost:          os.Getenv("HH_SMTP_HOST"),
		SMTPPort:          envOr("HH_SMTP_PORT", "587"),
		SMTPUsername:      os.Getenv("HH_SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("HH_SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("HH_SMTP_FROM"),
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
