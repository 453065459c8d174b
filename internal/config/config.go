// Package config resolves runtime configuration from the environment,
// with optional .env file support.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/example/revtrack/pkg/models"
)

// Storage backends.
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults.
const (
	DefaultDataFile     = "data/topics.json"
	DefaultDatabasePath = "data/revtrack.db"
	DefaultReminderHour = 9
)

// Config holds everything the commands need to run.
type Config struct {
	// Storage selects the backend: file (default), sqlite or postgres.
	Storage string
	// DataFile is the topics JSON file used by the file backend.
	DataFile string
	// DatabasePath is the SQLite file used by the sqlite backend.
	DatabasePath string
	// DatabaseURL is the connection URL used by the postgres backend.
	DatabaseURL string
	// TelegramToken and TelegramChatID enable Telegram reminders when both set.
	TelegramToken  string
	TelegramChatID int64
	// ReminderHour is the hour of day (0-23) the remind daemon sends digests.
	ReminderHour int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; a missing one is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Storage:       getEnv("REVTRACK_STORAGE", StorageFile),
		DataFile:      getEnv("REVTRACK_DATA_FILE", DefaultDataFile),
		DatabasePath:  getEnv("REVTRACK_DB_PATH", DefaultDatabasePath),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ReminderHour:  DefaultReminderHour,
	}

	switch cfg.Storage {
	case StorageFile, StorageSQLite, StoragePostgres:
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", models.ErrMalformedInput, cfg.Storage)
	}

	if cfg.Storage == StoragePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%w: postgres storage requires DATABASE_URL", models.ErrMalformedInput)
	}

	if s := os.Getenv("TELEGRAM_CHAT_ID"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid TELEGRAM_CHAT_ID %q", models.ErrMalformedInput, s)
		}
		cfg.TelegramChatID = id
	}

	if s := os.Getenv("REVTRACK_REMINDER_HOUR"); s != "" {
		h, err := strconv.Atoi(s)
		if err != nil || h < 0 || h > 23 {
			return nil, fmt.Errorf("%w: invalid REVTRACK_REMINDER_HOUR %q (want 0-23)", models.ErrMalformedInput, s)
		}
		cfg.ReminderHour = h
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
