// Package cli wires the revtrack commands to the tracker, storage and
// reminder components.
package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/example/revtrack/internal/config"
	"github.com/example/revtrack/internal/spaced_repetition"
	"github.com/example/revtrack/internal/storage"
	"github.com/example/revtrack/internal/storage/file"
	"github.com/example/revtrack/internal/storage/sqlite"
	"github.com/example/revtrack/internal/tracker"
	"github.com/example/revtrack/pkg/models"
)

// NewApp builds the revtrack command-line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "revtrack",
		Usage: "track study topics on a doubling spaced-repetition schedule",
		Commands: []*cli.Command{
			addCommand(),
			reviewCommand(),
			resetCommand(),
			removeCommand(),
			dueCommand(),
			listCommand(),
			exportCommand(),
			importCommand(),
			remindCommand(),
		},
	}
}

// openTracker resolves config, opens the configured store and returns the
// tracker plus a close func for stores holding resources.
func openTracker() (*tracker.Tracker, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	return tracker.New(store, spaced_repetition.Policy{}), closer, nil
}

func openStore(cfg *config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage {
	case config.StorageFile:
		return file.New(cfg.DataFile), noop, nil
	case config.StorageSQLite:
		s, err := sqlite.Open("sqlite3", cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.StoragePostgres:
		s, err := sqlite.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: unknown storage backend %q", models.ErrMalformedInput, cfg.Storage)
}

// dateFlag is the shared --date flag: the day an operation should treat as
// "today", defaulting to the current date.
func dateFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "date",
		Usage: "operate as of this date (YYYY-MM-DD, default today)",
	}
}

func flagDate(c *cli.Context) (models.Date, error) {
	if s := c.String("date"); s != "" {
		return models.ParseDate(s)
	}
	return models.Today(), nil
}
