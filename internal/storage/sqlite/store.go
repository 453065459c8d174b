// Package sqlite implements the topics store on a relational database through
// sqlx. SQLite is the default engine; the same store runs against PostgreSQL
// when opened with the postgres driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/revtrack/pkg/models"
)

// Store persists the topic collection in a topics table.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database and creates the schema if needed.
// driver is "sqlite3" or "postgres"; dsn is the file path or connection URL.
func Open(driver, dsn string) (*Store, error) {
	if driver == "sqlite3" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &Store{db: db}
	if err := s.initializeSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initializeSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS topics (
			name TEXT PRIMARY KEY,
			url TEXT NOT NULL DEFAULT '',
			interval_days INTEGER NOT NULL DEFAULT 0,
			last_reviewed_date TEXT,
			next_review_date TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create topics table: %w", err)
	}
	return nil
}

// rebind replaces ? placeholders with $N for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.db.DriverName() == "postgres" {
		return sqlx.Rebind(sqlx.DOLLAR, query)
	}
	return query
}

type topicRow struct {
	Name         string         `db:"name"`
	URL          string         `db:"url"`
	IntervalDays int            `db:"interval_days"`
	LastReviewed sql.NullString `db:"last_reviewed_date"`
	NextReview   sql.NullString `db:"next_review_date"`
}

func (r topicRow) toModel() (models.Topic, error) {
	t := models.Topic{
		Name:         r.Name,
		URL:          r.URL,
		IntervalDays: r.IntervalDays,
	}
	if r.LastReviewed.Valid && r.LastReviewed.String != "" {
		d, err := models.ParseDate(r.LastReviewed.String)
		if err != nil {
			return models.Topic{}, fmt.Errorf("topic %q: %w", r.Name, err)
		}
		t.LastReviewed = &d
	}
	if r.NextReview.Valid && r.NextReview.String != "" {
		d, err := models.ParseDate(r.NextReview.String)
		if err != nil {
			return models.Topic{}, fmt.Errorf("topic %q: %w", r.Name, err)
		}
		t.NextReview = &d
	}
	return t, nil
}

func nullDate(d *models.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

// Load reads the whole collection from the topics table.
func (s *Store) Load(ctx context.Context) ([]models.Topic, error) {
	var rows []topicRow
	query := "SELECT name, url, interval_days, last_reviewed_date, next_review_date FROM topics ORDER BY name"
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	topics := make([]models.Topic, 0, len(rows))
	for _, r := range rows {
		t, err := r.toModel()
		if err != nil {
			return nil, err
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}

	return topics, nil
}

// Save replaces the persisted collection in a single transaction.
func (s *Store) Save(ctx context.Context, topics []models.Topic) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM topics"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear topics: %w", err)
	}

	insert := s.rebind(`
		INSERT INTO topics (name, url, interval_days, last_reviewed_date, next_review_date)
		VALUES (?, ?, ?, ?, ?)
	`)
	for _, t := range topics {
		_, err := tx.ExecContext(ctx, insert,
			t.Name,
			t.URL,
			t.IntervalDays,
			nullDate(t.LastReviewed),
			nullDate(t.NextReview),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save topic %q: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
