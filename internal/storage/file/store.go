// Package file implements the default topics store: a single pretty-printed
// JSON file, read at startup and rewritten wholesale on save.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/revtrack/pkg/models"
)

// Store persists the topic collection in a JSON file.
type Store struct {
	path string
}

// New creates a store backed by the file at path. The file does not have to
// exist yet; a missing file loads as an empty collection.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection from disk.
func (s *Store) Load(ctx context.Context) ([]models.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read topics file: %w", err)
	}

	var topics []models.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("%w: topics file %s: %v", models.ErrMalformedInput, s.path, err)
	}

	for _, t := range topics {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("topics file %s: %w", s.path, err)
		}
	}

	return topics, nil
}

// Save rewrites the whole collection. The write goes to a temp file in the
// same directory followed by a rename, so a crash mid-save cannot leave a
// truncated topics file behind.
func (s *Store) Save(ctx context.Context, topics []models.Topic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if topics == nil {
		topics = []models.Topic{}
	}

	data, err := json.MarshalIndent(topics, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write topics file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close topics file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace topics file: %w", err)
	}

	return nil
}
