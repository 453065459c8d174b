// Package memory implements an in-memory topics store, used by tests and by
// commands that operate on an imported collection without touching disk.
package memory

import (
	"context"

	"github.com/example/revtrack/pkg/models"
)

// Store keeps the topic collection in memory.
type Store struct {
	topics []models.Topic
}

// New creates a store seeded with the given topics.
func New(topics ...models.Topic) *Store {
	s := &Store{}
	s.topics = append(s.topics, topics...)
	return s
}

// Load returns a copy of the collection.
func (s *Store) Load(ctx context.Context) ([]models.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Topic, len(s.topics))
	copy(out, s.topics)
	return out, nil
}

// Save replaces the collection with a copy of the given topics.
func (s *Store) Save(ctx context.Context, topics []models.Topic) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.topics = make([]models.Topic, len(topics))
	copy(s.topics, topics)
	return nil
}
