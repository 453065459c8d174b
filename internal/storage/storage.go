// Package storage defines the persistence contract for the topic collection.
//
// The collection is small and owned by a single process, so stores load and
// save it wholesale: the last writer wins and there is no partial update.
package storage

import (
	"context"

	"github.com/example/revtrack/pkg/models"
)

// Store loads and saves the whole topic collection.
type Store interface {
	// Load reads every topic. A store that has never been written reads
	// as an empty collection, not an error.
	Load(ctx context.Context) ([]models.Topic, error)
	// Save replaces the persisted collection with the given topics.
	Save(ctx context.Context, topics []models.Topic) error
}
