// Package tracker implements the review scheduler: it owns the topic
// collection through an injected store and applies the spaced-repetition
// policy to it. Every operation is an explicit load, mutate, save cycle.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/revtrack/internal/spaced_repetition"
	"github.com/example/revtrack/internal/storage"
	"github.com/example/revtrack/pkg/models"
)

// Sentinel errors for scheduler operations.
// Use errors.Is to check: errors.Is(err, tracker.ErrNotFound)
var (
	ErrDuplicateName = errors.New("revtrack: topic already exists")
	ErrNotFound      = errors.New("revtrack: topic not found")
)

// Tracker coordinates the topic collection and the review policy.
type Tracker struct {
	store  storage.Store
	policy spaced_repetition.Policy
}

// New creates a tracker over the given store and policy.
func New(store storage.Store, policy spaced_repetition.Policy) *Tracker {
	return &Tracker{store: store, policy: policy}
}

// AddTopic creates a topic with no review history. The name is normalized;
// adding a name that already exists fails with ErrDuplicateName.
func (tr *Tracker) AddTopic(ctx context.Context, name, url string) (models.Topic, error) {
	name = models.NormalizeName(name)
	if name == "" {
		return models.Topic{}, fmt.Errorf("%w: empty topic name", models.ErrMalformedInput)
	}

	topics, err := tr.store.Load(ctx)
	if err != nil {
		return models.Topic{}, err
	}

	if indexOf(topics, name) >= 0 {
		return models.Topic{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	topic := models.Topic{Name: name, URL: url}
	topics = append(topics, topic)

	if err := tr.store.Save(ctx, topics); err != nil {
		return models.Topic{}, err
	}

	return topic, nil
}

// ReviewTopic records a review of the named topic on the given day and
// returns the updated record. Missing names fail with ErrNotFound.
func (tr *Tracker) ReviewTopic(ctx context.Context, name string, outcome spaced_repetition.Outcome, today models.Date) (models.Topic, error) {
	name = models.NormalizeName(name)

	topics, err := tr.store.Load(ctx)
	if err != nil {
		return models.Topic{}, err
	}

	i := indexOf(topics, name)
	if i < 0 {
		return models.Topic{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	tr.policy.Apply(&topics[i], outcome, today)

	if err := tr.store.Save(ctx, topics); err != nil {
		return models.Topic{}, err
	}

	return topics[i], nil
}

// RemoveTopic deletes the named topic. Missing names fail with ErrNotFound.
func (tr *Tracker) RemoveTopic(ctx context.Context, name string) error {
	name = models.NormalizeName(name)

	topics, err := tr.store.Load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(topics, name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	topics = append(topics[:i], topics[i+1:]...)

	return tr.store.Save(ctx, topics)
}

// DueTopics returns the topics due on the given day in deterministic order.
func (tr *Tracker) DueTopics(ctx context.Context, today models.Date) ([]models.Topic, error) {
	topics, err := tr.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return spaced_repetition.Due(topics, today), nil
}

// Topics returns the whole collection ordered by name.
func (tr *Tracker) Topics(ctx context.Context) ([]models.Topic, error) {
	topics, err := tr.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics, nil
}

// ImportTopics merges the given records into the collection. Records whose
// name already exists are skipped, invalid records fail the whole import.
func (tr *Tracker) ImportTopics(ctx context.Context, imported []models.Topic) (added, skipped int, err error) {
	topics, err := tr.store.Load(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, t := range imported {
		t.Name = models.NormalizeName(t.Name)
		if err := t.Validate(); err != nil {
			return 0, 0, err
		}
		if indexOf(topics, t.Name) >= 0 {
			skipped++
			continue
		}
		topics = append(topics, t)
		added++
	}

	if err := tr.store.Save(ctx, topics); err != nil {
		return 0, 0, err
	}

	return added, skipped, nil
}

func indexOf(topics []models.Topic, name string) int {
	for i, t := range topics {
		if t.Name == name {
			return i
		}
	}
	return -1
}
