// Package spaced_repetition implements the doubling-interval review schedule:
// each successful review at full spacing doubles the gap until the next one
// (1, 2, 4, 8, ... days).
package spaced_repetition

import (
	"sort"

	"github.com/example/revtrack/pkg/models"
)

// Policy holds the knobs of the doubling schedule.
// The zero value is the default policy: base interval of one day, no ceiling.
type Policy struct {
	// Interval assigned by the first successful review and by a reset.
	BaseIntervalDays int // zero → 1
	// Ceiling for the doubled interval. Zero means unlimited.
	MaxIntervalDays int
}

func (p Policy) base() int {
	if p.BaseIntervalDays <= 0 {
		return 1
	}
	return p.BaseIntervalDays
}

// Apply records a review of the topic on the given day and updates its
// interval and review dates according to the outcome.
func (p Policy) Apply(topic *models.Topic, outcome Outcome, today models.Date) {
	switch outcome {
	case Success:
		next := topic.IntervalDays * 2
		if next < p.base() {
			next = p.base()
		}
		if p.MaxIntervalDays > 0 && next > p.MaxIntervalDays {
			next = p.MaxIntervalDays
		}
		topic.IntervalDays = next
	case Early:
		// Keep the current spacing.
	case Reset:
		topic.IntervalDays = p.base()
	}

	last := today
	next := today.AddDays(topic.IntervalDays)
	topic.LastReviewed = &last
	topic.NextReview = &next
}

// Due returns the topics due on the given day, never-reviewed topics first.
// Ordering is total and stable across runs: never-reviewed topics sort by
// name, the rest by ascending next review date with ties broken by name.
func Due(topics []models.Topic, today models.Date) []models.Topic {
	var due []models.Topic
	for _, t := range topics {
		if t.DueOn(today) {
			due = append(due, t)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if (a.NextReview == nil) != (b.NextReview == nil) {
			return a.NextReview == nil
		}
		if a.NextReview != nil && !a.NextReview.Equal(*b.NextReview) {
			return a.NextReview.Before(*b.NextReview)
		}
		return a.Name < b.Name
	})

	return due
}
