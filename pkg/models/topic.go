package models

import (
	"fmt"
	"strings"
)

// Topic represents a subject or theme that needs to be reviewed periodically.
type Topic struct {
	Name         string `json:"name" db:"name"`
	URL          string `json:"url,omitempty" db:"url"`
	IntervalDays int    `json:"interval_days" db:"interval_days"`
	LastReviewed *Date  `json:"last_reviewed_date,omitempty" db:"last_reviewed_date"`
	NextReview   *Date  `json:"next_review_date,omitempty" db:"next_review_date"`
}

// NormalizeName canonicalizes a topic name for lookup and storage.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Reviewed reports whether the topic has ever been reviewed.
func (t Topic) Reviewed() bool {
	return t.LastReviewed != nil
}

// DueOn reports whether the topic is due on the given date.
// A topic that has never been reviewed is always due.
func (t Topic) DueOn(today Date) bool {
	if t.NextReview == nil {
		return true
	}
	return !t.NextReview.After(today)
}

// Validate checks the record invariants: a non-empty name, a non-negative
// interval, and review dates that are either both present or both absent,
// with next review derivable from last review plus the interval.
func (t Topic) Validate() error {
	if NormalizeName(t.Name) == "" {
		return fmt.Errorf("%w: topic with empty name", ErrMalformedInput)
	}
	if t.IntervalDays < 0 {
		return fmt.Errorf("%w: topic %q has negative interval %d", ErrMalformedInput, t.Name, t.IntervalDays)
	}
	if (t.LastReviewed == nil) != (t.NextReview == nil) {
		return fmt.Errorf("%w: topic %q has inconsistent review dates", ErrMalformedInput, t.Name)
	}
	if t.LastReviewed != nil && !t.LastReviewed.AddDays(t.IntervalDays).Equal(*t.NextReview) {
		return fmt.Errorf("%w: topic %q: next review %s is not last review %s + %d days",
			ErrMalformedInput, t.Name, t.NextReview, t.LastReviewed, t.IntervalDays)
	}
	return nil
}
