package spaced_repetition

import (
	"errors"
	"testing"
	"time"

	"github.com/example/revtrack/pkg/models"
)

var day1 = models.NewDate(2024, time.January, 1)

func reviewed(name string, interval int, last models.Date) models.Topic {
	next := last.AddDays(interval)
	return models.Topic{
		Name:         name,
		IntervalDays: interval,
		LastReviewed: &last,
		NextReview:   &next,
	}
}

func TestParseOutcome(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Outcome
	}{
		{"success", Success},
		{"early", Early},
		{"reset", Reset},
	} {
		got, err := ParseOutcome(tt.in)
		if err != nil {
			t.Errorf("ParseOutcome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOutcome(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}

	if _, err := ParseOutcome("perfect"); !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("ParseOutcome(\"perfect\") error = %v, want ErrMalformedInput", err)
	}
}

func TestApplySuccessDoubles(t *testing.T) {
	var p Policy
	for _, tt := range []struct {
		before, after int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{4, 8},
		{16, 32},
	} {
		topic := models.Topic{Name: "math", IntervalDays: tt.before}
		p.Apply(&topic, Success, day1)

		if topic.IntervalDays != tt.after {
			t.Errorf("success from %d: interval = %d, want %d", tt.before, topic.IntervalDays, tt.after)
		}
		if topic.LastReviewed == nil || !topic.LastReviewed.Equal(day1) {
			t.Errorf("success from %d: last reviewed = %v, want %s", tt.before, topic.LastReviewed, day1)
		}
		if want := day1.AddDays(tt.after); topic.NextReview == nil || !topic.NextReview.Equal(want) {
			t.Errorf("success from %d: next review = %v, want %s", tt.before, topic.NextReview, want)
		}
		if err := topic.Validate(); err != nil {
			t.Errorf("success from %d: invariant broken: %v", tt.before, err)
		}
	}
}

func TestApplyEarlyKeepsInterval(t *testing.T) {
	var p Policy
	topic := reviewed("math", 4, day1)

	later := day1.AddDays(2)
	p.Apply(&topic, Early, later)

	if topic.IntervalDays != 4 {
		t.Errorf("early review changed interval to %d", topic.IntervalDays)
	}
	if !topic.LastReviewed.Equal(later) {
		t.Errorf("last reviewed = %s, want %s", topic.LastReviewed, later)
	}
	if want := later.AddDays(4); !topic.NextReview.Equal(want) {
		t.Errorf("next review = %s, want %s", topic.NextReview, want)
	}
}

func TestApplyResetRestartsLadder(t *testing.T) {
	var p Policy
	for _, before := range []int{0, 1, 8, 256} {
		topic := models.Topic{Name: "math", IntervalDays: before}
		p.Apply(&topic, Reset, day1)

		if topic.IntervalDays != 1 {
			t.Errorf("reset from %d: interval = %d, want 1", before, topic.IntervalDays)
		}
		if want := day1.AddDays(1); !topic.NextReview.Equal(want) {
			t.Errorf("reset from %d: next review = %s, want %s", before, topic.NextReview, want)
		}
	}
}

func TestApplyMaxInterval(t *testing.T) {
	p := Policy{MaxIntervalDays: 256}
	topic := models.Topic{Name: "math", IntervalDays: 256}
	p.Apply(&topic, Success, day1)

	if topic.IntervalDays != 256 {
		t.Errorf("interval = %d, want capped at 256", topic.IntervalDays)
	}
}

func TestApplyBaseInterval(t *testing.T) {
	p := Policy{BaseIntervalDays: 3}
	topic := models.Topic{Name: "math"}
	p.Apply(&topic, Success, day1)

	if topic.IntervalDays != 3 {
		t.Errorf("first success interval = %d, want base 3", topic.IntervalDays)
	}
}

func TestDueFiltersAndSorts(t *testing.T) {
	today := models.NewDate(2024, time.January, 10)
	topics := []models.Topic{
		reviewed("overdue-late", 2, models.NewDate(2024, time.January, 7)), // next Jan 9
		reviewed("future", 8, models.NewDate(2024, time.January, 5)),       // next Jan 13
		{Name: "zz-never"},
		reviewed("due-today", 4, models.NewDate(2024, time.January, 6)),     // next Jan 10
		reviewed("overdue-early", 1, models.NewDate(2024, time.January, 2)), // next Jan 3
		{Name: "aa-never"},
		reviewed("also-jan9", 1, models.NewDate(2024, time.January, 8)), // next Jan 9
	}

	due := Due(topics, today)

	want := []string{"aa-never", "zz-never", "overdue-early", "also-jan9", "overdue-late", "due-today"}
	if len(due) != len(want) {
		t.Fatalf("Due returned %d topics, want %d", len(due), len(want))
	}
	for i, name := range want {
		if due[i].Name != name {
			t.Errorf("due[%d] = %q, want %q", i, due[i].Name, name)
		}
	}

	for _, d := range due {
		if d.NextReview != nil && d.NextReview.After(today) {
			t.Errorf("topic %q is not due until %s", d.Name, d.NextReview)
		}
	}
}

func TestDueIsIdempotent(t *testing.T) {
	today := models.NewDate(2024, time.January, 10)
	topics := []models.Topic{
		{Name: "b"},
		{Name: "a"},
		reviewed("c", 1, models.NewDate(2024, time.January, 8)),
	}

	first := Due(topics, today)
	second := Due(topics, today)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("position %d differs: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
}
