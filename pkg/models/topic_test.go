package models

import (
	"errors"
	"testing"
	"time"
)

func datePtr(d Date) *Date {
	return &d
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Math", "math"},
		{"  python basics  ", "python basics"},
		{"LeetCode_Two_Sum", "leetcode_two_sum"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTopicDueOn(t *testing.T) {
	today := NewDate(2024, time.January, 10)

	never := Topic{Name: "math"}
	if !never.DueOn(today) {
		t.Error("a never-reviewed topic must always be due")
	}

	due := Topic{
		Name:         "go",
		IntervalDays: 2,
		LastReviewed: datePtr(NewDate(2024, time.January, 8)),
		NextReview:   datePtr(NewDate(2024, time.January, 10)),
	}
	if !due.DueOn(today) {
		t.Error("a topic due today must be due")
	}
	if due.DueOn(NewDate(2024, time.January, 9)) {
		t.Error("a topic due tomorrow must not be due")
	}

	overdue := Topic{
		Name:         "sql",
		IntervalDays: 1,
		LastReviewed: datePtr(NewDate(2024, time.January, 1)),
		NextReview:   datePtr(NewDate(2024, time.January, 2)),
	}
	if !overdue.DueOn(today) {
		t.Error("an overdue topic must be due")
	}
}

func TestTopicValidate(t *testing.T) {
	last := NewDate(2024, time.January, 1)
	next := NewDate(2024, time.January, 3)

	tests := []struct {
		name  string
		topic Topic
		ok    bool
	}{
		{"fresh topic", Topic{Name: "math"}, true},
		{"reviewed topic", Topic{Name: "math", IntervalDays: 2, LastReviewed: &last, NextReview: &next}, true},
		{"empty name", Topic{Name: "  "}, false},
		{"negative interval", Topic{Name: "math", IntervalDays: -1}, false},
		{"last without next", Topic{Name: "math", LastReviewed: &last}, false},
		{"next without last", Topic{Name: "math", NextReview: &next}, false},
		{"underivable next", Topic{Name: "math", IntervalDays: 5, LastReviewed: &last, NextReview: &next}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.topic.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() should fail")
				}
				if !errors.Is(err, ErrMalformedInput) {
					t.Errorf("Validate() error = %v, want ErrMalformedInput", err)
				}
			}
		})
	}
}
