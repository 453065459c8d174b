package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/revtrack/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "topics.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	topics, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("missing file should load as empty, got %v", topics)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	last := models.NewDate(2024, time.January, 1)
	next := models.NewDate(2024, time.January, 3)
	saved := []models.Topic{
		{Name: "math", URL: "https://example.com/math", IntervalDays: 2, LastReviewed: &last, NextReview: &next},
		{Name: "go", IntervalDays: 0},
	}

	if err := s.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("loaded %d topics, want %d", len(loaded), len(saved))
	}
	for i := range saved {
		want, got := saved[i], loaded[i]
		if got.Name != want.Name || got.URL != want.URL || got.IntervalDays != want.IntervalDays {
			t.Errorf("topic %d = %+v, want %+v", i, got, want)
		}
		if (got.LastReviewed == nil) != (want.LastReviewed == nil) {
			t.Errorf("topic %d: last reviewed mismatch", i)
		}
		if got.LastReviewed != nil && !got.LastReviewed.Equal(*want.LastReviewed) {
			t.Errorf("topic %d: last reviewed = %s, want %s", i, got.LastReviewed, want.LastReviewed)
		}
		if got.NextReview != nil && !got.NextReview.Equal(*want.NextReview) {
			t.Errorf("topic %d: next review = %s, want %s", i, got.NextReview, want.NextReview)
		}
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Save(ctx, []models.Topic{{Name: "a"}, {Name: "b"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []models.Topic{{Name: "c"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	topics, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(topics) != 1 || topics[0].Name != "c" {
		t.Errorf("second save should replace the collection, got %v", topics)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New(path).Load(context.Background())
	if !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("Load error = %v, want ErrMalformedInput", err)
	}
}

func TestLoadInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.json")
	body := `[{"name": "math", "interval_days": -3}]`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New(path).Load(context.Background())
	if !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("Load error = %v, want ErrMalformedInput", err)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "topics.json")
	s := New(path)

	if err := s.Save(context.Background(), []models.Topic{{Name: "math"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("topics file missing after save: %v", err)
	}
}
