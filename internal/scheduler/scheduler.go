// Package scheduler runs the reminder daemon: a daily gocron job that
// collects the topics due today and pushes a digest through a Notifier.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/revtrack/internal/tracker"
	"github.com/example/revtrack/pkg/models"
)

// DefaultReminderHour is the hour of day digests go out when none is configured.
const DefaultReminderHour = 9

// Notifier interface for sending due-review digests.
type Notifier interface {
	Send(text string) error
}

// Scheduler manages the daily reminder job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	tracker   *tracker.Tracker
	notifier  Notifier
	hour      int
}

// New creates a scheduler that sends a digest every day at the given hour.
func New(tr *tracker.Tracker, notifier Notifier, hour int) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = DefaultReminderHour
	}
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		tracker:   tr,
		notifier:  notifier,
		hour:      hour,
	}
}

// Start begins running the daily reminder job in the background.
func (s *Scheduler) Start() error {
	at := fmt.Sprintf("%02d:00", s.hour)
	_, err := s.scheduler.Every(1).Day().At(at).Do(s.sendDigest)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates the reminder job.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sendDigest() {
	if err := s.RunManualCheck(context.Background()); err != nil {
		log.Printf("Error sending reminder digest: %v", err)
	}
}

// RunManualCheck sends a digest for today immediately. Nothing is sent when
// no topics are due.
func (s *Scheduler) RunManualCheck(ctx context.Context) error {
	today := models.Today()
	due, err := s.tracker.DueTopics(ctx, today)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		log.Printf("No topics due on %s, skipping digest", today)
		return nil
	}
	return s.notifier.Send(Digest(due, today))
}

// Digest renders the due list as a plain-text reminder message.
func Digest(due []models.Topic, today models.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topics to review for %s:\n", today)
	for _, t := range due {
		fmt.Fprintf(&b, "- %s", t.Name)
		if t.LastReviewed != nil {
			fmt.Fprintf(&b, " (last reviewed %s, interval %dd)", t.LastReviewed, t.IntervalDays)
		} else {
			b.WriteString(" (never reviewed)")
		}
		b.WriteString("\n")
		if t.URL != "" {
			fmt.Fprintf(&b, "  %s\n", t.URL)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
