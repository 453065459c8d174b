package spaced_repetition

import (
	"fmt"

	"github.com/example/revtrack/pkg/models"
)

// Outcome is the result the user reports for a review session.
type Outcome int

const (
	// Success: the topic was recalled at full spacing; the interval doubles.
	Success Outcome = iota
	// Early: the topic was reviewed before it was due; the interval is kept
	// as-is because confidence was not re-tested at full spacing.
	Early
	// Reset: the topic was reviewed poorly; the ladder restarts at the base interval.
	Reset
)

// ParseOutcome parses a user-supplied outcome string.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "success":
		return Success, nil
	case "early":
		return Early, nil
	case "reset":
		return Reset, nil
	}
	return 0, fmt.Errorf("%w: unknown outcome %q (want success, early or reset)", models.ErrMalformedInput, s)
}

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Early:
		return "early"
	case Reset:
		return "reset"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}
