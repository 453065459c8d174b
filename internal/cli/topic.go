package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/example/revtrack/internal/spaced_repetition"
	"github.com/example/revtrack/pkg/models"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add a new topic to the review schedule",
		ArgsUsage: "<name> [url]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: usage: add <name> [url]", models.ErrMalformedInput)
			}

			tr, closer, err := openTracker()
			if err != nil {
				return err
			}
			defer closer()

			topic, err := tr.AddTopic(c.Context, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "added new topic: %s\n", topic.Name)
			return nil
		},
	}
}

func reviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "review",
		Usage:     "record a review of a topic",
		ArgsUsage: "<name> [success|early|reset]",
		Flags:     []cli.Flag{dateFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: usage: review <name> [success|early|reset]", models.ErrMalformedInput)
			}

			outcome := spaced_repetition.Success
			if c.NArg() > 1 {
				var err error
				outcome, err = spaced_repetition.ParseOutcome(c.Args().Get(1))
				if err != nil {
					return err
				}
			}

			return runReview(c, c.Args().Get(0), outcome)
		},
	}
}

func resetCommand() *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "restart a topic's review ladder at the base interval",
		ArgsUsage: "<name>",
		Flags:     []cli.Flag{dateFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: usage: reset <name>", models.ErrMalformedInput)
			}
			return runReview(c, c.Args().Get(0), spaced_repetition.Reset)
		},
	}
}

func runReview(c *cli.Context, name string, outcome spaced_repetition.Outcome) error {
	today, err := flagDate(c)
	if err != nil {
		return err
	}

	tr, closer, err := openTracker()
	if err != nil {
		return err
	}
	defer closer()

	topic, err := tr.ReviewTopic(c.Context, name, outcome, today)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "reviewed %s (%s): interval %dd, next review %s\n",
		topic.Name, outcome, topic.IntervalDays, topic.NextReview)
	return nil
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "delete a topic from the schedule",
		ArgsUsage: "<name>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: usage: remove <name>", models.ErrMalformedInput)
			}

			tr, closer, err := openTracker()
			if err != nil {
				return err
			}
			defer closer()

			name := models.NormalizeName(c.Args().Get(0))
			if err := tr.RemoveTopic(c.Context, name); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "removed topic: %s\n", name)
			return nil
		},
	}
}
