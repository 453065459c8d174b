package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/example/revtrack/internal/scheduler"
)

func dueCommand() *cli.Command {
	return &cli.Command{
		Name:    "due",
		Aliases: []string{"list-due"},
		Usage:   "list the topics due for review",
		Flags:   []cli.Flag{dateFlag()},
		Action: func(c *cli.Context) error {
			today, err := flagDate(c)
			if err != nil {
				return err
			}

			tr, closer, err := openTracker()
			if err != nil {
				return err
			}
			defer closer()

			due, err := tr.DueTopics(c.Context, today)
			if err != nil {
				return err
			}

			if len(due) == 0 {
				fmt.Fprintf(c.App.Writer, "No topics due for %s.\n", today)
				return nil
			}

			fmt.Fprintln(c.App.Writer, scheduler.Digest(due, today))
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list every tracked topic",
		Action: func(c *cli.Context) error {
			tr, closer, err := openTracker()
			if err != nil {
				return err
			}
			defer closer()

			topics, err := tr.Topics(c.Context)
			if err != nil {
				return err
			}

			if len(topics) == 0 {
				fmt.Fprintln(c.App.Writer, "No topics tracked yet.")
				return nil
			}

			for _, t := range topics {
				next := "due now"
				if t.NextReview != nil {
					next = "next " + t.NextReview.String()
				}
				fmt.Fprintf(c.App.Writer, "%s\tinterval %dd\t%s", t.Name, t.IntervalDays, next)
				if t.URL != "" {
					fmt.Fprintf(c.App.Writer, "\t%s", t.URL)
				}
				fmt.Fprintln(c.App.Writer)
			}
			return nil
		},
	}
}
