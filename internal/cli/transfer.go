package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/example/revtrack/internal/export"
	"github.com/example/revtrack/pkg/models"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export the topic collection to an Excel or CSV file",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: usage: export <path>", models.ErrMalformedInput)
			}
			path := c.Args().Get(0)

			tr, closer, err := openTracker()
			if err != nil {
				return err
			}
			defer closer()

			topics, err := tr.Topics(c.Context)
			if err != nil {
				return err
			}

			if err := export.WriteFile(topics, path); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "exported %d topics to %s\n", len(topics), path)
			return nil
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import topics from an Excel or CSV file",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("%w: usage: import <path>", models.ErrMalformedInput)
			}
			path := c.Args().Get(0)

			topics, err := export.ReadFile(path)
			if err != nil {
				return err
			}

			tr, closer, err := openTracker()
			if err != nil {
				return err
			}
			defer closer()

			added, skipped, err := tr.ImportTopics(c.Context, topics)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "imported %d topics from %s (%d already present)\n", added, path, skipped)
			return nil
		},
	}
}
