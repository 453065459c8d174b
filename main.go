package main

import (
	"fmt"
	"os"

	"github.com/example/revtrack/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "revtrack: %v\n", err)
		os.Exit(1)
	}
}
