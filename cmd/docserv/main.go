package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := &cli.App{
		Name:           "docserv",
		Version:        version,
		Usage:          "Serve a directory of Markdown documents as HTML pages",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCommand(),
			pagesCommand(),
			newCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the docserv version",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "docserv %s\n", version)
			return nil
		},
	}
}
