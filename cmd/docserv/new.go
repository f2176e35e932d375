package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/eringen/docserv/scaffold"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a new docserv project",
		ArgsUsage: "<dir>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("Usage: docserv new <dir>", 1)
			}
			dir := c.Args().First()
			name := filepath.Base(filepath.Clean(dir))
			data := scaffold.Data{
				ProjectName: name,
				SiteName:    scaffold.ToTitle(name),
			}

			fmt.Fprintf(c.App.Writer, "Creating new docserv project: %s\n\n", dir)
			created, err := scaffold.Generate(afero.NewOsFs(), dir, data)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			for _, p := range created {
				fmt.Fprintf(c.App.Writer, "  created %s\n", p)
			}

			fmt.Fprintln(c.App.Writer)
			fmt.Fprintln(c.App.Writer, "Done! Next steps:")
			fmt.Fprintln(c.App.Writer)
			fmt.Fprintf(c.App.Writer, "  cd %s\n", dir)
			fmt.Fprintln(c.App.Writer, "  docserv serve --config docserv.yaml")
			fmt.Fprintln(c.App.Writer)
			return nil
		},
	}
}
