package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/eringen/docserv"
	"github.com/eringen/docserv/views"
)

func pagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "List the pages docserv would serve from a document directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "docs", Value: "docs", Usage: "`PATH` of markdown docs"},
		},
		Action: func(c *cli.Context) error {
			store := docserv.NewPageStore(afero.NewOsFs(), c.String("docs"))
			pages, err := store.ListPageInfo()
			if err != nil || len(pages) == 0 {
				fmt.Fprintln(c.App.Writer, views.DefaultLabels().EmptyListing)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(c.App.Writer)
			t.AppendHeader(table.Row{"#", "Title", "URL", "Modified"})
			for i, p := range pages {
				t.AppendRow(table.Row{i + 1, p.Title, views.PageURL(p.Title), p.ModTime.Format("2006-01-02 15:04")})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
}
