package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageList renders titles as an unordered list of links to their pages, or
// the empty text when there are no titles. Titles are written unescaped;
// the title character set already makes them safe in HTML.
func PageList(titles []string, empty string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(titles) == 0 {
			_, err := io.WriteString(w, empty)
			return err
		}
		if _, err := io.WriteString(w, "<ul>"); err != nil {
			return err
		}
		for _, title := range titles {
			item := `<li><a href="` + PageURL(title) + `">` + title + `</a></li>`
			if _, err := io.WriteString(w, item); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
