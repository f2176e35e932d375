package docserv

import "time"

// PageInfo describes a listed page: its title and the modification time of
// the backing Markdown file.
type PageInfo struct {
	Title   string
	ModTime time.Time
}
