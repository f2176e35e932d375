package docserv

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// PageExt is the file extension of Markdown pages.
const PageExt = ".md"

// ErrNotFound is returned when a page cannot be resolved. Invalid titles,
// missing files and unreadable files all map to it.
var ErrNotFound = errors.New("page not found")

// PageStore resolves page titles to Markdown files inside a document
// directory. It keeps no state between calls, so every lookup and listing
// sees the directory as it is on disk at that moment.
type PageStore struct {
	fs  afero.Fs
	dir string
}

// NewPageStore creates a PageStore reading pages from dir on fs.
func NewPageStore(fs afero.Fs, dir string) *PageStore {
	return &PageStore{fs: fs, dir: dir}
}

// Dir returns the document directory.
func (s *PageStore) Dir() string {
	return s.dir
}

func (s *PageStore) path(title string) string {
	return filepath.Join(s.dir, title+PageExt)
}

// ReadPage returns the Markdown source of the page named title.
func (s *PageStore) ReadPage(title string) (string, error) {
	if !IsValidTitle(title) {
		return "", ErrNotFound
	}
	p := s.path(title)
	fi, err := s.fs.Stat(p)
	if err != nil || !fi.Mode().IsRegular() {
		return "", ErrNotFound
	}
	b, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return "", ErrNotFound
	}
	return string(b), nil
}

// ListPageInfo returns every valid page in the document directory sorted by
// title. Subdirectories, symlinks that do not resolve to a regular file,
// files without the Markdown extension and files whose stem is not a valid
// title are skipped.
func (s *PageStore) ListPageInfo() ([]PageInfo, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read document directory %s", s.dir)
	}
	var pages []PageInfo
	for _, fi := range entries {
		name := fi.Name()
		if fi.Mode()&os.ModeSymlink != 0 {
			// entries are lstat results; judge a link by what it points at
			target, err := s.fs.Stat(filepath.Join(s.dir, name))
			if err != nil || !target.Mode().IsRegular() {
				continue
			}
			fi = target
		}
		if fi.IsDir() {
			continue
		}
		if !strings.HasSuffix(name, PageExt) {
			continue
		}
		title := strings.TrimSuffix(name, PageExt)
		if !IsValidTitle(title) {
			continue
		}
		pages = append(pages, PageInfo{Title: title, ModTime: fi.ModTime()})
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Title < pages[j].Title
	})
	return pages, nil
}

// ListPages returns the sorted titles of all valid pages. A missing or
// unreadable directory yields no titles together with the error.
func (s *PageStore) ListPages() ([]string, error) {
	pages, err := s.ListPageInfo()
	if err != nil {
		return nil, err
	}
	return lo.Map(pages, func(p PageInfo, _ int) string {
		return p.Title
	}), nil
}
