package views

import (
	"net/url"
	"path"
)

// PageURL returns the site-relative URL of the page named title.
func PageURL(title string) string {
	return "/pages/" + title
}

// BuildURL joins path segments onto a base URL.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(append([]string{"/", u.Path}, pathSegments...)...)
	return u.String()
}
