package docserv

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IndexTitle is the page served at the site root.
const IndexTitle = "index"

var titlePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// IsValidTitle reports whether title may be used as a page file name.
// A valid title is non-empty and made only of ASCII letters, digits,
// underscores and hyphens, so it can never name a path outside the
// document directory.
func IsValidTitle(title string) bool {
	return validation.Validate(title,
		validation.Required,
		validation.Match(titlePattern),
	) == nil
}
