// Package views holds the values rendered through the page template and
// the HTML fragments docserv generates itself.
package views

// Page is the render context handed to the page template: a display title
// and an HTML content fragment that the template inserts unescaped.
type Page struct {
	Title   string
	Content string
}

// Vars returns the template variables for p.
func (p Page) Vars() map[string]interface{} {
	return map[string]interface{}{
		"title":   p.Title,
		"content": p.Content,
	}
}

// Labels are the user-facing strings docserv renders on its own pages.
type Labels struct {
	NotFoundTitle      string `yaml:"not_found_title"`
	NotFoundMessage    string `yaml:"not_found_message"`
	BadRequestTitle    string `yaml:"bad_request_title"`
	BadRequestMessage  string `yaml:"bad_request_message"`
	ServerErrorTitle   string `yaml:"server_error_title"`
	ServerErrorMessage string `yaml:"server_error_message"`
	ListingTitle       string `yaml:"listing_title"`
	EmptyListing       string `yaml:"empty_listing"`
}

// DefaultLabels returns the stock Korean labels.
func DefaultLabels() Labels {
	return Labels{
		NotFoundTitle:      "Not Found",
		NotFoundMessage:    "헐",
		BadRequestTitle:    "Bad request",
		BadRequestMessage:  "헐",
		ServerErrorTitle:   "Internal Server Error",
		ServerErrorMessage: "헐",
		ListingTitle:       "모든 문서",
		EmptyListing:       "No pages found",
	}
}

// Merge fills every empty field of l from defaults.
func (l Labels) Merge(defaults Labels) Labels {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Labels{
		NotFoundTitle:      pick(l.NotFoundTitle, defaults.NotFoundTitle),
		NotFoundMessage:    pick(l.NotFoundMessage, defaults.NotFoundMessage),
		BadRequestTitle:    pick(l.BadRequestTitle, defaults.BadRequestTitle),
		BadRequestMessage:  pick(l.BadRequestMessage, defaults.BadRequestMessage),
		ServerErrorTitle:   pick(l.ServerErrorTitle, defaults.ServerErrorTitle),
		ServerErrorMessage: pick(l.ServerErrorMessage, defaults.ServerErrorMessage),
		ListingTitle:       pick(l.ListingTitle, defaults.ListingTitle),
		EmptyListing:       pick(l.EmptyListing, defaults.EmptyListing),
	}
}

// NotFound is the page rendered for unresolvable titles.
func (l Labels) NotFound() Page {
	return Page{Title: l.NotFoundTitle, Content: l.NotFoundMessage}
}

// BadRequest is the page rendered for malformed requests.
func (l Labels) BadRequest() Page {
	return Page{Title: l.BadRequestTitle, Content: l.BadRequestMessage}
}

// ServerError is the page rendered when the framework reports a 5xx error.
func (l Labels) ServerError() Page {
	return Page{Title: l.ServerErrorTitle, Content: l.ServerErrorMessage}
}
