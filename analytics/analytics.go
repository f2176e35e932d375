// Package analytics counts page views of served documents in SQLite and
// reports the most viewed pages.
package analytics

import "time"

// PageViews is the aggregated view count of one page.
type PageViews struct {
	Title      string    `json:"title"`
	Views      int64     `json:"views"`
	LastViewed time.Time `json:"last_viewed"`
}

// Limits for the top pages endpoint.
const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)
