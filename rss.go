package docserv

import (
	"encoding/xml"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/docserv/views"
)

// maxFeedItems bounds the recent changes feed.
const maxFeedItems = 50

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	GUID    string `xml:"guid"`
}

// renderRSS writes a feed of the most recently modified pages, newest first.
func (a *App) renderRSS(c echo.Context, pages []PageInfo) error {
	recent := make([]PageInfo, len(pages))
	copy(recent, pages)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].ModTime.After(recent[j].ModTime)
	})
	if len(recent) > maxFeedItems {
		recent = recent[:maxFeedItems]
	}

	base := a.Config.SiteURL
	items := make([]rssItem, 0, len(recent))
	for _, p := range recent {
		pageURL := views.BuildURL(base, views.PageURL(p.Title))
		items = append(items, rssItem{
			Title:   p.Title,
			Link:    pageURL,
			PubDate: p.ModTime.Format(time.RFC1123Z),
			GUID:    pageURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.SiteName,
			Link:        views.BuildURL(base),
			Description: a.Config.Labels.ListingTitle,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(feed)
}
