package docserv

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eringen/docserv/markdown"
	"github.com/eringen/docserv/views"
)

func (a *App) handleIndex(c echo.Context) error {
	return a.renderPage(c, IndexTitle)
}

func (a *App) handlePage(c echo.Context) error {
	return a.renderPage(c, c.Param("title"))
}

// renderPage resolves title, converts it to HTML and renders it. Any lookup
// failure, including an invalid title, is answered with the not-found page.
func (a *App) renderPage(c echo.Context, title string) error {
	src, err := a.Pages.ReadPage(title)
	if err != nil {
		a.metrics.renders.WithLabelValues(outcomeNotFound).Inc()
		return a.ShowNotFound(c)
	}
	content, err := renderFragment(c.Request().Context(), markdown.Markdown(src))
	if err != nil {
		return errors.Wrapf(err, "render markdown for %s", title)
	}
	code, err := a.show(c, http.StatusOK, views.Page{Title: title, Content: content})
	if err != nil || code != http.StatusOK {
		return err
	}
	a.metrics.renders.WithLabelValues(outcomeOK).Inc()
	a.recordView(c, title)
	return nil
}

func (a *App) handleListPages(c echo.Context) error {
	titles, err := a.Pages.ListPages()
	if err != nil {
		a.log.Debugw("no pages listed", "dir", a.Pages.Dir(), "error", err)
	}
	a.metrics.listed.Set(float64(len(titles)))
	labels := a.Config.Labels
	content, err := renderFragment(c.Request().Context(), views.PageList(titles, labels.EmptyListing))
	if err != nil {
		return errors.Wrap(err, "render page list")
	}
	_, err = a.show(c, http.StatusOK, views.Page{Title: labels.ListingTitle, Content: content})
	return err
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.listPageInfo())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.listPageInfo())
}

// listPageInfo lists pages for the generated documents, treating an
// unreadable document directory as empty.
func (a *App) listPageInfo() []PageInfo {
	pages, err := a.Pages.ListPageInfo()
	if err != nil {
		a.log.Debugw("no pages listed", "dir", a.Pages.Dir(), "error", err)
	}
	return pages
}

func (a *App) recordView(c echo.Context, title string) {
	if a.Stats == nil {
		return
	}
	if err := a.Stats.RecordView(c.Request().Context(), title, time.Now()); err != nil {
		a.log.Warnw("record page view", "title", title, "error", err)
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.ShowNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Errorw("server error", "uri", c.Request().RequestURI, "error", err)
		_, _ = a.show(c, code, a.Config.Labels.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
