package docserv

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/docserv/views"
)

// show renders page through the template and writes it with code. When the
// template fails the response becomes a 500 carrying whatever output the
// template produced. The status actually written is returned.
func (a *App) show(c echo.Context, code int, page views.Page) (int, error) {
	out, err := a.Template.Render(page)
	if err != nil {
		a.log.Errorw("template render failed", "template", a.Template.Path(), "title", page.Title, "error", err)
		a.metrics.renders.WithLabelValues(outcomeTemplateError).Inc()
		code = http.StatusInternalServerError
	}
	return code, writeHTML(c, code, out)
}

// ShowNotFound renders the not-found page with status 404.
func (a *App) ShowNotFound(c echo.Context) error {
	_, err := a.show(c, http.StatusNotFound, a.Config.Labels.NotFound())
	return err
}

// ShowBadRequest renders the bad-request page with status 400.
func (a *App) ShowBadRequest(c echo.Context) error {
	_, err := a.show(c, http.StatusBadRequest, a.Config.Labels.BadRequest())
	return err
}

// writeHTML writes body as an HTML response with an explicit length.
func writeHTML(c echo.Context, code int, body []byte) error {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	h.Set(echo.HeaderContentLength, strconv.Itoa(len(body)))
	c.Response().WriteHeader(code)
	_, err := c.Response().Write(body)
	return err
}

// renderFragment renders cmp to an HTML string for embedding as content.
func renderFragment(ctx context.Context, cmp templ.Component) (string, error) {
	html, err := templ.ToGoHTML(ctx, cmp)
	return string(html), err
}
