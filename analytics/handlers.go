package analytics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves page-view statistics over HTTP.
type Handler struct {
	store *Store
	log   *zap.SugaredLogger
}

// NewHandler creates a new analytics handler.
func NewHandler(store *Store, log *zap.SugaredLogger) *Handler {
	return &Handler{store: store, log: log}
}

// RegisterRoutes mounts the statistics endpoints on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/views", h.TopPages)
}

// TopPages returns the most viewed pages as JSON. The optional limit query
// parameter is clamped to [1, 100] and defaults to 10.
func (h *Handler) TopPages(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"))
	pages, err := h.store.TopPages(c.Request().Context(), limit)
	if err != nil {
		h.log.Errorw("query top pages", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, pages)
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultTopLimit
	}
	if n > maxTopLimit {
		return maxTopLimit
	}
	return n
}
