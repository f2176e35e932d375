// Package docserv serves a directory of Markdown documents as HTML pages
// rendered through a single mustache template, together with a generated
// page listing and a static asset mount.
package docserv

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/docserv/analytics"
)

const shutdownTimeout = 10 * time.Second

// App is the central docserv application. It wires together the page store,
// the template, handlers, middleware and optional statistics.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Pages    *PageStore
	Template *Template
	Stats    *analytics.Store

	log      *zap.SugaredLogger
	fs       afero.Fs
	registry *prometheus.Registry
	metrics  *metrics
}

// New validates cfg, compiles the page template and builds the HTTP
// handler. Any error here is a startup failure: the server must not start.
func New(cfg Config, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		log:    zap.NewNop().Sugar(),
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "docserv: invalid config")
	}
	a.log.Debugw("configuration",
		"addr", cfg.Addr(),
		"docs", cfg.DocDir,
		"static", cfg.StaticDir,
		"template", cfg.TemplatePath,
	)

	tmpl, err := LoadTemplate(a.fs, cfg.TemplatePath, cfg.StrictTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "docserv: load template")
	}
	a.Template = tmpl
	a.Pages = NewPageStore(a.fs, cfg.DocDir)
	a.metrics = newMetrics(a.registry)

	if cfg.StatsDatabasePath != "" {
		stats, err := analytics.NewStore(cfg.StatsDatabasePath)
		if err != nil {
			return nil, errors.Wrap(err, "docserv: init statistics")
		}
		a.Stats = stats
	}

	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.StaticFS("/static", afero.NewIOFS(afero.NewBasePathFs(a.fs, a.Config.StaticDir)))

	e.GET("/", a.handleIndex)
	e.GET("/pages", a.handleListPages)
	e.GET("/pages/_pages", a.handleListPages) // legacy
	e.GET("/pages/:title", a.handlePage)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	if !a.Config.DisableMetrics {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.registry,
		}))
	}
	if a.Stats != nil {
		analytics.NewHandler(a.Stats, a.log).RegisterRoutes(e)
	}
}

// Start serves HTTP on the configured address until ctx is cancelled, then
// shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infow("listening", "addr", a.Config.Addr())
		if err := a.Echo.Start(a.Config.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "docserv: serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Infow("shutting down")
		return a.Echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.Stats != nil {
		return a.Stats.Close()
	}
	return nil
}
