package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/eringen/docserv"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the document directory over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config `FILE`; flags override its values"},
			&cli.StringFlag{Name: "host", Value: "127.0.0.1", Usage: "listen host"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8000, Usage: "server port number"},
			&cli.StringFlag{Name: "docs", Value: "docs", Usage: "`PATH` of markdown docs"},
			&cli.StringFlag{Name: "static", Value: "static", Usage: "`PATH` of static files"},
			&cli.StringFlag{Name: "template", Value: "templates/default.mustache", Usage: "template `PATH`"},
			&cli.StringFlag{Name: "site-url", Usage: "canonical site URL for the sitemap and feed"},
			&cli.BoolFlag{Name: "strict-template", Usage: "fail renders that reference unknown template variables"},
			&cli.StringFlag{Name: "stats-db", Usage: "SQLite `FILE` for page-view statistics (disabled when empty)"},
			&cli.BoolFlag{Name: "metrics", Value: true, Usage: "expose Prometheus metrics at /metrics"},
			&cli.BoolFlag{Name: "debug", Usage: "enable development logging"},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger, err := newLogger(c.Bool("debug"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	app, err := docserv.New(cfg, docserv.WithLogger(logger.Sugar()))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Start(ctx); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// loadConfig reads the optional config file and applies flags on top. A
// flag wins when it was given explicitly or the file left the field empty.
func loadConfig(c *cli.Context) (docserv.Config, error) {
	var cfg docserv.Config
	if path := c.String("config"); path != "" {
		loaded, err := docserv.LoadConfigFile(afero.NewOsFs(), path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	str := func(name string, field *string) {
		if c.IsSet(name) || *field == "" {
			*field = c.String(name)
		}
	}
	str("host", &cfg.Host)
	str("docs", &cfg.DocDir)
	str("static", &cfg.StaticDir)
	str("template", &cfg.TemplatePath)
	str("site-url", &cfg.SiteURL)
	str("stats-db", &cfg.StatsDatabasePath)

	if c.IsSet("port") || cfg.Port == 0 {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("strict-template") {
		cfg.StrictTemplate = c.Bool("strict-template")
	}
	if c.IsSet("metrics") {
		cfg.DisableMetrics = !c.Bool("metrics")
	}
	return cfg, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
