package docserv

import (
	"net"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eringen/docserv/views"
)

// Config holds all configuration for a docserv site. It is read once at
// startup and never modified afterwards.
type Config struct {
	Host         string `yaml:"host"`     // Listen host (default "127.0.0.1")
	Port         int    `yaml:"port"`     // Listen port (default 8000)
	DocDir       string `yaml:"docs"`     // Markdown directory (default "docs")
	StaticDir    string `yaml:"static"`   // Static assets mounted at /static (default "static")
	TemplatePath string `yaml:"template"` // Page template (default "templates/default.mustache")

	SiteName string `yaml:"site_name"` // Feed title (default "docs")
	SiteURL  string `yaml:"site_url"`  // Canonical URL for sitemap and feed (default "http://localhost:<port>")

	StrictTemplate    bool   `yaml:"strict_template"` // Fail renders that reference unknown variables
	StatsDatabasePath string `yaml:"stats_db"`        // SQLite page-view database; empty disables statistics
	DisableMetrics    bool   `yaml:"disable_metrics"` // Hide /metrics and skip request metrics

	Labels views.Labels `yaml:"labels"`
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.DocDir == "" {
		c.DocDir = "docs"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "templates/default.mustache"
	}
	if c.SiteName == "" {
		c.SiteName = "docs"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:" + strconv.Itoa(c.Port)
	}
	c.Labels = c.Labels.Merge(views.DefaultLabels())
}

// Validate checks the values that must be usable before the server starts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DocDir, validation.Required),
		validation.Field(&c.StaticDir, validation.Required),
		validation.Field(&c.TemplatePath, validation.Required),
	)
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadConfigFile reads a YAML configuration file. Unset fields keep their
// zero values and are defaulted by New.
func LoadConfigFile(fs afero.Fs, path string) (Config, error) {
	var cfg Config
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the logger used for request and error logging.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithFs sets the filesystem pages, static assets and the template are read
// from (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with and
// served from.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *App) {
		a.registry = reg
	}
}
