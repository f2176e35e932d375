package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/eringen/docserv"
)

func runLoadConfig(t *testing.T, args ...string) docserv.Config {
	t.Helper()
	var got docserv.Config
	cmd := serveCommand()
	cmd.Action = func(c *cli.Context) error {
		var err error
		got, err = loadConfig(c)
		return err
	}
	app := &cli.App{Name: "docserv", Commands: []*cli.Command{cmd}}
	require.NoError(t, app.Run(append([]string{"docserv", "serve"}, args...)))
	return got
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := runLoadConfig(t)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "docs", cfg.DocDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "templates/default.mustache", cfg.TemplatePath)
	assert.False(t, cfg.DisableMetrics)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docserv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\ndocs: wiki\nstrict_template: true\n"), 0o644))

	cfg := runLoadConfig(t, "--config", path, "--docs", "pages", "--metrics=false")
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "pages", cfg.DocDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.True(t, cfg.StrictTemplate)
	assert.True(t, cfg.DisableMetrics)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cmd := serveCommand()
	cmd.Action = func(c *cli.Context) error {
		_, err := loadConfig(c)
		return err
	}
	app := &cli.App{Name: "docserv", Commands: []*cli.Command{cmd}}
	err := app.Run([]string{"docserv", "serve", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
