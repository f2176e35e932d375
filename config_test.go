package docserv

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.setDefaults()

	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.Equal(t, "docs", cfg.DocDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "templates/default.mustache", cfg.TemplatePath)
	assert.Equal(t, "http://localhost:8000", cfg.SiteURL)
	assert.Equal(t, "모든 문서", cfg.Labels.ListingTitle)
	assert.Equal(t, "No pages found", cfg.Labels.EmptyListing)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidatePort(t *testing.T) {
	for _, port := range []int{-1, 65536, 100000} {
		cfg := Config{Port: port}
		cfg.setDefaults()
		assert.Error(t, cfg.Validate(), "port %d", port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "docserv.yaml", []byte(`
port: 9000
docs: wiki
template: layout.mustache
stats_db: data/views.db
labels:
  listing_title: All documents
`), 0o644))

	cfg, err := LoadConfigFile(fs, "docserv.yaml")
	require.NoError(t, err)
	cfg.setDefaults()

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "wiki", cfg.DocDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "layout.mustache", cfg.TemplatePath)
	assert.Equal(t, "data/views.db", cfg.StatsDatabasePath)
	assert.Equal(t, "All documents", cfg.Labels.ListingTitle)
	assert.Equal(t, "Not Found", cfg.Labels.NotFoundTitle)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("port: [nope"), 0o644))

	_, err := LoadConfigFile(fs, "bad.yaml")
	assert.Error(t, err)

	_, err = LoadConfigFile(fs, "missing.yaml")
	assert.Error(t, err)
}
