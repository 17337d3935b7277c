package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMirrorBaseURL, cfg.Mirror.BaseURL)
	assert.Equal(t, DefaultSearchURL, cfg.Mirror.SearchURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMirrorBaseURL, cfg.Mirror.BaseURL)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigFromReader(t *testing.T) {
	yaml := `
mirror:
  base_url: http://deb.example.org/debian
settings:
  http_timeout: 5s
  log_level: debug
  cache_dir: /tmp/aptdown-cache
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)
	assert.Equal(t, "http://deb.example.org/debian", cfg.Mirror.BaseURL)
	assert.Equal(t, DefaultSearchURL, cfg.Mirror.SearchURL, "unset fields keep defaults")
	assert.Equal(t, 5*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, "/tmp/aptdown-cache", cfg.Settings.CacheDir)
}

func TestLoadConfigFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "broken yaml", yaml: "mirror: ["},
		{name: "bad scheme", yaml: "mirror:\n  base_url: ftp://ftp.debian.org/debian\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromReader(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPoolPrefix(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://ftp.debian.org/debian/pool/", cfg.PoolPrefix())

	cfg.Mirror.BaseURL = "http://deb.example.org/debian/"
	assert.Equal(t, "http://deb.example.org/debian/pool/", cfg.PoolPrefix())
}
