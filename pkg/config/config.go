// Package config provides configuration management for aptdown. It handles
// loading and validating the YAML configuration file, providing sensible
// defaults when no file exists.
package config

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aptforge/aptdown/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Mirror configuration for remote candidate discovery.
	Mirror MirrorConfig `yaml:"mirror"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// MirrorConfig describes the Debian mirror and package-search endpoints.
type MirrorConfig struct {
	// BaseURL is the mirror root, e.g. "http://ftp.debian.org/debian".
	// Pool links on the search page must live under <BaseURL>/pool/ to be
	// recognized.
	BaseURL string `yaml:"base_url"`

	// SearchURL is the package-search page queried to map a binary
	// package name to its source pool directory.
	SearchURL string `yaml:"search_url"`
}

// Settings represents general application settings.
type Settings struct {
	// CacheDir overrides the per-user artifact cache directory.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// HTTPTimeout bounds every remote index and artifact request.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default configuration values.
const (
	DefaultMirrorBaseURL = "http://ftp.debian.org/debian"
	DefaultSearchURL     = "https://packages.debian.org/search"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mirror: MirrorConfig{
			BaseURL:   DefaultMirrorBaseURL,
			SearchURL: DefaultSearchURL,
		},
		Settings: Settings{
			HTTPTimeout: DefaultHTTPTimeout,
			LogLevel:    "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.Wrap(errors.ErrEnvironment, "config file path cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file path %s", path)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Mirror.BaseURL == "" {
		c.Mirror.BaseURL = DefaultMirrorBaseURL
	}
	if c.Mirror.SearchURL == "" {
		c.Mirror.SearchURL = DefaultSearchURL
	}
	if c.Settings.HTTPTimeout <= 0 {
		c.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "info"
	}
}

// Validate checks that the configured URLs parse.
func (c *Config) Validate() error {
	for _, raw := range []string{c.Mirror.BaseURL, c.Mirror.SearchURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid mirror URL %q", raw)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Wrapf(errors.ErrEnvironment, "mirror URL %q must be http or https", raw)
		}
	}
	return nil
}

// PoolPrefix returns the URL prefix a pool link must carry to be accepted
// when scraping the package-search page.
func (c *Config) PoolPrefix() string {
	return strings.TrimRight(c.Mirror.BaseURL, "/") + "/pool/"
}
