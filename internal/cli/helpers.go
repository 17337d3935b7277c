package cli

import (
	"github.com/aptforge/aptdown/pkg/config"
	"github.com/aptforge/aptdown/pkg/fsutil"
)

// loadConfig reads the config file at path. With an empty path the default
// location is used; a missing file yields the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		defaultPath, err := fsutil.GetConfigPath()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = defaultPath
	}
	return config.LoadConfig(path)
}

// cacheDir resolves the directory downloaded artifacts are stored in: the
// configured override, or the per-user cache directory. The apt archive
// itself is only read, never written; it needs root.
func cacheDir(cfg *config.Config) (string, error) {
	if cfg.Settings.CacheDir != "" {
		return cfg.Settings.CacheDir, nil
	}
	return fsutil.GetCacheDir()
}
