package apt

import (
	"context"
	"path/filepath"
	"strings"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
)

// Environment holds the apt configuration values resolved once per run and
// read-only thereafter: the host architecture and the archive cache
// directory.
type Environment struct {
	Arch     string
	CacheDir string
}

// ReadEnvironment queries apt-config for the archive cache directory and
// the configured architecture.
func ReadEnvironment(ctx context.Context, runner CommandRunner) (*Environment, error) {
	out, err := runner.Run(ctx, "apt-config", "shell",
		"CACHE_ROOT_DIR", "Dir::Cache",
		"CACHE_ARCHIVE_SUBDIR", "Dir::Cache::archives",
		"ARCH", "APT::Architecture")
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.ErrEnvironment.Error())
	}

	vars := parseShellVars(out)
	rootDir, ok := vars["CACHE_ROOT_DIR"]
	if !ok {
		return nil, pkgerrors.Wrap(pkgerrors.ErrMetadataParse, "apt-config output misses CACHE_ROOT_DIR")
	}
	archiveSubdir, ok := vars["CACHE_ARCHIVE_SUBDIR"]
	if !ok {
		return nil, pkgerrors.Wrap(pkgerrors.ErrMetadataParse, "apt-config output misses CACHE_ARCHIVE_SUBDIR")
	}
	arch, ok := vars["ARCH"]
	if !ok {
		return nil, pkgerrors.Wrap(pkgerrors.ErrMetadataParse, "apt-config output misses ARCH")
	}

	return &Environment{
		Arch: arch,
		// apt-config reports the cache root relative to the filesystem
		// root, e.g. "var/cache/apt".
		CacheDir: filepath.Join("/", rootDir, archiveSubdir),
	}, nil
}

// parseShellVars parses apt-config shell output of the form KEY='value'.
func parseShellVars(out string) map[string]string {
	vars := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		vars[key] = strings.Trim(value, "'")
	}
	return vars
}
