// Package cache maintains the archive cache that downloaded .deb artifacts
// land in. It removes stale artifacts and the temp files an interrupted
// download leaves behind.
package cache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aptforge/aptdown/pkg/errors"
)

// tempPattern matches the temp files the download manager writes before an
// artifact is published into the cache.
const tempPattern = "dl-*.tmp"

// DefaultManager implements the Manager interface over a single directory.
type DefaultManager struct {
	directory string
}

// NewManager creates a cache manager for the given directory.
func NewManager(directory string) (*DefaultManager, error) {
	if directory == "" {
		return nil, ErrCacheDirectory
	}
	return &DefaultManager{directory: directory}, nil
}

// Clean removes cached files according to the specified options and reports
// the bytes freed.
func (cm *DefaultManager) Clean(options CleanOptions) (*CleanResult, error) {
	result := &CleanResult{}

	if !options.Artifacts && !options.Temp {
		options.All = true
	}

	if options.All || options.Temp {
		size, err := cm.removeMatching(tempPattern)
		if err != nil {
			return nil, errors.Wrap(ErrCacheClean, err.Error())
		}
		result.TempFreed = size
		result.TotalFreed += size
	}

	if options.All || options.Artifacts {
		size, err := cm.removeMatching("*.deb")
		if err != nil {
			return nil, errors.Wrap(ErrCacheClean, err.Error())
		}
		result.ArtifactFreed = size
		result.TotalFreed += size
	}

	return result, nil
}

// GetInfo returns size and file counts for the cache directory.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	info := &Info{Directory: cm.directory}

	entries, err := os.ReadDir(cm.directory)
	if os.IsNotExist(err) {
		return info, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cache directory %s", cm.directory)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		st, err := entry.Info()
		if err != nil {
			continue
		}
		switch {
		case strings.HasSuffix(entry.Name(), ".deb"):
			info.ArtifactSize += st.Size()
			info.ArtifactFiles++
		case matchesTempPattern(entry.Name()):
			info.TempSize += st.Size()
			info.TempFiles++
		}
	}
	info.TotalSize = info.ArtifactSize + info.TempSize
	return info, nil
}

// GetDirectory returns the cache directory path.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// removeMatching deletes all files matching pattern in the cache directory
// and returns the bytes freed.
func (cm *DefaultManager) removeMatching(pattern string) (int64, error) {
	matches, err := filepath.Glob(filepath.Join(cm.directory, pattern))
	if err != nil {
		return 0, err
	}

	var freed int64
	for _, match := range matches {
		st, err := os.Stat(match)
		if err != nil || st.IsDir() {
			continue
		}
		if err := os.Remove(match); err != nil {
			return freed, err
		}
		freed += st.Size()
	}
	return freed, nil
}

func matchesTempPattern(name string) bool {
	ok, err := filepath.Match(tempPattern, name)
	return err == nil && ok
}
