package cache

import (
	"fmt"

	"github.com/aptforge/aptdown/internal/logger"
)

// Operation wraps a Manager with human-readable reporting for the CLI.
type Operation struct {
	manager Manager
}

// NewOperation creates a cache operation instance.
func NewOperation(manager Manager) *Operation {
	return &Operation{manager: manager}
}

// Clean cleans the cache based on the provided flags and describes the
// result.
func (op *Operation) Clean(all, artifacts, temp bool) (string, error) {
	options := CleanOptions{All: all, Artifacts: artifacts, Temp: temp}

	logger.Debug("Cleaning cache", logger.Fields{
		"all":       options.All,
		"artifacts": options.Artifacts,
		"temp":      options.Temp,
	})

	result, err := op.manager.Clean(options)
	if err != nil {
		return "", fmt.Errorf("failed to clean cache: %w", err)
	}

	if result.TotalFreed == 0 {
		return "No files were removed from the cache.", nil
	}

	msg := fmt.Sprintf("Successfully cleaned cache. Freed %s of disk space.", formatBytes(result.TotalFreed))
	if result.ArtifactFreed > 0 {
		msg += fmt.Sprintf("\n- Artifacts: %s", formatBytes(result.ArtifactFreed))
	}
	if result.TempFreed > 0 {
		msg += fmt.Sprintf("\n- Temp files: %s", formatBytes(result.TempFreed))
	}
	return msg, nil
}

// GetInfo returns a human-readable description of the cache.
func (op *Operation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get cache info: %w", err)
	}

	return fmt.Sprintf(`Cache Information:
  Directory:  %s
  Total Size: %s
  Artifacts:  %s (%d files)
  Temp files: %s (%d files)`,
		info.Directory,
		formatBytes(info.TotalSize),
		formatBytes(info.ArtifactSize),
		info.ArtifactFiles,
		formatBytes(info.TempSize),
		info.TempFiles,
	), nil
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"K", "M", "G", "T", "P", "E"}
	if exp < len(units) {
		return fmt.Sprintf("%.1f %sB", float64(bytes)/float64(div), units[exp])
	}
	return fmt.Sprintf("%d B", bytes)
}
