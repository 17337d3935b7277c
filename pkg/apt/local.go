package apt

import (
	"fmt"
	"path/filepath"
	"strings"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
)

// ListLocal globs the apt archive cache for every version of a package
// available as a local .deb, for the configured architecture plus the two
// architecture-independent markers.
func (s *System) ListLocal(name string) ([]model.Package, error) {
	var packages []model.Package
	for _, arch := range []string{s.env.Arch, model.ArchAll, model.ArchAny} {
		pattern := filepath.Join(s.env.CacheDir, fmt.Sprintf("%s_*_%s.deb", name, arch))
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "globbing %s", pattern)
		}
		for _, match := range matches {
			version, ok := versionFromFilename(filepath.Base(match))
			if !ok {
				continue
			}
			packages = append(packages, model.Package{
				Name:      name,
				Version:   version,
				Arch:      arch,
				LocalPath: match,
			})
		}
	}
	return packages, nil
}

// versionFromFilename extracts the version segment of a
// "name_version_arch.deb" filename. Pool filenames escape the epoch colon
// as "%3a".
func versionFromFilename(base string) (model.PackageVersion, bool) {
	parts := strings.Split(strings.TrimSuffix(base, ".deb"), "_")
	if len(parts) < 3 {
		return "", false
	}
	version := strings.ReplaceAll(parts[len(parts)-2], "%3a", ":")
	if version == "" {
		return "", false
	}
	return model.PackageVersion(version), true
}
