package resolve

import (
	"context"
	"sort"

	"github.com/aptforge/aptdown/internal/logger"
	"github.com/aptforge/aptdown/pkg/model"
)

// Aggregator merges locally cached artifacts with a mirror's pool listing
// into a single candidate list. Local artifacts win on version collisions
// since they need no download. A failing remote lookup degrades to the
// local view instead of aborting the resolution.
type Aggregator struct {
	local  LocalLister
	remote RemoteIndex
	arch   string
}

// NewAggregator creates an aggregator for the given host architecture.
func NewAggregator(local LocalLister, remote RemoteIndex, arch string) *Aggregator {
	return &Aggregator{local: local, remote: remote, arch: arch}
}

// Candidates returns all known versions of a package sorted newest first.
func (a *Aggregator) Candidates(ctx context.Context, name string) ([]model.Package, error) {
	localPkgs, err := a.local.ListLocal(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[model.PackageVersion]bool, len(localPkgs))
	candidates := make([]model.Package, 0, len(localPkgs))
	for _, pkg := range localPkgs {
		if seen[pkg.Version] {
			continue
		}
		seen[pkg.Version] = true
		candidates = append(candidates, pkg)
	}

	for _, pkg := range a.remoteCandidates(ctx, name) {
		if seen[pkg.Version] {
			continue
		}
		seen[pkg.Version] = true
		candidates = append(candidates, pkg)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[j].Version.Less(candidates[i].Version)
	})
	return candidates, nil
}

func (a *Aggregator) remoteCandidates(ctx context.Context, name string) []model.Package {
	dir, err := a.remote.FindSourceDirectory(ctx, name)
	if err != nil {
		logger.Warn("Remote lookup failed, continuing with local candidates",
			logger.Fields{"package": name, "error": err.Error()})
		return nil
	}
	pkgs, err := a.remote.ListVersions(ctx, dir, name, a.arch)
	if err != nil {
		logger.Warn("Pool listing failed, continuing with local candidates",
			logger.Fields{"package": name, "error": err.Error()})
		return nil
	}
	return pkgs
}
