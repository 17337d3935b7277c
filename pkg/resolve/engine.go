// Package resolve turns a single downgrade request into the full set of
// package artifacts that apt needs to apply it. It walks the dependency
// graph breadth first, pinning each dependency to a concrete version and
// materializing its artifact before expanding it further.
package resolve

import (
	"context"

	"github.com/aptforge/aptdown/internal/logger"
	"github.com/aptforge/aptdown/pkg/download"
	"github.com/aptforge/aptdown/pkg/model"
)

// Event is a coarse progress notification emitted while resolving.
type Event struct {
	Phase string // resolving|selected|satisfied|downloading|done
	ID    string // package name
	Msg   string
}

// Hooks receives progress events. A nil OnEvent disables reporting.
type Hooks struct {
	OnEvent func(Event)
}

// Engine walks the dependency closure of a downgrade request.
type Engine struct {
	Installed  InstalledProber
	Candidates CandidateSource
	Deps       DependencyReader
	DL         download.Manager
	Hooks      Hooks
}

// Resolve computes the install set for downgrading name to version. The
// returned packages all carry a local artifact path and are ordered by
// discovery, the requested package first. An empty set means the system
// already satisfies the request.
func (e *Engine) Resolve(ctx context.Context, name string, version model.PackageVersion) ([]model.Package, error) {
	queue := []model.Dependency{{
		Name:        name,
		Constraints: []model.VersionConstraint{{Relation: model.RelationEQ, Version: version}},
	}}
	var install []model.Package

	for len(queue) > 0 {
		dep := queue[0]
		queue = queue[1:]
		emit(e.Hooks, Event{Phase: "resolving", ID: dep.Name, Msg: dep.String()})

		installed, err := e.Installed.GetInstalled(ctx, dep.Name)
		if err != nil {
			return nil, err
		}
		if installed != nil && dep.Matches(installed.Version) {
			emit(e.Hooks, Event{Phase: "satisfied", ID: dep.Name, Msg: installed.String()})
			continue
		}

		candidates, err := e.Candidates.Candidates(ctx, dep.Name)
		if err != nil {
			return nil, err
		}
		pkg, err := SelectVersion(dep, candidates, installed)
		if err != nil {
			return nil, err
		}
		if containsPackage(install, pkg) {
			continue
		}
		emit(e.Hooks, Event{Phase: "selected", ID: pkg.Name, Msg: pkg.String()})

		emit(e.Hooks, Event{Phase: "downloading", ID: pkg.Name, Msg: pkg.Filename()})
		if err := e.DL.Fetch(ctx, &pkg); err != nil {
			return nil, err
		}

		deps, err := e.Deps.GetDependencies(ctx, pkg)
		if err != nil {
			return nil, err
		}
		logger.Debug("Expanded dependencies",
			logger.Fields{"package": pkg.String(), "count": len(deps)})
		queue = append(queue, deps...)
		install = append(install, pkg)
	}

	emit(e.Hooks, Event{Phase: "done"})
	return install, nil
}

func containsPackage(set []model.Package, pkg model.Package) bool {
	for _, p := range set {
		if p.Equal(pkg) {
			return true
		}
	}
	return false
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
