package resolve

import (
	"context"
	"net/url"

	"github.com/aptforge/aptdown/pkg/model"
)

//go:generate mockgen -destination=./mocks/resolve.go -package=mocks . LocalLister,RemoteIndex,CandidateSource,InstalledProber,DependencyReader

// LocalLister enumerates cached artifacts of a package in the local archive.
type LocalLister interface {
	ListLocal(name string) ([]model.Package, error)
}

// RemoteIndex locates a package's pool directory on a mirror and lists the
// artifacts published there.
type RemoteIndex interface {
	FindSourceDirectory(ctx context.Context, name string) (*url.URL, error)
	ListVersions(ctx context.Context, dir *url.URL, name, arch string) ([]model.Package, error)
}

// CandidateSource yields every known installable version of a package,
// newest first.
type CandidateSource interface {
	Candidates(ctx context.Context, name string) ([]model.Package, error)
}

// InstalledProber reports the currently installed version of a package, or
// nil when it is not installed.
type InstalledProber interface {
	GetInstalled(ctx context.Context, name string) (*model.Package, error)
}

// DependencyReader extracts the direct dependencies of a concrete package
// version.
type DependencyReader interface {
	GetDependencies(ctx context.Context, pkg model.Package) ([]model.Dependency, error)
}
