package download

import (
	"context"

	"github.com/aptforge/aptdown/pkg/model"
)

//go:generate mockgen -destination=./mocks/download.go -package=mocks . Manager

// Manager materializes remote package artifacts in the local archive cache.
type Manager interface {
	// Fetch ensures the artifact for pkg exists locally and records the
	// resulting path in pkg.LocalPath. Packages that already carry a local
	// artifact are returned untouched.
	Fetch(ctx context.Context, pkg *model.Package) error
}
