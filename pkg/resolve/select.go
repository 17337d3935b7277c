package resolve

import (
	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
)

// SelectVersion picks the package version that should end up installed for
// dep. The installed version wins whenever it already satisfies every
// constraint, keeping the change set minimal. Otherwise the newest
// candidate satisfying all constraints is chosen; candidates must be sorted
// newest first.
func SelectVersion(dep model.Dependency, candidates []model.Package, installed *model.Package) (model.Package, error) {
	if installed != nil && dep.Matches(installed.Version) {
		return *installed, nil
	}
	for _, candidate := range candidates {
		if dep.Matches(candidate.Version) {
			return candidate, nil
		}
	}
	return model.Package{}, pkgerrors.Wrapf(pkgerrors.ErrUnresolvable,
		"no candidate satisfies %s (%d candidates)", dep, len(candidates))
}
