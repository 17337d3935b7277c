package apt

import (
	"context"
	"os"
	"strings"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
)

const dependsPrefix = "Depends: "

// GetDependencies reads the direct dependencies a package declares. When the
// package's artifact is available on disk the file itself is queried,
// otherwise the name=version record from the cache metadata is used.
func (s *System) GetDependencies(ctx context.Context, pkg model.Package) ([]model.Dependency, error) {
	target := pkg.Name + "=" + string(pkg.Version)
	if pkg.LocalPath != "" {
		if st, err := os.Stat(pkg.LocalPath); err == nil && st.Mode().IsRegular() {
			target = pkg.LocalPath
		}
	}

	out, err := s.runner.Run(ctx, "apt-cache", "show", target)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading dependencies of %s", pkg)
	}

	for _, line := range strings.Split(out, "\n") {
		value, ok := strings.CutPrefix(line, dependsPrefix)
		if !ok {
			continue
		}
		deps, err := ParseDepends(value)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "parsing dependencies of %s", pkg)
		}
		return deps, nil
	}
	return nil, pkgerrors.Wrapf(pkgerrors.ErrMetadataParse, "no Depends line in apt-cache output for %s", pkg)
}

// ParseDepends parses the value of a Depends: line into dependencies. The
// value is a comma-separated list of clauses of the form
// "name (relop version)"; only the first alternative of an "a | b" clause
// is considered.
func ParseDepends(value string) ([]model.Dependency, error) {
	var deps []model.Dependency
	for _, clause := range strings.Split(value, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if first, _, found := strings.Cut(clause, "|"); found {
			clause = strings.TrimSpace(first)
		}
		dep, err := parseClause(clause)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func parseClause(clause string) (model.Dependency, error) {
	name, rest, _ := strings.Cut(clause, " ")
	// Multiarch annotation, e.g. "libc6:any".
	name = strings.TrimSuffix(name, ":any")
	if name == "" {
		return model.Dependency{}, pkgerrors.Wrapf(pkgerrors.ErrMetadataParse, "empty dependency clause")
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return model.Dependency{
			Name:        name,
			Constraints: []model.VersionConstraint{{Relation: model.RelationAny}},
		}, nil
	}

	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return model.Dependency{}, pkgerrors.Wrapf(pkgerrors.ErrMetadataParse, "malformed version clause %q", clause)
	}
	fields := strings.Fields(rest[1 : len(rest)-1])
	if len(fields) != 2 {
		return model.Dependency{}, pkgerrors.Wrapf(pkgerrors.ErrMetadataParse, "malformed version clause %q", clause)
	}
	relation, err := model.ParseRelation(fields[0])
	if err != nil {
		return model.Dependency{}, pkgerrors.Wrap(pkgerrors.ErrMetadataParse, err.Error())
	}

	return model.Dependency{
		Name: name,
		Constraints: []model.VersionConstraint{
			{Relation: relation, Version: model.PackageVersion(fields[1])},
		},
	}, nil
}
