// Package model provides the data structures for representing Debian
// packages, versions, dependencies and version constraints used by the
// aptdown resolver.
package model

import (
	"fmt"
	"net/url"
	"strings"
)

// Architecture markers used in pool filenames for artifacts that are not
// tied to a specific machine architecture.
const (
	ArchAll = "all"
	ArchAny = "any"
)

// VersionRelation is the comparison operator of a single version constraint.
type VersionRelation int

// Version relations in Debian dependency syntax order.
const (
	RelationAny VersionRelation = iota
	RelationLT
	RelationLE
	RelationEQ
	RelationGE
	RelationGT
)

// ParseRelation parses a Debian relational operator ("<<", "<=", "=", ">=",
// ">>") into a VersionRelation.
func ParseRelation(s string) (VersionRelation, error) {
	switch s {
	case "<<":
		return RelationLT, nil
	case "<=":
		return RelationLE, nil
	case "=":
		return RelationEQ, nil
	case ">=":
		return RelationGE, nil
	case ">>":
		return RelationGT, nil
	default:
		return RelationAny, fmt.Errorf("unknown version relation %q", s)
	}
}

func (r VersionRelation) String() string {
	switch r {
	case RelationLT:
		return "<<"
	case RelationLE:
		return "<="
	case RelationEQ:
		return "="
	case RelationGE:
		return ">="
	case RelationGT:
		return ">>"
	default:
		return "any"
	}
}

// VersionConstraint pairs a relation with a reference version.
type VersionConstraint struct {
	Relation VersionRelation
	Version  PackageVersion
}

// Check reports whether the given version satisfies the constraint.
// RelationAny always matches.
func (c VersionConstraint) Check(v PackageVersion) bool {
	switch c.Relation {
	case RelationLT:
		return v.Compare(c.Version) < 0
	case RelationLE:
		return v.Compare(c.Version) <= 0
	case RelationEQ:
		return v.Compare(c.Version) == 0
	case RelationGE:
		return v.Compare(c.Version) >= 0
	case RelationGT:
		return v.Compare(c.Version) > 0
	default:
		return true
	}
}

// Dependency is a requirement on a package name, optionally narrowed by one
// or more version constraints. All constraints must hold for a candidate to
// match.
type Dependency struct {
	Name        string
	Constraints []VersionConstraint
}

// Matches reports whether a candidate version satisfies every constraint,
// short-circuiting on the first failure.
func (d Dependency) Matches(v PackageVersion) bool {
	for _, c := range d.Constraints {
		if !c.Check(v) {
			return false
		}
	}
	return true
}

func (d Dependency) String() string {
	parts := make([]string, 0, len(d.Constraints))
	for _, c := range d.Constraints {
		if c.Relation == RelationAny {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", c.Relation, c.Version))
	}
	if len(parts) == 0 {
		return d.Name
	}
	return fmt.Sprintf("%s (%s)", d.Name, strings.Join(parts, ", "))
}

// Package is one concrete installable artifact. LocalPath points at an
// on-disk .deb when the artifact is (or has been made) locally available;
// SourceURL points at its pool location otherwise. LocalPath is attached
// once after download and the value is not mutated further.
type Package struct {
	Name      string
	Version   PackageVersion
	Arch      string
	LocalPath string
	SourceURL *url.URL
}

// Equal reports whether two packages denote the same artifact. Identity is
// name, version and architecture; an empty architecture (as reported by the
// installed-state probe) matches any. Location is deliberately excluded so
// a locally cached copy and its remote counterpart dedup to one entry.
func (p Package) Equal(other Package) bool {
	if p.Name != other.Name || p.Version.Compare(other.Version) != 0 {
		return false
	}
	return p.Arch == "" || other.Arch == "" || p.Arch == other.Arch
}

// Filename returns the canonical pool filename for the package.
func (p Package) Filename() string {
	return fmt.Sprintf("%s_%s_%s.deb", p.Name, p.Version, p.Arch)
}

func (p Package) String() string {
	return fmt.Sprintf("%s=%s", p.Name, p.Version)
}
