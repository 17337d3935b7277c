package apt

import (
	"context"
	"strings"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
)

const installedPrefix = "Installed: "

// System binds a CommandRunner to a resolved Environment and exposes the
// host-side collaborators consumed by the resolver.
type System struct {
	runner CommandRunner
	env    *Environment
}

// NewSystem creates a System for the given runner and environment.
func NewSystem(runner CommandRunner, env *Environment) *System {
	return &System{runner: runner, env: env}
}

// Environment returns the environment the system was built with.
func (s *System) Environment() *Environment {
	return s.env
}

// GetInstalled returns the currently installed package for name, or nil if
// the package is not installed. Probe failures (unknown package, apt-cache
// errors) also report "not installed"; the returned error is reserved for
// the resolver interface and is always nil here.
func (s *System) GetInstalled(ctx context.Context, name string) (*model.Package, error) {
	out, err := s.runner.RunEnv(ctx, []string{"LANG=C"}, "apt-cache", "policy", name)
	if err != nil {
		return nil, nil
	}
	for _, line := range strings.Split(out, "\n") {
		version, ok := strings.CutPrefix(strings.TrimSpace(line), installedPrefix)
		if !ok {
			continue
		}
		version = strings.TrimSpace(version)
		if version == "" || version == "(none)" {
			return nil, nil
		}
		return &model.Package{Name: name, Version: model.PackageVersion(version)}, nil
	}
	return nil, nil
}

// InstallCommand builds the apt-get invocation installing the resolved set
// from its local artifacts.
func (s *System) InstallCommand(packages []model.Package) string {
	parts := []string{"apt-get", "install", "-V", "--no-install-recommends"}
	for _, p := range packages {
		parts = append(parts, p.LocalPath)
	}
	return strings.Join(parts, " ")
}

// Install is the execution hook for the emitted command line. aptdown is a
// planner; running the command is left to the caller.
func (s *System) Install(_ context.Context, _ string) error {
	return pkgerrors.ErrInstallNotImplemented
}
