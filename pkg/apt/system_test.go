package apt

import (
	"context"
	"testing"

	"github.com/aptforge/aptdown/pkg/apt/mocks"
	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const policyInstalledOutput = `curl:
  Installed: 7.60.0-1
  Candidate: 7.64.0-4
  Version table:
     7.64.0-4 500
        500 http://deb.debian.org/debian buster/main amd64 Packages
`

const policyNotInstalledOutput = `curl:
  Installed: (none)
  Candidate: 7.64.0-4
`

func testSystem(t *testing.T) (*System, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	env := &Environment{Arch: "amd64", CacheDir: t.TempDir()}
	return NewSystem(runner, env), runner
}

func TestGetInstalled(t *testing.T) {
	sys, runner := testSystem(t)
	runner.EXPECT().
		RunEnv(gomock.Any(), []string{"LANG=C"}, "apt-cache", "policy", "curl").
		Return(policyInstalledOutput, nil)

	pkg, err := sys.GetInstalled(context.Background(), "curl")
	require.NoError(t, err)
	require.NotNil(t, pkg)
	assert.Equal(t, "curl", pkg.Name)
	assert.Equal(t, model.PackageVersion("7.60.0-1"), pkg.Version)
}

func TestGetInstalled_None(t *testing.T) {
	sys, runner := testSystem(t)
	runner.EXPECT().
		RunEnv(gomock.Any(), []string{"LANG=C"}, "apt-cache", "policy", "curl").
		Return(policyNotInstalledOutput, nil)

	pkg, err := sys.GetInstalled(context.Background(), "curl")
	require.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestGetInstalled_ProbeFailureMeansNotInstalled(t *testing.T) {
	sys, runner := testSystem(t)
	runner.EXPECT().
		RunEnv(gomock.Any(), []string{"LANG=C"}, "apt-cache", "policy", "no-such-package").
		Return("", pkgerrors.ErrCommandFailed)

	pkg, err := sys.GetInstalled(context.Background(), "no-such-package")
	require.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestInstallCommand(t *testing.T) {
	sys, _ := testSystem(t)
	cmdline := sys.InstallCommand([]model.Package{
		{Name: "curl", Version: "7.50.0", Arch: "amd64", LocalPath: "/var/cache/apt/archives/curl_7.50.0_amd64.deb"},
		{Name: "libcurl4", Version: "7.50.0", Arch: "amd64", LocalPath: "/var/cache/apt/archives/libcurl4_7.50.0_amd64.deb"},
	})
	assert.Equal(t,
		"apt-get install -V --no-install-recommends "+
			"/var/cache/apt/archives/curl_7.50.0_amd64.deb "+
			"/var/cache/apt/archives/libcurl4_7.50.0_amd64.deb",
		cmdline)
}

func TestInstall_NotImplemented(t *testing.T) {
	sys, _ := testSystem(t)
	err := sys.Install(context.Background(), "apt-get install -V x.deb")
	assert.ErrorIs(t, err, pkgerrors.ErrInstallNotImplemented)
}
