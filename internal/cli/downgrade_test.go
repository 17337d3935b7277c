package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aptforge/aptdown/pkg/apt"
	"github.com/aptforge/aptdown/pkg/apt/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	runErr := fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestRunDowngrade_LocalArtifactAndSatisfiedDependency(t *testing.T) {
	// Mirror whose search page carries no pool links, so candidates come
	// from the local archive only.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>no results</body></html>`)
	}))
	defer server.Close()

	root := t.TempDir()
	archiveDir := filepath.Join(root, "archives")
	require.NoError(t, os.MkdirAll(archiveDir, 0o755))
	debPath := filepath.Join(archiveDir, "curl_7.50.0_amd64.deb")
	require.NoError(t, os.WriteFile(debPath, []byte("deb"), 0o644))

	cfgPath := filepath.Join(root, "config.yaml")
	cfgYAML := fmt.Sprintf(
		"mirror:\n  base_url: %s\n  search_url: %s/search\nsettings:\n  log_level: error\n",
		server.URL, server.URL)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "apt-config", "shell",
			"CACHE_ROOT_DIR", "Dir::Cache",
			"CACHE_ARCHIVE_SUBDIR", "Dir::Cache::archives",
			"ARCH", "APT::Architecture").
		Return(fmt.Sprintf("CACHE_ROOT_DIR='%s'\nCACHE_ARCHIVE_SUBDIR='archives'\nARCH='amd64'\n", root), nil)
	runner.EXPECT().
		RunEnv(gomock.Any(), []string{"LANG=C"}, "apt-cache", "policy", "curl").
		Return("curl:\n  Installed: 7.60.0-1\n", nil)
	runner.EXPECT().
		Run(gomock.Any(), "apt-cache", "show", debPath).
		Return("Package: curl\nVersion: 7.50.0\nDepends: libcurl4 (>= 7.40.0)\n", nil)
	runner.EXPECT().
		RunEnv(gomock.Any(), []string{"LANG=C"}, "apt-cache", "policy", "libcurl4").
		Return("libcurl4:\n  Installed: 7.50.0-1\n", nil)

	origRunner := newRunner
	newRunner = func() apt.CommandRunner { return runner }
	t.Cleanup(func() { newRunner = origRunner })

	opts := downgradeOptions{configPath: cfgPath, dryRun: true, noColor: true, noProgress: true}
	out, err := captureStdout(t, func() error {
		return runDowngrade(context.Background(), "curl", "7.50.0", opts)
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Downgrading 1 package(s):")
	assert.Contains(t, out, "curl=7.50.0")
	assert.Contains(t, out, "apt-get install -V --no-install-recommends "+debPath,
		"the emitted command references the local artifact")
}
