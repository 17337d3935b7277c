package apt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aptforge/aptdown/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLocal(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"curl_7.50.0-1_amd64.deb",
		"curl_7.60.0-1_amd64.deb",
		"curl-doc_7.50.0-1_all.deb",
		"tzdata_2019a-1_all.deb",
		"libcurl4_7.50.0-1_i386.deb", // wrong arch, ignored
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("deb"), 0o644))
	}

	sys := NewSystem(nil, &Environment{Arch: "amd64", CacheDir: dir})

	packages, err := sys.ListLocal("curl")
	require.NoError(t, err)
	require.Len(t, packages, 2)
	for _, p := range packages {
		assert.Equal(t, "curl", p.Name)
		assert.Equal(t, "amd64", p.Arch)
		assert.NotEmpty(t, p.LocalPath)
	}

	packages, err = sys.ListLocal("tzdata")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, model.PackageVersion("2019a-1"), packages[0].Version)
	assert.Equal(t, model.ArchAll, packages[0].Arch)

	packages, err = sys.ListLocal("libcurl4")
	require.NoError(t, err)
	assert.Empty(t, packages, "foreign-arch artifacts are not candidates")
}

func TestVersionFromFilename(t *testing.T) {
	tests := []struct {
		base string
		want model.PackageVersion
		ok   bool
	}{
		{base: "curl_7.50.0-1_amd64.deb", want: "7.50.0-1", ok: true},
		{base: "libgcc-s1_12.2.0-14_amd64.deb", want: "12.2.0-14", ok: true},
		{base: "dbus_1.12.20-2%3a1_amd64.deb", want: "1.12.20-2:1", ok: true},
		{base: "garbage.deb", ok: false},
		{base: "name__amd64.deb", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, ok := versionFromFilename(tt.base)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
