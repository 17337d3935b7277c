package apt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
	"github.com/aptforge/aptdown/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const showOutput = `Package: curl
Version: 7.50.0-1
Architecture: amd64
Depends: libc6 (>= 2.17), libcurl4 (>= 7.40.0), zlib1g
Description: command line tool for transferring data
`

func TestParseDepends(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []model.Dependency
		wantErr bool
	}{
		{
			name:  "single versioned clause",
			value: "libcurl4 (>= 7.40.0)",
			want: []model.Dependency{
				{Name: "libcurl4", Constraints: []model.VersionConstraint{{Relation: model.RelationGE, Version: "7.40.0"}}},
			},
		},
		{
			name:  "unversioned clause",
			value: "zlib1g",
			want: []model.Dependency{
				{Name: "zlib1g", Constraints: []model.VersionConstraint{{Relation: model.RelationAny}}},
			},
		},
		{
			name:  "multiple clauses",
			value: "libc6 (>= 2.17), zlib1g, libssl1.1 (<< 1.2)",
			want: []model.Dependency{
				{Name: "libc6", Constraints: []model.VersionConstraint{{Relation: model.RelationGE, Version: "2.17"}}},
				{Name: "zlib1g", Constraints: []model.VersionConstraint{{Relation: model.RelationAny}}},
				{Name: "libssl1.1", Constraints: []model.VersionConstraint{{Relation: model.RelationLT, Version: "1.2"}}},
			},
		},
		{
			name:  "only first alternative of an OR clause",
			value: "debconf (>= 0.5) | debconf-2.0",
			want: []model.Dependency{
				{Name: "debconf", Constraints: []model.VersionConstraint{{Relation: model.RelationGE, Version: "0.5"}}},
			},
		},
		{
			name:  "multiarch annotation stripped",
			value: "libc6:any (>= 2.17)",
			want: []model.Dependency{
				{Name: "libc6", Constraints: []model.VersionConstraint{{Relation: model.RelationGE, Version: "2.17"}}},
			},
		},
		{
			name:  "strict equality",
			value: "libcurl4 (= 7.50.0-1)",
			want: []model.Dependency{
				{Name: "libcurl4", Constraints: []model.VersionConstraint{{Relation: model.RelationEQ, Version: "7.50.0-1"}}},
			},
		},
		{name: "unknown relation", value: "libcurl4 (~> 7.40.0)", wantErr: true},
		{name: "unbalanced parens", value: "libcurl4 (>= 7.40.0", wantErr: true},
		{name: "missing version", value: "libcurl4 (>=)", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDepends(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, pkgerrors.ErrMetadataParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDependencies_ByNameVersion(t *testing.T) {
	sys, runner := testSystem(t)
	runner.EXPECT().
		Run(gomock.Any(), "apt-cache", "show", "curl=7.50.0-1").
		Return(showOutput, nil)

	deps, err := sys.GetDependencies(context.Background(), model.Package{Name: "curl", Version: "7.50.0-1"})
	require.NoError(t, err)
	require.Len(t, deps, 3)
	assert.Equal(t, "libc6", deps[0].Name)
	assert.Equal(t, "libcurl4", deps[1].Name)
	assert.Equal(t, "zlib1g", deps[2].Name)
}

func TestGetDependencies_PrefersLocalArtifact(t *testing.T) {
	sys, runner := testSystem(t)
	debPath := filepath.Join(sys.Environment().CacheDir, "curl_7.50.0-1_amd64.deb")
	require.NoError(t, os.WriteFile(debPath, []byte("deb"), 0o644))

	runner.EXPECT().
		Run(gomock.Any(), "apt-cache", "show", debPath).
		Return(showOutput, nil)

	_, err := sys.GetDependencies(context.Background(), model.Package{
		Name: "curl", Version: "7.50.0-1", Arch: "amd64", LocalPath: debPath,
	})
	require.NoError(t, err)
}

func TestGetDependencies_NoDependsLine(t *testing.T) {
	sys, runner := testSystem(t)
	runner.EXPECT().
		Run(gomock.Any(), "apt-cache", "show", "curl=7.50.0-1").
		Return("Package: curl\nVersion: 7.50.0-1\n", nil)

	_, err := sys.GetDependencies(context.Background(), model.Package{Name: "curl", Version: "7.50.0-1"})
	require.ErrorIs(t, err, pkgerrors.ErrMetadataParse)
}

func TestGetDependencies_CommandFailure(t *testing.T) {
	sys, runner := testSystem(t)
	runner.EXPECT().
		Run(gomock.Any(), "apt-cache", "show", "curl=0.0.1").
		Return("", pkgerrors.ErrCommandFailed)

	_, err := sys.GetDependencies(context.Background(), model.Package{Name: "curl", Version: "0.0.1"})
	require.ErrorIs(t, err, pkgerrors.ErrCommandFailed)
}
