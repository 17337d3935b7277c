package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.deb")
	dst := filepath.Join(dir, "sub", "dst.deb")
	require.NoError(t, os.WriteFile(src, []byte("artifact"), FileModeDefault))

	require.NoError(t, Move(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "artifact", string(content))
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be gone after move")
}

func TestMove_EmptyPaths(t *testing.T) {
	assert.Error(t, Move("", "/tmp/x"))
	assert.Error(t, Move("/tmp/x", ""))
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	dst := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(src, []byte("data"), FileModeDefault))

	require.NoError(t, Copy(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
	_, err = os.Stat(src)
	assert.NoError(t, err, "copy keeps the source")
}

func TestCopy_MissingSource(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, Copy(filepath.Join(dir, "missing"), filepath.Join(dir, "out")))
}

func TestGetCacheDir(t *testing.T) {
	dir, err := GetCacheDir()
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(dir))
}
