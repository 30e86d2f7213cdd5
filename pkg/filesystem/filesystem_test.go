// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero in-memory filesystem
// PURPOSE: Test the afero FS adapter and the mode-preserving copy helper

package filesystem_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/liblift/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFSRoundTrip(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/bundle/Contents/MacOS", 0755))
	require.NoError(t, fsys.WriteFile("/bundle/Contents/MacOS/app", []byte("binary"), 0755))

	data, err := fsys.ReadFile("/bundle/Contents/MacOS/app")
	require.NoError(t, err)
	assert.Equal(t, "binary", string(data))

	entries, err := fsys.ReadDir("/bundle/Contents/MacOS")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "app", entries[0].Name())
}

func TestAferoFSReadFileOnDir(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/some/dir", 0755))

	_, err := fsys.ReadFile("/some/dir")
	assert.Error(t, err, "reading a directory should fail")
}

func TestAferoFSChmod(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.WriteFile("/lib.dylib", []byte("x"), 0444))

	require.NoError(t, fsys.Chmod("/lib.dylib", 0644))

	info, err := fsys.Stat("/lib.dylib")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestCopyFilePreservesMode(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.MkdirAll("/dst", 0755))
	require.NoError(t, fsys.WriteFile("/src/libz.dylib", []byte("zlib"), 0555))

	require.NoError(t, filesystem.CopyFile(fsys, "/src/libz.dylib", "/dst/libz.dylib"))

	data, err := fsys.ReadFile("/dst/libz.dylib")
	require.NoError(t, err)
	assert.Equal(t, "zlib", string(data))

	info, err := fsys.Stat("/dst/libz.dylib")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0555), info.Mode().Perm())
}

func TestCopyFileMissingSource(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	err := filesystem.CopyFile(fsys, "/missing.dylib", "/dst.dylib")
	assert.Error(t, err)
}
