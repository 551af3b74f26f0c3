package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFolder_DirectoriesAndSymlinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")))

	folders, err := New(nil, quietLogger()).ListFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"link", "sub"}, folders)
}

func TestListFolder_SortedByteOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"b", "a", "B", "_x", "10", "2"} {
		require.NoError(t, fs.MkdirAll(filepath.Join("/data", name), 0o755))
	}
	require.NoError(t, afero.WriteFile(fs, "/data/file.txt", []byte("x"), 0o644))

	folders, err := New(fs, quietLogger()).ListFolder("/data")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "2", "B", "_x", "a", "b"}, folders)
}

func TestListFolder_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	folders, err := New(fs, quietLogger()).ListFolder("/empty")
	require.NoError(t, err)
	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}

func TestListFolder_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file.txt", []byte("x"), 0o644))
	svc := New(fs, quietLogger())

	_, err := svc.ListFolder("/nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathNotFound))
	assert.Equal(t, "路径不存在: /nope", err.Error())

	_, err = svc.ListFolder("/file.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotADirectory))
	assert.Equal(t, "不是目录: /file.txt", err.Error())
}

func TestListFolders_OS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "one"), 0o755))

	folders, err := ListFolders(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, folders)
}
