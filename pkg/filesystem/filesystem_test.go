package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	f, err := fsys.Open(testFile)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	// Mkdir refuses an existing directory
	err = fsys.Mkdir(subDir, 0755)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrExist))

	// Exclusive create refuses an existing file
	_, err = fsys.OpenFile(testFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	require.Error(t, err)

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub", entries[0].Name())
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "test.txt", entries[1].Name())

	require.NoError(t, fsys.Remove(testFile))
	assert.False(t, Exists(fsys, testFile))

	require.NoError(t, fsys.RemoveAll(filepath.Join(root, "sub")))
	assert.False(t, Exists(fsys, subDir))
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)
	exerciseFS(t, fsys, t.TempDir())
}

func TestNewMemory(t *testing.T) {
	fsys := NewMemory()
	root := "/mem/root"
	require.NoError(t, fsys.MkdirAll(root, 0755))
	exerciseFS(t, fsys, root)
}

func TestLstatFallsBackToStat(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("/a.txt", []byte("a"), 0644))

	info, err := fsys.Lstat("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", info.Name())
}
