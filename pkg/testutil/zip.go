// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shohamc1/mxbmm/pkg/filesystem"
)

// ZipEntry is one stored entry. Names ending in "/" are directories.
type ZipEntry struct {
	Name    string
	Content string
}

// ZipBytes builds an in-memory zip with the given entries in order.
func ZipBytes(t testing.TB, entries ...ZipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		if e.Content != "" {
			_, err = io.WriteString(w, e.Content)
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// WriteZip writes a zip fixture to path on fsys, creating parents.
func WriteZip(t testing.TB, fsys filesystem.FS, path string, entries ...ZipEntry) string {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, ZipBytes(t, entries...), 0644))
	return path
}

// WriteFile writes content to path on fsys, creating parents.
func WriteFile(t testing.TB, fsys filesystem.FS, path, content string) string {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadFile returns the content of path on fsys.
func ReadFile(t testing.TB, fsys filesystem.FS, path string) string {
	t.Helper()
	f, err := fsys.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

// AssertNotExists fails when path exists on fsys.
func AssertNotExists(t testing.TB, fsys filesystem.FS, path string) {
	t.Helper()
	_, err := fsys.Stat(path)
	require.Error(t, err, "%s should not exist", path)
	require.True(t, os.IsNotExist(err), "unexpected stat error for %s: %v", path, err)
}
