package filesystem

import (
	"io"
	"io/fs"
)

// File is the subset of *os.File the pipeline needs. afero.File satisfies it
// too, and io.ReaderAt lets archive/zip read straight from it.
type File interface {
	io.Reader
	io.ReaderAt
	io.Writer
	io.Closer
	Stat() (fs.FileInfo, error)
}

// FS is the filesystem abstraction used by the install pipeline
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	Mkdir(name string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat falls back to Stat on filesystems without symlinks
	Lstat(name string) (fs.FileInfo, error)
}

// Exists reports whether name can be stat'ed. Any error, not only
// fs.ErrNotExist, counts as absent.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
