package install

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shohamc1/mxbmm/pkg/filesystem"
)

// copyTree copies the contents of src into dst, which must already exist.
// Directories and regular files are copied; symlinks and other special files
// are skipped. It returns the number of files written.
func copyTree(fsys filesystem.FS, src, dst string) (int, error) {
	entries, err := fsys.ReadDir(src)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		info, err := fsys.Lstat(from)
		if err != nil {
			return copied, err
		}

		switch {
		case info.IsDir():
			if err := fsys.MkdirAll(to, 0755); err != nil {
				return copied, err
			}
			n, err := copyTree(fsys, from, to)
			copied += n
			if err != nil {
				return copied, err
			}
		case info.Mode().IsRegular():
			if err := copyFile(fsys, from, to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()); err != nil {
				return copied, err
			}
			copied++
		}
	}
	return copied, nil
}

// copyFile streams src into a new file at dst opened with flag.
func copyFile(fsys filesystem.FS, src, dst string, flag int, perm fs.FileMode) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, flag, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
