// Package archive unpacks zip containers into a staging directory.
package archive

import (
	"archive/zip"
	stderrors "errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/logging"
)

// SanitizeEntryPath turns a stored entry name into a relative, slash-separated
// path that cannot escape the destination. ok is false for entries that must
// be skipped: absolute paths, drive letters, ".." components, or names that
// clean to nothing.
func SanitizeEntryPath(name string) (string, bool) {
	if strings.ContainsRune(name, 0) {
		return "", false
	}
	// Some archivers store Windows separators.
	name = strings.ReplaceAll(name, `\`, "/")
	if strings.HasPrefix(name, "/") {
		return "", false
	}
	if len(name) >= 2 && name[1] == ':' {
		return "", false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return "", false
		}
	}
	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// Extract unpacks the zip at archivePath into destDir. Unsafe entries are
// skipped. A container that cannot be parsed yields ErrCorrupt, any write
// failure ErrIO. destDir is left as-is on failure; cleaning it up is the
// caller's job.
func Extract(fsys filesystem.FS, archivePath, destDir string) error {
	logger := logging.GetLogger("archive")
	done := logging.LogOperationStart(logger, "extract")
	defer done()

	f, err := fsys.Open(archivePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to open archive %s", archivePath)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to stat archive %s", archivePath)
	}

	reader, err := zip.NewReader(f, info.Size())
	// ErrInsecurePath still returns a usable reader; entries are sanitized below.
	if err != nil && !(stderrors.Is(err, zip.ErrInsecurePath) && reader != nil) {
		return errors.Wrapf(err, errors.ErrCorrupt, "failed to read archive %s", archivePath).
			WithDetail("archive", archivePath)
	}

	extracted := 0
	for _, entry := range reader.File {
		rel, ok := SanitizeEntryPath(entry.Name)
		if !ok {
			logger.Debug().Str("entry", entry.Name).Msg("Skipping unsafe archive entry")
			continue
		}
		target := filepath.Join(destDir, filepath.FromSlash(rel))

		if strings.HasSuffix(entry.Name, "/") || entry.FileInfo().IsDir() {
			if err := fsys.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", target)
			}
			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", filepath.Dir(target))
		}
		if err := extractFile(fsys, entry, target); err != nil {
			return err
		}
		extracted++
	}

	logger.Info().
		Str("archive", archivePath).
		Str("dest", destDir).
		Int("files", extracted).
		Msg("Archive extracted")
	return nil
}

func extractFile(fsys filesystem.FS, entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCorrupt, "failed to open archive entry %s", entry.Name)
	}
	defer func() { _ = src.Close() }()

	dst, err := fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", target)
	}

	tracked := &readTracker{r: src}
	if _, err := io.Copy(dst, tracked); err != nil {
		_ = dst.Close()
		if tracked.err != nil {
			return errors.Wrapf(tracked.err, errors.ErrCorrupt, "archive entry %s is damaged", entry.Name)
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", target)
	}
	if err := dst.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to close %s", target)
	}
	return nil
}

// readTracker remembers read-side failures so a damaged entry can be told
// apart from a failed write.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
