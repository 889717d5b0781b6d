package staging

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
)

const (
	// ExtractsDirName groups all extraction directories under the temp root.
	ExtractsDirName = "mxbmm_extracts"

	maxTempAttempts = 1000
)

// createExtractDir makes a fresh directory named
// extract-<pid>-<nanos>-<attempt>. Mkdir fails on an existing name, so a
// returned directory is never shared with another staging run.
func createExtractDir(fsys filesystem.FS, tempRoot string, pid int, nanos int64) (string, error) {
	base := filepath.Join(tempRoot, ExtractsDirName)
	if err := fsys.MkdirAll(base, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to create %s", base)
	}

	for attempt := 0; attempt < maxTempAttempts; attempt++ {
		dir := filepath.Join(base, fmt.Sprintf("extract-%d-%d-%d", pid, nanos, attempt))
		err := fsys.Mkdir(dir, 0755)
		if err == nil {
			return dir, nil
		}
		if stderrors.Is(err, fs.ErrExist) {
			continue
		}
		return "", errors.Wrapf(err, errors.ErrIO, "failed to create extraction directory %s", dir)
	}

	return "", errors.Newf(errors.ErrTempExhausted,
		"failed to create a unique extraction directory after %d attempts", maxTempAttempts).
		WithDetail("base", base)
}
