package staging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/shohamc1/mxbmm/pkg/archive"
	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/modfile"
)

// Default categories for single-file inputs.
const (
	DefaultPackageCategory = category.Tracks
	DefaultPaintCategory   = category.RiderPaints
)

// Stager classifies inputs and prepares pending installs.
type Stager struct {
	fsys     filesystem.FS
	tempRoot string
	fallback category.Category
	now      func() time.Time
	pid      int
	logger   zerolog.Logger
}

// NewStager creates a Stager. tempRoot is where extraction directories go
// (os.TempDir() when empty); fallback is the default category for archives.
func NewStager(fsys filesystem.FS, tempRoot string, fallback category.Category) *Stager {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	if !fallback.Valid() {
		fallback = category.Tracks
	}
	return &Stager{
		fsys:     fsys,
		tempRoot: tempRoot,
		fallback: fallback,
		now:      time.Now,
		pid:      os.Getpid(),
		logger:   logging.GetLogger("staging"),
	}
}

// Stage classifies inputPath and returns a draft install. Unsupported
// extensions fail with ErrUnsupported before touching the filesystem.
func (s *Stager) Stage(inputPath string) (*PendingInstall, error) {
	done := logging.LogOperationStart(s.logger, "stage")
	defer done()

	kind := modfile.Classify(inputPath)
	s.logger.Debug().Str("input", inputPath).Str("kind", kind.String()).Msg("Classified input")

	switch kind {
	case modfile.Package:
		if err := s.checkInput(inputPath); err != nil {
			return nil, err
		}
		return NewPendingInstall(s.fsys, &PackageSource{Path: inputPath},
			DefaultPackageCategory, modfile.Stem(inputPath)), nil
	case modfile.Paint:
		if err := s.checkInput(inputPath); err != nil {
			return nil, err
		}
		return NewPendingInstall(s.fsys, &PaintSource{Path: inputPath},
			DefaultPaintCategory, modfile.Stem(inputPath)), nil
	case modfile.Archive:
		return s.stageArchive(inputPath)
	default:
		return nil, errors.Newf(errors.ErrUnsupported,
			"unsupported file type %q: supported are %s, %s and %s",
			filepath.Ext(inputPath), modfile.ArchiveExtension, modfile.PackageExtension, modfile.PaintExtension).
			WithDetail("path", inputPath)
	}
}

func (s *Stager) stageArchive(archivePath string) (*PendingInstall, error) {
	if err := s.checkInput(archivePath); err != nil {
		return nil, err
	}

	dir, err := createExtractDir(s.fsys, s.tempRoot, s.pid, s.now().UnixNano())
	if err != nil {
		return nil, err
	}

	if err := archive.Extract(s.fsys, archivePath, dir); err != nil {
		if rmErr := s.fsys.RemoveAll(dir); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("dir", dir).Msg("Failed to remove extraction directory")
		}
		return nil, err
	}

	name := GuessName(s.fsys, dir, archivePath)
	s.logger.Info().
		Str("archive", archivePath).
		Str("dir", dir).
		Str("name", name).
		Msg("Archive staged")

	return NewPendingInstall(s.fsys, &ArchiveSource{ArchivePath: archivePath, ExtractDir: dir},
		s.fallback, name), nil
}

// checkInput makes sure path is an existing regular file.
func (s *Stager) checkInput(path string) error {
	info, err := s.fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrNotFound, "file does not exist: %s", path)
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to access %s", path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is a directory, not a file", path)
	}
	return nil
}

// SingleTopLevelDir returns the only entry of dir when there is exactly one
// and it is a directory.
func SingleTopLevelDir(fsys filesystem.FS, dir string) (string, bool) {
	entries, err := fsys.ReadDir(dir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return "", false
	}
	return entries[0].Name(), true
}

// GuessName proposes an install name for an extracted archive: the single
// top-level directory's name if there is one, the archive's stem otherwise.
func GuessName(fsys filesystem.FS, extractDir, archivePath string) string {
	if name, ok := SingleTopLevelDir(fsys, extractDir); ok {
		return name
	}
	if stem := modfile.Stem(archivePath); stem != "" {
		return stem
	}
	return "mod"
}

// SourceRoot is the directory whose contents get installed: the single
// top-level directory when there is one, flattening that level, otherwise
// the extraction directory itself.
func SourceRoot(fsys filesystem.FS, extractDir string) string {
	if name, ok := SingleTopLevelDir(fsys, extractDir); ok {
		return filepath.Join(extractDir, name)
	}
	return extractDir
}
