package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/modfile"
	"github.com/shohamc1/mxbmm/pkg/staging"
)

// Engine performs commits against a filesystem.
type Engine struct {
	fsys   filesystem.FS
	logger zerolog.Logger
}

// NewEngine creates an Engine.
func NewEngine(fsys filesystem.FS) *Engine {
	return &Engine{
		fsys:   fsys,
		logger: logging.GetLogger("install"),
	}
}

// Commit installs pending under root. On error nothing has been installed and
// pending is untouched; on success pending has been released.
func (e *Engine) Commit(root string, pending *staging.PendingInstall) (*Outcome, error) {
	done := logging.LogOperationStart(e.logger, "commit")
	defer done()

	name := pending.InstallName()
	if name == "" {
		return nil, errors.New(errors.ErrEmptyName, "install name cannot be empty")
	}
	if err := checkName(pending, name); err != nil {
		return nil, err
	}

	base := category.Dir(root, pending.Category)
	if err := e.fsys.MkdirAll(base, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create destination directory %s", base)
	}

	var (
		outcome *Outcome
		err     error
	)
	switch src := pending.Source.(type) {
	case *staging.ArchiveSource:
		outcome, err = e.commitArchive(base, name, pending, src)
	case *staging.PackageSource:
		outcome, err = e.commitFile(base, name, src.Path, modfile.Package)
	case *staging.PaintSource:
		outcome, err = e.commitFile(base, name, src.Path, modfile.Paint)
	default:
		err = errors.Newf(errors.ErrInternal, "unknown source type %T", pending.Source)
	}
	if err != nil {
		return nil, err
	}
	outcome.Category = pending.Category

	if rerr := pending.Release(); rerr != nil {
		e.logger.Warn().Err(rerr).Msg("Failed to clean up staging files")
	}

	e.logger.Info().
		Str("destination", outcome.Destination).
		Str("category", pending.Category.Slug()).
		Int("files", outcome.FilesCopied).
		Bool("metadata_warning", outcome.MetadataWarning != nil).
		Msg("Mod installed")
	return outcome, nil
}

func (e *Engine) commitArchive(base, name string, pending *staging.PendingInstall, src *staging.ArchiveSource) (*Outcome, error) {
	dest := filepath.Join(base, name)
	if e.exists(dest) {
		return nil, errors.Newf(errors.ErrAlreadyExists,
			"destination already exists: %s. Choose another install name.", dest).
			WithDetail("destination", dest)
	}

	if err := e.fsys.MkdirAll(dest, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create install folder %s", dest)
	}

	root := staging.SourceRoot(e.fsys, src.ExtractDir)
	e.logger.Debug().Str("from", root).Str("to", dest).Msg("Copying staged files")

	n, err := copyTree(e.fsys, root, dest)
	if err != nil {
		if rmErr := e.fsys.RemoveAll(dest); rmErr != nil {
			e.logger.Error().Err(rmErr).Str("destination", dest).Msg("Failed to roll back partial install")
		}
		return nil, errors.Wrap(err, errors.ErrCopyFailed, "install failed while copying files").
			WithDetail("destination", dest)
	}

	outcome := &Outcome{
		Destination: dest,
		Kind:        modfile.Archive,
		FilesCopied: n,
	}

	meta := Metadata{
		InstallTarget: pending.Category.RelativePath(),
		Version:       pending.Version,
		Archive:       src.ArchivePath,
		Notes:         pending.Notes,
	}
	if err := WriteMetadata(e.fsys, dest, meta); err != nil {
		e.logger.Warn().Err(err).Str("destination", dest).Msg("Failed to write metadata file")
		outcome.MetadataWarning = err
	}
	return outcome, nil
}

func (e *Engine) commitFile(base, name, srcPath string, kind modfile.Kind) (*Outcome, error) {
	dest := filepath.Join(base, modfile.WithExtension(name, kind.Extension()))
	if e.exists(dest) {
		return nil, errors.Newf(errors.ErrAlreadyExists, "destination already exists: %s", dest).
			WithDetail("destination", dest)
	}

	if err := copyFile(e.fsys, srcPath, dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644); err != nil {
		// O_EXCL failing means the file appeared after the check and is not ours
		if !os.IsExist(err) {
			_ = e.fsys.Remove(dest)
		}
		return nil, errors.Wrap(err, errors.ErrCopyFailed,
			fmt.Sprintf("failed to install %s file to %s", kind.Extension(), dest)).
			WithDetail("destination", dest)
	}

	return &Outcome{
		Destination: dest,
		Kind:        kind,
		FilesCopied: 1,
	}, nil
}

// checkName rejects names that would land outside the category folder, or
// that would take over the folder of a category nested inside this one.
func checkName(pending *staging.PendingInstall, name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.VolumeName(name) != "" {
		return errors.Newf(errors.ErrInvalidInput,
			"install name %q must be a plain name without path separators", name).
			WithDetail("name", name)
	}
	if _, isArchive := pending.Source.(*staging.ArchiveSource); isArchive && pending.Category.IsExcluded(name) {
		return errors.Newf(errors.ErrInvalidInput,
			"install name %q is reserved for a nested category folder of %s", name, pending.Category.Label()).
			WithDetail("name", name)
	}
	return nil
}

func (e *Engine) exists(path string) bool {
	_, err := e.fsys.Lstat(path)
	return err == nil
}
