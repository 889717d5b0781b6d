package staging

import (
	"strings"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/logging"
)

// PendingInstall is the draft the user edits before committing. Category,
// Name, Notes and Version may be changed freely while it is pending.
type PendingInstall struct {
	Source   Source
	Category category.Category
	Name     string
	Notes    string
	Version  string

	fsys     filesystem.FS
	released bool
}

// NewPendingInstall wraps src in a draft. Stage is the usual constructor;
// this one exists for callers that build sources themselves.
func NewPendingInstall(fsys filesystem.FS, src Source, c category.Category, name string) *PendingInstall {
	return &PendingInstall{
		Source:   src,
		Category: c,
		Name:     name,
		fsys:     fsys,
	}
}

// InstallName is the trimmed name used for the destination.
func (p *PendingInstall) InstallName() string {
	return strings.TrimSpace(p.Name)
}

// Released reports whether Release has already run.
func (p *PendingInstall) Released() bool {
	return p.released
}

// Release deletes the temporary extraction directory of an archive source.
// It is a no-op for single-file sources and safe to call more than once.
func (p *PendingInstall) Release() error {
	if p.released {
		return nil
	}
	p.released = true

	src, ok := p.Source.(*ArchiveSource)
	if !ok || src.ExtractDir == "" {
		return nil
	}

	logger := logging.GetLogger("staging")
	logger.Debug().
		Str("dir", src.ExtractDir).
		Msg("Removing extraction directory")
	if err := p.fsys.RemoveAll(src.ExtractDir); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove extraction directory %s", src.ExtractDir)
	}
	return nil
}
