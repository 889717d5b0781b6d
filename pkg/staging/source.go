package staging

import (
	"github.com/shohamc1/mxbmm/pkg/modfile"
)

// Source is where a pending install's content comes from. The set of
// implementations is closed: *ArchiveSource, *PackageSource and *PaintSource.
type Source interface {
	// InputPath is the file the user dropped.
	InputPath() string
	// Kind classifies the source.
	Kind() modfile.Kind

	sealed()
}

// ArchiveSource is an extracted zip. ExtractDir is owned by the pending
// install and deleted on Release.
type ArchiveSource struct {
	ArchivePath string
	ExtractDir  string
}

// PackageSource is a single track package file, installed as-is.
type PackageSource struct {
	Path string
}

// PaintSource is a single paint file, installed as-is.
type PaintSource struct {
	Path string
}

func (s *ArchiveSource) InputPath() string  { return s.ArchivePath }
func (s *ArchiveSource) Kind() modfile.Kind { return modfile.Archive }
func (s *ArchiveSource) sealed()            {}

func (s *PackageSource) InputPath() string  { return s.Path }
func (s *PackageSource) Kind() modfile.Kind { return modfile.Package }
func (s *PackageSource) sealed()            {}

func (s *PaintSource) InputPath() string  { return s.Path }
func (s *PaintSource) Kind() modfile.Kind { return modfile.Paint }
func (s *PaintSource) sealed()            {}
