// Package modfile classifies mod inputs by file extension.
package modfile

import (
	"path/filepath"
	"strings"
)

// Recognized extensions, compared case-insensitively.
const (
	ArchiveExtension = ".zip"
	PackageExtension = ".pkz"
	PaintExtension   = ".pnt"
)

// Kind is the staging classification of an input file.
type Kind int

const (
	Unsupported Kind = iota
	Package
	Paint
	Archive
)

func (k Kind) String() string {
	switch k {
	case Package:
		return "package"
	case Paint:
		return "paint"
	case Archive:
		return "archive"
	default:
		return "unsupported"
	}
}

// Extension returns the file extension a single-file kind must carry once
// installed. Archives and unsupported kinds have none.
func (k Kind) Extension() string {
	switch k {
	case Package:
		return PackageExtension
	case Paint:
		return PaintExtension
	default:
		return ""
	}
}

// Classify checks, in order, the package, paint and archive extensions.
func Classify(path string) Kind {
	ext := filepath.Ext(path)
	switch {
	case strings.EqualFold(ext, PackageExtension):
		return Package
	case strings.EqualFold(ext, PaintExtension):
		return Paint
	case strings.EqualFold(ext, ArchiveExtension):
		return Archive
	default:
		return Unsupported
	}
}

// IsSingleFile reports whether path is an installable package or paint file.
// The inventory uses it to decide which loose files count as mods.
func IsSingleFile(path string) bool {
	k := Classify(path)
	return k == Package || k == Paint
}

// Stem returns the file name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WithExtension appends ext to name unless name already ends with it,
// ignoring case.
func WithExtension(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}
