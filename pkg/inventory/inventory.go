// Package inventory lists installed mods per category and removes them.
package inventory

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/modfile"
)

// ModEntry is one installed mod as seen on disk.
type ModEntry struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
}

// Scan lists the mods directly under dir. Subdirectories count unless their
// name is in excluded (case-insensitive); files count when they carry a
// package or paint extension. A missing or unreadable dir yields nothing.
// Entries are sorted by lowercased name.
func Scan(fsys filesystem.FS, dir string, excluded []string) []ModEntry {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger := logging.GetLogger("inventory")
			logger.Debug().Err(err).Str("dir", dir).Msg("Cannot read category directory")
		}
		return []ModEntry{}
	}

	mods := make([]ModEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if isExcluded(name, excluded) {
				continue
			}
			mods = append(mods, ModEntry{Name: name, Path: filepath.Join(dir, name), IsDir: true})
			continue
		}
		if modfile.IsSingleFile(name) {
			mods = append(mods, ModEntry{Name: name, Path: filepath.Join(dir, name)})
		}
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return strings.ToLower(mods[i].Name) < strings.ToLower(mods[j].Name)
	})
	return mods
}

func isExcluded(name string, excluded []string) bool {
	for _, ex := range excluded {
		if strings.EqualFold(name, ex) {
			return true
		}
	}
	return false
}

// Find returns the entry called name, matched case-insensitively. An exact
// match wins over a case-folded one.
func Find(entries []ModEntry, name string) (ModEntry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return ModEntry{}, false
}

// Remove uninstalls entry: directories recursively, files directly.
func Remove(fsys filesystem.FS, entry ModEntry) error {
	logger := logging.GetLogger("inventory")

	var err error
	if entry.IsDir {
		err = fsys.RemoveAll(entry.Path)
	} else {
		err = fsys.Remove(entry.Path)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to remove %s", entry.Path)
	}

	logger.Info().Str("path", entry.Path).Bool("dir", entry.IsDir).Msg("Mod removed")
	return nil
}

// Inventory is a snapshot of every category's mods.
type Inventory struct {
	Root    string
	entries map[category.Category][]ModEntry
}

// ScanAll scans every category directory under root.
func ScanAll(fsys filesystem.FS, root string) *Inventory {
	inv := &Inventory{
		Root:    root,
		entries: make(map[category.Category][]ModEntry, len(category.All())),
	}
	for _, c := range category.All() {
		inv.entries[c] = Scan(fsys, category.Dir(root, c), c.ExcludedChildren())
	}
	return inv
}

// Entries returns the mods of c.
func (inv *Inventory) Entries(c category.Category) []ModEntry {
	if inv == nil {
		return nil
	}
	return inv.entries[c]
}

// Total counts mods across all categories.
func (inv *Inventory) Total() int {
	if inv == nil {
		return 0
	}
	total := 0
	for _, mods := range inv.entries {
		total += len(mods)
	}
	return total
}
