// Package category defines the fixed set of mod categories and maps each one
// to its directory under the mods root.
package category

import (
	"path/filepath"
	"strings"
)

// Category identifies one of the fixed mod classes.
type Category int

const (
	Tracks Category = iota
	BikesMotocross
	BikesSupercross
	BikePaints
	Tyres
	RiderModels
	RiderPaints
	RiderGloves
	HelmetModels
	HelmetPaints
	BootModels
	BootPaints
	Protections

	count
)

type descriptor struct {
	slug     string
	label    string
	relPath  string
	excluded []string
}

// descriptors is indexed by Category. Relative paths use forward slashes.
var descriptors = [count]descriptor{
	Tracks:          {"tracks", "Tracks", "tracks", nil},
	BikesMotocross:  {"bikes-motocross", "Bikes Motocross", "bikes/motocross", nil},
	BikesSupercross: {"bikes-supercross", "Bikes Supercross", "bikes/supercross", nil},
	BikePaints:      {"bike-paints", "Bike Paints", "bikes/paints", nil},
	Tyres:           {"tyres", "Tyres/Wheels", "tyres", nil},
	RiderModels:     {"rider-models", "Rider Models", "rider/riders", []string{"paints", "gloves"}},
	RiderPaints:     {"rider-paints", "Rider Paints", "rider/riders/paints", nil},
	RiderGloves:     {"rider-gloves", "Rider Gloves", "rider/riders/gloves", nil},
	HelmetModels:    {"helmet-models", "Helmet Models", "rider/helmets", []string{"paints"}},
	HelmetPaints:    {"helmet-paints", "Helmet Paints", "rider/helmets/paints", nil},
	BootModels:      {"boot-models", "Boot Models", "rider/boots", []string{"paints"}},
	BootPaints:      {"boot-paints", "Boot Paints", "rider/boots/paints", nil},
	Protections:     {"protections", "Protections", "rider/protections", nil},
}

// All returns every category in display order.
func All() []Category {
	all := make([]Category, 0, count)
	for c := Category(0); c < count; c++ {
		all = append(all, c)
	}
	return all
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= 0 && c < count
}

func (c Category) desc() descriptor {
	if !c.Valid() {
		return descriptor{slug: "unknown", label: "Unknown"}
	}
	return descriptors[c]
}

// Label is the human readable name.
func (c Category) Label() string { return c.desc().label }

// Slug is the CLI identifier.
func (c Category) Slug() string { return c.desc().slug }

// RelativePath is the category's location under the mods root, always with
// forward slashes. It is what the metadata sidecar records.
func (c Category) RelativePath() string { return c.desc().relPath }

// String implements fmt.Stringer.
func (c Category) String() string { return c.Label() }

// ExcludedChildren lists subdirectory names that belong to other categories
// and must not be listed as installed mods of c.
func (c Category) ExcludedChildren() []string {
	excluded := c.desc().excluded
	out := make([]string, len(excluded))
	copy(out, excluded)
	return out
}

// IsExcluded reports whether name matches one of c's excluded children,
// ignoring ASCII case.
func (c Category) IsExcluded(name string) bool {
	for _, ex := range c.desc().excluded {
		if strings.EqualFold(ex, name) {
			return true
		}
	}
	return false
}

// Dir joins root with the category's relative path. It performs no I/O.
func Dir(root string, c Category) string {
	return filepath.Join(root, filepath.FromSlash(c.RelativePath()))
}

// Parse resolves a slug, label or relative path (case-insensitive) to a
// category.
func Parse(s string) (Category, bool) {
	needle := strings.TrimSpace(s)
	if needle == "" {
		return 0, false
	}
	needle = strings.ReplaceAll(needle, `\`, "/")
	for c := Category(0); c < count; c++ {
		d := descriptors[c]
		if strings.EqualFold(needle, d.slug) ||
			strings.EqualFold(needle, d.label) ||
			strings.EqualFold(strings.Trim(needle, "/"), d.relPath) {
			return c, true
		}
	}
	return 0, false
}

// Slugs returns all CLI identifiers, in display order.
func Slugs() []string {
	slugs := make([]string, 0, count)
	for c := Category(0); c < count; c++ {
		slugs = append(slugs, descriptors[c].slug)
	}
	return slugs
}
