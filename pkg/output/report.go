package output

import (
	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/inventory"
)

// Report is the renderable view of an inventory.
type Report struct {
	Root       string           `json:"root" yaml:"root"`
	Total      int              `json:"total" yaml:"total"`
	Categories []CategoryReport `json:"categories" yaml:"categories"`
}

// CategoryReport is one category's mods.
type CategoryReport struct {
	Slug         string               `json:"slug" yaml:"slug"`
	Label        string               `json:"label" yaml:"label"`
	RelativePath string               `json:"relative_path" yaml:"relative_path"`
	Mods         []inventory.ModEntry `json:"mods" yaml:"mods"`
}

// CategoryInfo describes a category for the categories listing.
type CategoryInfo struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Label        string   `json:"label" yaml:"label"`
	RelativePath string   `json:"relative_path" yaml:"relative_path"`
	Excluded     []string `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// NewReport builds a report for the given categories, or all of them when
// none are given.
func NewReport(inv *inventory.Inventory, cats ...category.Category) *Report {
	if len(cats) == 0 {
		cats = category.All()
	}
	r := &Report{Categories: make([]CategoryReport, 0, len(cats))}
	if inv != nil {
		r.Root = inv.Root
	}
	for _, c := range cats {
		mods := inv.Entries(c)
		if mods == nil {
			mods = []inventory.ModEntry{}
		}
		r.Categories = append(r.Categories, CategoryReport{
			Slug:         c.Slug(),
			Label:        c.Label(),
			RelativePath: c.RelativePath(),
			Mods:         mods,
		})
		r.Total += len(mods)
	}
	return r
}

// Categories describes every category in table order.
func Categories() []CategoryInfo {
	all := category.All()
	out := make([]CategoryInfo, 0, len(all))
	for _, c := range all {
		out = append(out, CategoryInfo{
			Slug:         c.Slug(),
			Label:        c.Label(),
			RelativePath: c.RelativePath(),
			Excluded:     c.ExcludedChildren(),
		})
	}
	return out
}
