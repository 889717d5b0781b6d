package install

import (
	"fmt"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/modfile"
)

// Outcome describes a successful commit.
type Outcome struct {
	Destination string
	Category    category.Category
	Kind        modfile.Kind
	FilesCopied int

	// MetadataWarning is set when the files landed but the sidecar could
	// not be written. The install still counts as successful.
	MetadataWarning error
}

// Message is the user-facing status line for the outcome.
func (o *Outcome) Message() string {
	switch {
	case o.Kind != modfile.Archive:
		return fmt.Sprintf("Installed mod file to %s", o.Destination)
	case o.MetadataWarning != nil:
		return fmt.Sprintf("Installed, but failed to write metadata file in %s: %v", o.Destination, o.MetadataWarning)
	default:
		return fmt.Sprintf("Installed mod to %s", o.Destination)
	}
}
