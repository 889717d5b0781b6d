package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shohamc1/mxbmm/pkg/filesystem"
)

// MetadataFileName is the sidecar written into every archive install.
const MetadataFileName = "_mxbmm_meta.txt"

// Metadata is the provenance record kept beside an archive install. It is
// written once and never read back by mxbmm.
type Metadata struct {
	InstallTarget string
	Version       string
	Archive       string
	Notes         string
}

// Render produces the key=value lines of the sidecar. The version is trimmed
// and newlines in notes are escaped as the two characters \n.
func (m Metadata) Render() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "install_target=%s\n", m.InstallTarget)
	fmt.Fprintf(&b, "version=%s\n", strings.TrimSpace(m.Version))
	fmt.Fprintf(&b, "archive=%s\n", m.Archive)
	fmt.Fprintf(&b, "notes=%s\n", strings.ReplaceAll(m.Notes, "\n", `\n`))
	return []byte(b.String())
}

// WriteMetadata writes m into dir, replacing any file of the same name.
func WriteMetadata(fsys filesystem.FS, dir string, m Metadata) error {
	return fsys.WriteFile(filepath.Join(dir, MetadataFileName), m.Render(), 0644)
}
