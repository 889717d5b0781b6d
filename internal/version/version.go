package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/shohamc1/mxbmm/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/shohamc1/mxbmm/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/shohamc1/mxbmm/internal/version.Date={{.Date}}
)

// String is the one-line version report.
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
