package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for mxbmm
	EnvConfigDir = "MXBMM_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for mxbmm
	EnvStateDir = "MXBMM_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "mxbmm"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "mxbmm.log"

	// FallbackModsDir is used when no documents folder is known
	FallbackModsDir = "mods"
)

// gameModsDir is the mods folder relative to the documents folder.
var gameModsDir = filepath.Join("PiBoSo", "MX Bikes", "mods")

// Paths provides centralized path management for mxbmm
type Paths interface {
	ModsRoot() string
	UsedFallback() bool
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFilePath() string
	TempRoot() string
}

type paths struct {
	modsRoot     string
	usedFallback bool
	configDir    string
	stateDir     string
}

// New resolves every path. modsRoot is the explicitly configured root and
// may be empty.
func New(modsRoot string) Paths {
	root, fallback := ResolveModsRoot(modsRoot, DocumentsDir())
	return &paths{
		modsRoot:     root,
		usedFallback: fallback,
		configDir:    defaultConfigDir(),
		stateDir:     defaultStateDir(),
	}
}

func (p *paths) ModsRoot() string { return p.modsRoot }
func (p *paths) UsedFallback() bool { return p.usedFallback }
func (p *paths) ConfigDir() string { return p.configDir }
func (p *paths) ConfigFile() string { return filepath.Join(p.configDir, ConfigFileName) }
func (p *paths) StateDir() string { return p.stateDir }
func (p *paths) LogFilePath() string { return filepath.Join(p.stateDir, LogFileName) }
func (p *paths) TempRoot() string { return os.TempDir() }

// DefaultConfigFile is the user config file location without resolving a
// mods root.
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigDir(), ConfigFileName)
}

// DefaultLogFile is the log file location. Logging is set up before the
// config is read, so it cannot wait for New.
func DefaultLogFile() string {
	return filepath.Join(defaultStateDir(), LogFileName)
}

func defaultConfigDir() string {
	return envOr(EnvConfigDir, filepath.Join(xdg.ConfigHome, AppDirName))
}

func defaultStateDir() string {
	return envOr(EnvStateDir, filepath.Join(xdg.StateHome, AppDirName))
}

// DocumentsDir is the platform documents folder, or "" when unknown.
func DocumentsDir() string {
	return xdg.UserDirs.Documents
}

// ResolveModsRoot picks the mods root. configured wins when non-blank;
// then documentsDir/PiBoSo/MX Bikes/mods; then ./mods. The second result
// reports whether the ./mods fallback was used.
func ResolveModsRoot(configured, documentsDir string) (string, bool) {
	if root := strings.TrimSpace(configured); root != "" {
		return ExpandHome(root), false
	}
	if documentsDir != "" {
		return filepath.Join(documentsDir, gameModsDir), false
	}
	return FallbackModsDir, true
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = xdg.Home
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return ExpandHome(v)
	}
	return fallback
}
