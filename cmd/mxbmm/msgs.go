package mxbmm

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install and manage MX Bikes mods"
	MsgInstallShort    = "Install a .zip, .pkz or .pnt file"
	MsgListShort       = "List installed mods"
	MsgRemoveShort     = "Uninstall a mod"
	MsgCategoriesShort = "Show the mod categories and their folders"
	MsgCategoriesLong  = "Categories shows every mod category with its slug, label and folder under the mods root."
	MsgWatchShort      = "Keep the inventory on screen and refresh it on changes"
	MsgRootCmdShort    = "Print the mods root"
	MsgRootCmdLong     = "Root prints the mods root mxbmm resolved from flags, environment and config. With --paths it also prints the config file, log file and temporary directory."
	MsgConfigShort     = "Print or save the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgStaged            = "Staged %s as %q in %s"
	MsgCancelled         = "Install cancelled, nothing was changed."
	MsgRemoved           = "Removed %s"
	MsgRemoveAborted     = "Nothing removed."
	MsgConfirmRemove     = "Remove %s?"
	MsgRootMissing       = "Mods root %s does not exist yet."
	MsgWatchStarted      = "Watching %s (Ctrl+C to stop)"
	MsgWatchUnavailable  = "Mods root %s does not exist, waiting for it to appear."
	MsgConfigWritten     = "Wrote %s"
	MsgPathsModsRoot     = "mods root:   %s"
	MsgPathsConfigFile   = "config file: %s"
	MsgPathsLogFile      = "log file:    %s"
	MsgPathsTempDir      = "temp dir:    %s"
	MsgPathsConfigLoaded = "loaded:      %s"

	// Error messages
	MsgErrUnknownCategory = "unknown category %q (see mxbmm categories)"
	MsgErrNeedsYes        = "refusing to remove without confirmation: pass --yes or run in a terminal"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Mods root (default: Documents/PiBoSo/MX Bikes/mods)"
	MsgFlagConfig      = "Config file (default: $XDG_CONFIG_HOME/mxbmm/config.toml)"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagCategory    = "Install category (slug, label or folder)"
	MsgFlagName        = "Install name (default: proposed from the file)"
	MsgFlagNotes       = "Notes recorded in the metadata file"
	MsgFlagModVersion  = "Mod version recorded in the metadata file"
	MsgFlagInteractive = "Review the install in a form before committing"
	MsgFlagFormat      = "Output format: text, json or yaml (default from config)"
	MsgFlagYes         = "Do not ask for confirmation"
	MsgFlagWrite       = "Save the configuration as the user config file"
	MsgFlagPaths       = "Also print the config, log and temporary paths"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
