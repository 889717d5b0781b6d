// Package paths provides centralized path handling for mxbmm.
//
// It resolves the mods root and the XDG directories mxbmm uses:
//
//   - Mods root: the game's mods folder, where categories live
//   - Config: $XDG_CONFIG_HOME/mxbmm (user configuration)
//   - State: $XDG_STATE_HOME/mxbmm (log file)
//   - Temp: the OS temp directory, home of extraction directories
//
// # Environment Variables
//
//   - MXBMM_MODS_ROOT: mods root (read through the config layer, key mods.root)
//   - MXBMM_CONFIG_DIR: override the config directory
//   - MXBMM_STATE_DIR: override the state directory
//
// # Mods root resolution
//
// An explicit value wins. Otherwise the documents folder is used
// (Documents/PiBoSo/MX Bikes/mods) and, when no documents folder is known,
// ./mods relative to the working directory. A leading ~ is expanded.
package paths
