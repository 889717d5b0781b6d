// Package config handles configuration management for mxbmm.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/mxbmm/config.toml or --config
//  3. MXBMM_* environment variables (MXBMM_MODS_ROOT sets mods.root)
//  4. explicit overrides, typically command-line flags
//
// The merged tree is decoded into Config with mapstructure, which turns
// duration strings such as "250ms" into time.Duration.
package config
