package config

import (
	"time"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
)

// Output formats understood by the list command
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the effective mxbmm configuration.
type Config struct {
	Mods    ModsConfig    `koanf:"mods"`
	Staging StagingConfig `koanf:"staging"`
	Install InstallConfig `koanf:"install"`
	Watch   WatchConfig   `koanf:"watch"`
	Output  OutputConfig  `koanf:"output"`

	// Source is the config file that was loaded, empty when none was.
	Source string `koanf:"-"`
}

// ModsConfig locates the game's mods folder
type ModsConfig struct {
	Root string `koanf:"root"`
}

// StagingConfig controls where archives are extracted
type StagingConfig struct {
	Dir string `koanf:"dir"`
}

// InstallConfig holds install defaults
type InstallConfig struct {
	Category string `koanf:"category"`
}

// WatchConfig controls the change watcher
type WatchConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Debounce time.Duration `koanf:"debounce"`
	Interval time.Duration `koanf:"interval"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Format string `koanf:"format"`
	Color  bool   `koanf:"color"`
}

// DefaultCategory is the configured initial category for archives.
func (c *Config) DefaultCategory() category.Category {
	if cat, ok := category.Parse(c.Install.Category); ok {
		return cat
	}
	return category.Tracks
}

// Validate checks values the type system cannot.
func (c *Config) Validate() error {
	if _, ok := category.Parse(c.Install.Category); !ok {
		return errors.Newf(errors.ErrConfigParse, "install.category: unknown category %q", c.Install.Category).
			WithDetail("valid", category.Slugs())
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigParse, "output.format: must be %s, %s or %s, got %q",
			FormatText, FormatJSON, FormatYAML, c.Output.Format)
	}
	if c.Watch.Interval <= 0 {
		return errors.Newf(errors.ErrConfigParse, "watch.interval: must be positive, got %s", c.Watch.Interval)
	}
	if c.Watch.Debounce < 0 {
		return errors.Newf(errors.ErrConfigParse, "watch.debounce: must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}
