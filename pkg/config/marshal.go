package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/shohamc1/mxbmm/pkg/errors"
)

// fileConfig mirrors Config in the on-disk layout, with durations as
// strings so the output loads back through Load.
type fileConfig struct {
	Mods struct {
		Root string `toml:"root"`
	} `toml:"mods"`
	Staging struct {
		Dir string `toml:"dir"`
	} `toml:"staging"`
	Install struct {
		Category string `toml:"category"`
	} `toml:"install"`
	Watch struct {
		Enabled  bool   `toml:"enabled"`
		Debounce string `toml:"debounce"`
		Interval string `toml:"interval"`
	} `toml:"watch"`
	Output struct {
		Format string `toml:"format"`
		Color  bool   `toml:"color"`
	} `toml:"output"`
}

// Marshal renders cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	var fc fileConfig
	fc.Mods.Root = cfg.Mods.Root
	fc.Staging.Dir = cfg.Staging.Dir
	fc.Install.Category = cfg.Install.Category
	fc.Watch.Enabled = cfg.Watch.Enabled
	fc.Watch.Debounce = cfg.Watch.Debounce.String()
	fc.Watch.Interval = cfg.Watch.Interval.String()
	fc.Output.Format = cfg.Output.Format
	fc.Output.Color = cfg.Output.Color

	data, err := toml.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

// WriteFile writes cfg to path, refusing to replace an existing file.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(path))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path)
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path)
	}
	return nil
}
