// Package config handles classpeek.toml configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const FileName = "classpeek.toml"

type Config struct {
	Classpath []string `toml:"classpath"`
	Format    string   `toml:"format"`
	Log       Log      `toml:"log"`

	// Dir is the directory containing the config file, empty for defaults.
	Dir string `toml:"-"`
}

type Log struct {
	Verbosity int `toml:"verbosity"`
}

func Default() *Config {
	return &Config{
		Classpath: []string{"."},
		Format:    "line",
	}
}

// Load parses classpeek.toml from dir. Relative classpath entries are
// resolved against dir.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	c.Classpath = nil
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if len(c.Classpath) == 0 {
		c.Classpath = []string{"."}
	}
	for i, entry := range c.Classpath {
		if !filepath.IsAbs(entry) {
			c.Classpath[i] = filepath.Join(c.Dir, entry)
		}
	}
	if c.Format == "" {
		c.Format = "line"
	}
	return c, nil
}

// FindAndLoad walks up from startDir to the first classpeek.toml and loads
// it. Defaults are returned when no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}
	for {
		_, err := os.Stat(filepath.Join(dir, FileName))
		if err == nil {
			return Load(dir)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
