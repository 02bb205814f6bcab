package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the optional per-package generator configuration, looked up
// next to the target package.
const ConfigFile = "issame.toml"

// Config controls the layout of generated files. Flags override values from
// the config file, which override the defaults.
type Config struct {
	Suffix string   // generated file name suffix
	Tag    string   // struct tag key
	Header []string // extra header lines, e.g. build constraints
}

func DefaultConfig() Config {
	return Config{Suffix: "_issame.go", Tag: "issame"}
}

// issame.toml key mapping to Config.
type fileConfig struct {
	Suffix string   `toml:"suffix"`
	Tag    string   `toml:"tag"`
	Header []string `toml:"header"`
}

// LoadConfig overlays the config file from dir, when present, onto the
// defaults.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("gen: load %s: %w", path, err)
	}
	if meta.IsDefined("suffix") {
		cfg.Suffix = strings.TrimSpace(raw.Suffix)
	}
	if meta.IsDefined("tag") {
		cfg.Tag = strings.TrimSpace(raw.Tag)
	}
	if meta.IsDefined("header") {
		cfg.Header = raw.Header
	}
	return cfg, nil
}
