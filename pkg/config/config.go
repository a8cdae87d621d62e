/*
Package config manages the TOML configuration shared by the server and CLI
front-ends. The core indexes take no configuration at all; everything here
belongs to the outer surfaces.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/prajithkb/autocomplete/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	EnableFilter bool `toml:"enable_filter"`
}

// DictConfig holds vocabulary loading options.
type DictConfig struct {
	Path     string `toml:"path"`
	MaxWords int    `toml:"max_words"`
}

// CliConfig holds terminal front-end options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultMinLen   int  `toml:"default_min_len"`
	DefaultMaxLen   int  `toml:"default_max_len"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MinPrefix:    1,
			MaxPrefix:    60,
			EnableFilter: true,
		},
		Dict: DictConfig{
			Path:     "data/words.txt",
			MaxWords: 0,
		},
		CLI: CliConfig{
			DefaultLimit:    5,
			DefaultMinLen:   1,
			DefaultMaxLen:   24,
			DefaultNoFilter: false,
		},
	}
}

// InitConfig loads config from the given path, creating the file with
// defaults when it is missing. Parse failures fall back to defaults rather
// than aborting startup.
func InitConfig(path string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", path, err)
		return DefaultConfig(), nil
	}
	if !utils.FileExists(path) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			log.Warnf("Failed to create default config at %s: %v. Using built-in defaults...", path, err)
			return cfg, nil
		}
		log.Debugf("Created default config file at: %s", path)
		return cfg, nil
	}
	return LoadConfig(path)
}

// LoadConfig loads from a TOML file, layering the file over the defaults so
// partial configs keep sane values for everything they omit.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", path, err)
		return DefaultConfig(), nil
	}
	log.Debugf("Loaded config from: %s", utils.GetAbsolutePath(path))
	return cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, path string) error {
	return utils.SaveTOMLFile(path, cfg)
}
