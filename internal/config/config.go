package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Package config handles loading and defaulting of the console configuration.

// Config holds the application configuration.
type Config struct {
	Storage struct {
		File string `yaml:"file"` // JSON backing file of the store
	} `yaml:"storage"`

	Console struct {
		Prompt      string `yaml:"prompt"`                 // Shown before each interactive line
		HistoryFile string `yaml:"history_file,omitempty"` // Optional: readline history
	} `yaml:"console"`

	Log struct {
		Level string `yaml:"level,omitempty"` // e.g., debug, info, warn, error
	} `yaml:"log,omitempty"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `yaml:"-"`
}

const (
	defaultConfigDirName  = ".hbnb"
	defaultConfigFileName = "config.yaml"
	localConfigFileName   = "hbnb.yaml"
	defaultStorageFile    = "file.json"
	defaultPrompt         = "(hbnb) "
	defaultLogLevel       = "warn"
)

// Load reads the configuration from path when it is set. Otherwise it tries,
// in order, ./hbnb.yaml and ~/.hbnb/config.yaml, and falls back to defaults
// when neither exists.
func Load(path string) (*Config, error) {
	if path != "" {
		cfg, err := loadFromFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config from %s", path)
		}
		applyDefaults(cfg)
		return cfg, nil
	}

	// 1. Check current directory
	cfg, err := loadFromFile(localConfigFileName)
	if err == nil {
		applyDefaults(cfg)
		return cfg, nil
	}
	if !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrapf(err, "error reading config from %s", localConfigFileName)
	}

	// 2. Check home directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		homeConfigPath := filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName)
		cfg, err = loadFromFile(homeConfigPath)
		if err == nil {
			applyDefaults(cfg)
			return cfg, nil
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "error reading config from %s", homeConfigPath)
		}
	}

	// 3. No config file found
	defaultCfg := &Config{}
	applyDefaults(defaultCfg)
	return defaultCfg, nil
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err // Propagate error (including os.IsNotExist)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config yaml %s", filePath)
	}
	cfg.Source = filePath
	return &cfg, nil
}

// applyDefaults ensures essential fields have default values if not set.
func applyDefaults(cfg *Config) {
	if cfg.Storage.File == "" {
		cfg.Storage.File = defaultStorageFile
	}
	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = defaultPrompt
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}
