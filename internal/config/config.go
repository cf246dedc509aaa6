// Package config loads optional gentext settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jotfs/gentext/internal/errs"
	"github.com/jotfs/gentext/internal/log"
)

const (
	defaultLogLevel  = "warn"
	defaultBufferKiB = 64

	maxBufferKiB = 64 * 1024 // 64 MiB

	kiB = 1024
)

// LogConfig is the [log] section.
type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	BufferKiB uint `toml:"buffer_kib"`
}

// Config holds all settings.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	var cfg Config
	cfg.setDefaults()
	return cfg
}

// Read decodes, validates and fills defaults for the config file at filename.
// The file must exist.
func Read(filename string) (Config, error) {
	if exists, err := fileExists(filename); err != nil {
		return Config{}, errs.Wrap(errs.BadArgument, err, fmt.Sprintf("config file %s", filename))
	} else if !exists {
		return Config{}, errs.Errorf(errs.BadArgument, "config file %s not found", filename)
	}

	var cfg Config
	if _, err := toml.DecodeFile(filename, &cfg); err != nil {
		return Config{}, errs.Wrap(errs.BadArgument, err, fmt.Sprintf("reading config %s", filename))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(errs.BadArgument, err, "invalid config")
	}
	cfg.setDefaults()
	return cfg, nil
}

// BufferSize returns the write buffer size in bytes.
func (c Config) BufferSize() int {
	return int(c.Output.BufferKiB) * kiB
}

func (c LogConfig) validate() error {
	if !log.ValidLevel(c.Level) {
		return fmt.Errorf("invalid level %q. Must be one of: debug, info, warn, error", c.Level)
	}
	return nil
}

func (c OutputConfig) validate() error {
	// Zero means unset and is replaced by the default.
	if c.BufferKiB > maxBufferKiB {
		return fmt.Errorf("buffer_kib must be in range 1 to %d", maxBufferKiB)
	}
	return nil
}

// Validate checks every section of the config.
func (c Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("[log]: %w", err)
	}
	if err := c.Output.validate(); err != nil {
		return fmt.Errorf("[output]: %w", err)
	}
	return nil
}

func (c *LogConfig) setDefaults() {
	if c.Level == "" {
		c.Level = defaultLogLevel
	}
}

func (c *OutputConfig) setDefaults() {
	if c.BufferKiB == 0 {
		c.BufferKiB = defaultBufferKiB
	}
}

func (c *Config) setDefaults() {
	c.Log.setDefaults()
	c.Output.setDefaults()
}

func fileExists(f string) (bool, error) {
	info, err := os.Stat(f)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, errors.New("is a directory but a file is required")
	}
	return true, nil
}
