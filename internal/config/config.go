// SPDX-License-Identifier: MIT

// Package config loads matrices.toml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rmns82839-rgb/Matrices/report"
)

// EnvConfig names the environment variable consulted by Discover.
const EnvConfig = "MATRICES_CONFIG"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "matrices.toml"

// Defaults.
const (
	DefaultLogLevel = "info"
	DefaultLanguage = "es"
	DefaultFormat   = string(report.FormatText)
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid")

// Config holds the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Header  HeaderConfig  `toml:"header"`
}

// GeneralConfig holds output and logging settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	Language string `toml:"language"`
	Format   string `toml:"format"`
	// Color is a pointer so an absent key keeps the default (true).
	Color *bool `toml:"color"`
}

// HeaderConfig holds default report header fields.
type HeaderConfig struct {
	Subject string `toml:"subject"`
	Author  string `toml:"author"`
	Program string `toml:"program"`
	Campus  string `toml:"campus"`
	Shift   string `toml:"shift"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var c Config
	c.applyDefaults()

	return &c
}

// Load decodes the TOML file at path, fills defaults and validates.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Discover loads the first config found in order: explicit path,
// $MATRICES_CONFIG, ./matrices.toml. With none present it returns Default.
func Discover(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	if p := os.Getenv(EnvConfig); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		cfg, err := Load(DefaultFile)
		return cfg, DefaultFile, err
	}

	return Default(), "", nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if c.General.Language == "" {
		c.General.Language = DefaultLanguage
	}
	if c.General.Format == "" {
		c.General.Format = DefaultFormat
	}
	if c.General.Color == nil {
		on := true
		c.General.Color = &on
	}
}

// Validate rejects unknown levels, formats and languages.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.General.LogLevel); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.General.Format); err != nil {
		return fmt.Errorf("general.format: %w: %w", err, ErrInvalid)
	}
	if _, err := report.ParseLanguage(c.General.Language); err != nil {
		return fmt.Errorf("general.language: %w: %w", err, ErrInvalid)
	}

	return nil
}

// ColorEnabled reports the effective color setting.
func (c *Config) ColorEnabled() bool { return c.General.Color == nil || *c.General.Color }

// ReportHeader converts the [header] section.
func (c *Config) ReportHeader() report.Header {
	return report.Header{
		Subject: c.Header.Subject,
		Author:  c.Header.Author,
		Program: c.Header.Program,
		Campus:  c.Header.Campus,
		Shift:   c.Header.Shift,
	}
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil || !knownLevel(s) {
		return 0, fmt.Errorf("general.log_level %q: %w", s, ErrInvalid)
	}

	return l, nil
}

func knownLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "error":
		return true
	}

	return false
}
