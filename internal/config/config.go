// Package config loads the taskbar-embed YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/taskbar-embed/internal/model"
)

// ClassProfile names the three taskbar window classes for one shell version.
type ClassProfile struct {
	Name    string `yaml:"name"    json:"name"`
	Shell   string `yaml:"shell"   json:"shell"`
	Toolbar string `yaml:"toolbar" json:"toolbar"`
	Notify  string `yaml:"notify"  json:"notify"`
}

// Sizing modes for the available-size computation.
const (
	SizingFillGap = "fill-gap"
	SizingAspect  = "aspect"
)

// Config is the effective configuration.
type Config struct {
	// Profiles are tried in order until one matches the running shell.
	Profiles []ClassProfile `yaml:"profiles" json:"profiles"`

	// MaxSize is the requested/maximum control size. Zero means "no preference".
	MaxSize model.Size `yaml:"max_size" json:"max_size"`

	Sizing        string `yaml:"sizing"         json:"sizing"`
	AutoFit       bool   `yaml:"auto_fit"       json:"auto_fit"`
	QueueSize     int    `yaml:"queue_size"     json:"queue_size"`
	RestoreParent bool   `yaml:"restore_parent" json:"restore_parent"`
	LogLevel      string `yaml:"log_level"      json:"log_level"`
}

// Default returns the built-in configuration, including the versioned class
// name fallback table.
func Default() Config {
	return Config{
		Profiles: []ClassProfile{
			{Name: "classic", Shell: "Shell_TrayWnd", Toolbar: "ReBarWindow32", Notify: "TrayNotifyWnd"},
			{Name: "win11", Shell: "Shell_TrayWnd", Toolbar: "Windows.UI.Composition.DesktopWindowContentBridge", Notify: "TrayNotifyWnd"},
		},
		Sizing:        SizingFillGap,
		AutoFit:       true,
		QueueSize:     64,
		RestoreParent: true,
		LogLevel:      "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/taskbar-embed/config.yaml (or the OS
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "taskbar-embed", "config.yaml")
}

// Load reads path over the defaults. An empty path tries DefaultPath and
// silently falls back to defaults when that file does not exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// A profiles list in data replaces the built-in table.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("config: at least one class profile is required")
	}
	for i, p := range c.Profiles {
		if p.Shell == "" || p.Toolbar == "" || p.Notify == "" {
			return fmt.Errorf("config: profile %d (%q) must name shell, toolbar and notify classes", i, p.Name)
		}
	}
	switch c.Sizing {
	case SizingFillGap, SizingAspect:
	default:
		return fmt.Errorf("config: unknown sizing %q (use %s or %s)", c.Sizing, SizingFillGap, SizingAspect)
	}
	if c.MaxSize.Width < 0 || c.MaxSize.Height < 0 {
		return fmt.Errorf("config: max_size must not be negative, got %v", c.MaxSize)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("config: queue_size must be positive, got %d", c.QueueSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q (use debug, info, warn, or error)", s)
	}
}
