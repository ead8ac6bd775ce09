// Package config loads sigo settings from the XDG config file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	sigoerrors "github.com/abatilo/sigo/internal/errors"
)

const (
	appName    = "sigo"
	envPrefix  = "SIGO"
	configName = "config.yaml"
)

// Mode selects how much of a task the human formatter shows.
type Mode string

const (
	// ModeMinimum shows only the primary description line.
	ModeMinimum Mode = "minimum"
	// ModeSimple shows every description line.
	ModeSimple Mode = "simple"
)

// IsValidMode checks if a mode string is valid.
func IsValidMode(m Mode) bool {
	switch m {
	case ModeMinimum, ModeSimple:
		return true
	default:
		return false
	}
}

// Config is the user configuration.
type Config struct {
	Data    string `mapstructure:"data"     yaml:"data"`
	Mode    Mode   `mapstructure:"mode"     yaml:"mode"`
	LogFile string `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: filepath.Join(xdg.DataHome, appName),
		Mode: ModeSimple,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sigo/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configName)
}

// Load reads the config file at path, if present, and applies SIGO_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("data", cfg.Data)
	v.SetDefault("mode", string(cfg.Mode))
	v.SetDefault("log_file", "")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Mode = Mode(strings.ToLower(string(cfg.Mode)))
	if !IsValidMode(cfg.Mode) {
		return nil, sigoerrors.InvalidModeError{Value: string(cfg.Mode)}
	}

	var err error
	if cfg.Data, err = expandHome(cfg.Data); err != nil {
		return nil, err
	}
	if cfg.LogFile, err = expandHome(cfg.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return sigoerrors.ConfigExistsError{Path: path}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	//nolint:gosec // G301: 0755 is appropriate for a user config directory
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	content := "# sigo configuration\n# mode: minimum | simple\n" + string(data)
	//nolint:gosec // G306: 0644 is appropriate for user-readable config files
	return os.WriteFile(path, []byte(content), 0o644)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
