package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"

	EnvConfig  = "ITEMDECK_CONFIG"
	EnvTheme   = "ITEMDECK_THEME"
	EnvLogFile = "ITEMDECK_LOG_FILE"

	DefaultDateLayout = "Jan 2, 2006, 03:04 PM"
)

// Config is read from YAML; every field has a usable default.
type Config struct {
	Theme      string `yaml:"theme"`       // classic | neon | mono
	IDStrategy string `yaml:"id_strategy"` // uuid | sequence
	LogFile    string `yaml:"log_file"`
	LogLevel   string `yaml:"log_level"`
	DateLayout string `yaml:"date_layout"`

	// Source records where the values came from: "default", or the file path.
	Source string `yaml:"-"`
}

func Default() Config {
	return Config{
		Theme:      "classic",
		IDStrategy: "uuid",
		LogLevel:   "warn",
		DateLayout: DefaultDateLayout,
		Source:     "default",
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".itemdeck"), nil
}

// Path resolves the config file: explicit flag, then env, then ~/.itemdeck.
// required is true when the user asked for that file and it must exist.
func Path(explicit string) (path string, required bool, err error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, true, nil
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, configFileName), false, nil
}

// Load reads the config file (if any), applies env overrides and validates.
func Load(explicit string) (Config, error) {
	cfg := Default()
	p, required, err := Path(explicit)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
		cfg.Source = p
	case errors.Is(err, os.ErrNotExist) && !required:
		// no config yet, defaults it is
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	cfg.fillDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.IDStrategy == "" {
		c.IDStrategy = d.IDStrategy
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.DateLayout == "" {
		c.DateLayout = d.DateLayout
	}
	c.Theme = strings.ToLower(c.Theme)
	c.IDStrategy = strings.ToLower(c.IDStrategy)
}

var (
	themes     = []string{"classic", "neon", "mono"}
	strategies = []string{"uuid", "sequence"}
)

func (c Config) Validate() error {
	if !oneOf(c.Theme, themes) {
		return fmt.Errorf("theme %q: want one of %s", c.Theme, strings.Join(themes, ", "))
	}
	if !oneOf(c.IDStrategy, strategies) {
		return fmt.Errorf("id_strategy %q: want one of %s", c.IDStrategy, strings.Join(strategies, ", "))
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
