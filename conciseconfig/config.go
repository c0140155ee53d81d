// Package conciseconfig provides TOML-backed ambient configuration for
// conciseset tooling: growth-factor tuning, the stats singleton toggle,
// and debug log verbosity.
package conciseconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds conciseset's ambient settings.
type Config struct {
	Storage struct {
		// GrowthFactor scales how many filler words concise
		// pre-allocates when appending past the current capacity.
		GrowthFactor float64 `toml:"growth_factor"`
	} `toml:"storage"`

	Stats struct {
		Enabled bool `toml:"enabled"`
	} `toml:"stats"`

	Debug struct {
		Verbosity string `toml:"verbosity"` // panic, fatal, error, warn, info, debug, trace
	} `toml:"debug"`
}

// DefaultConfig returns a Config populated with conciseset's defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Storage.GrowthFactor = 1.5
	cfg.Stats.Enabled = false
	cfg.Debug.Verbosity = "info"
	return cfg
}

// ConfigPath returns the platform-specific config file path.
func ConfigPath() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "conciseset")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "conciseset.toml"
		}
		dir = filepath.Join(home, ".config", "conciseset")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "conciseset.toml"
	}
	return filepath.Join(dir, "conciseset.toml")
}

// Load loads configuration from the default config file, falling back to
// DefaultConfig if it does not exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads configuration from path, falling back to DefaultConfig
// if path does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("conciseconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes c to path, creating parent directories as needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("conciseconfig: create dir %s: %w", dir, err)
	}
	f, err := os.Create(path) // #nosec G304 -- caller-controlled config file path
	if err != nil {
		return fmt.Errorf("conciseconfig: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("conciseconfig: encode %s: %w", path, err)
	}
	return nil
}
