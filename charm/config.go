// ABOUTME: Settings for the local preference store
// ABOUTME: Chooses between charm cloud kv and a device-only badger store

package charm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultCharmHost is the self-hosted 2389 research server.
	DefaultCharmHost = "charm.2389.dev"

	// AppName names the kv database and the data directory.
	AppName = "billfold"

	ConfigFileName = "charm-config.json"
)

// Config holds preference store settings.
type Config struct {
	// Host is the charm server hostname.
	Host string `json:"host,omitempty"`

	// AutoSync pushes every write to the charm server. Off by default so the
	// auth token never leaves this device unless asked to.
	AutoSync bool `json:"auto_sync"`

	// LocalOnly keeps preferences in a badger directory under the XDG data
	// dir and never talks to a charm server.
	LocalOnly bool `json:"local_only"`
}

func DefaultConfig() *Config {
	return &Config{
		Host: DefaultCharmHost,
	}
}

func dataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// LocalDir is where the device-only store keeps its files.
func LocalDir() string {
	return filepath.Join(dataDir(), "prefs")
}

func configPath() (string, error) {
	dir := dataDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadConfig loads config from disk, or returns defaults if not found.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil //nolint:nilerr // no data dir means defaults
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), nil //nolint:nilerr // unreadable config falls back to defaults
	}
	if cfg.Host == "" {
		cfg.Host = DefaultCharmHost
	}

	return cfg, nil
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// SetAutoSync enables or disables auto-sync and saves.
func (c *Config) SetAutoSync(enabled bool) error {
	c.AutoSync = enabled
	return c.Save()
}
