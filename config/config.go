// ABOUTME: Application configuration stored at XDG paths with env overrides
// ABOUTME: Resolves gateway URLs, log level and default phone region
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	AppName = "billfold"

	DefaultAPIBase     = "http://localhost:8787/api"
	DefaultAuthBase    = "http://localhost:8787"
	DefaultLogLevel    = "warn"
	DefaultPhoneRegion = "US"
)

// Config holds where the gateway lives and how the client behaves.
type Config struct {
	// APIBase is the root of the resource endpoints (/client, /project, ...).
	APIBase string `json:"api_base"`

	// AuthBase is the root of the /auth endpoints.
	AuthBase string `json:"auth_base"`

	LogLevel    string `json:"log_level"`
	PhoneRegion string `json:"phone_region"`
}

func DefaultConfig() *Config {
	return &Config{
		APIBase:     DefaultAPIBase,
		AuthBase:    DefaultAuthBase,
		LogLevel:    DefaultLogLevel,
		PhoneRegion: DefaultPhoneRegion,
	}
}

// Dir returns the XDG data directory for billfold.
func Dir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// DefaultPath returns the XDG path of config.json.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config from path (DefaultPath when empty), then .env in the
// working directory, then BILLFOLD_* environment variables.
// A missing file yields defaults.
//
// Environment variables override file values:
// - BILLFOLD_API_BASE
// - BILLFOLD_AUTH_BASE
// - BILLFOLD_LOG_LEVEL
// - BILLFOLD_PHONE_REGION.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer func() { _ = f.Close() }()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	if err := LoadEnvFile(".env"); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	cfg.applyDefaults()

	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without replacing ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BILLFOLD_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("BILLFOLD_AUTH_BASE"); v != "" {
		cfg.AuthBase = v
	}
	if v := os.Getenv("BILLFOLD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BILLFOLD_PHONE_REGION"); v != "" {
		cfg.PhoneRegion = v
	}
}

func (c *Config) applyDefaults() {
	c.APIBase = strings.TrimRight(c.APIBase, "/")
	c.AuthBase = strings.TrimRight(c.AuthBase, "/")
	if c.APIBase == "" {
		c.APIBase = DefaultAPIBase
	}
	if c.AuthBase == "" {
		c.AuthBase = DefaultAuthBase
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.PhoneRegion == "" {
		c.PhoneRegion = DefaultPhoneRegion
	}
	c.PhoneRegion = strings.ToUpper(c.PhoneRegion)
}

// Validate checks that both gateway bases are absolute http(s) URLs.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{"api_base": c.APIBase, "auth_base": c.AuthBase} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Save writes the config to path (DefaultPath when empty).
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
