package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAPIVersion is the Admin API version used when none is
// configured.
const DefaultAPIVersion = "2025-07"

// Validation errors.
var (
	// ErrMissingStoreDomain indicates no store domain was configured.
	ErrMissingStoreDomain = errors.New("config: store domain not set (SHOPIFY_STORE_DOMAIN)")

	// ErrMissingAccessToken indicates no Admin API access token was
	// configured.
	ErrMissingAccessToken = errors.New("config: access token not set (SHOPIFY_ACCESS_TOKEN)")
)

// Config holds everything the server needs to reach one store.
type Config struct {
	// StoreDomain is the myshopify domain, e.g. demo.myshopify.com.
	StoreDomain string `yaml:"store_domain"`

	// AccessToken is the Admin API access token sent with every request.
	AccessToken string `yaml:"access_token"`

	// APIVersion selects the Admin API version; DefaultAPIVersion when
	// empty.
	APIVersion string `yaml:"api_version"`

	// CacheDir overrides where the schema cache file lives. Empty uses
	// the user cache directory.
	CacheDir string `yaml:"cache_dir"`
}

// FromEnv builds a Config from SHOPIFY_* environment variables.
func FromEnv() Config {
	return Config{
		StoreDomain: os.Getenv("SHOPIFY_STORE_DOMAIN"),
		AccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		APIVersion:  os.Getenv("SHOPIFY_API_VERSION"),
		CacheDir:    os.Getenv("SHOPIFY_SCHEMA_CACHE_DIR"),
	}
}

// Load reads an optional YAML config file and applies environment
// variables on top: a set environment variable always wins over the
// file. An empty path, or a path that does not exist, yields an
// env-only config. A file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Optional file; fall through to env.
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	env := FromEnv()
	if env.StoreDomain != "" {
		cfg.StoreDomain = env.StoreDomain
	}
	if env.AccessToken != "" {
		cfg.AccessToken = env.AccessToken
	}
	if env.APIVersion != "" {
		cfg.APIVersion = env.APIVersion
	}
	if env.CacheDir != "" {
		cfg.CacheDir = env.CacheDir
	}
	return cfg, nil
}

// Validate reports the first missing required setting. It runs before
// any network I/O so a misconfigured server fails fast.
func (c Config) Validate() error {
	if c.StoreDomain == "" {
		return ErrMissingStoreDomain
	}
	if c.AccessToken == "" {
		return ErrMissingAccessToken
	}
	return nil
}

// Version returns the configured API version, defaulted.
func (c Config) Version() string {
	if c.APIVersion == "" {
		return DefaultAPIVersion
	}
	return c.APIVersion
}
