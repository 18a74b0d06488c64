package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	// HTTP server settings
	HTTP struct {
		Address string `yaml:"address"`
		Port    string `yaml:"port"`
	} `yaml:"http"`

	// Data settings for the persistent store
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`

	// Cache settings for fetched payloads
	Cache struct {
		Dir string        `yaml:"dir"`
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`

	// Fetch settings for upstream HTTP requests
	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"fetch"`

	// External feed settings
	Feed struct {
		URL       string        `yaml:"url"`
		Schema    string        `yaml:"schema"`
		UTCOffset time.Duration `yaml:"utc_offset"`
	} `yaml:"feed"`

	// Native data source settings
	Native struct {
		DataURL         string        `yaml:"data_url"`
		RefreshInterval time.Duration `yaml:"refresh_interval"`
	} `yaml:"native"`

	// Remote config settings
	RemoteConfig struct {
		URL             string        `yaml:"url"`
		RefreshInterval time.Duration `yaml:"refresh_interval"`
	} `yaml:"remote_config"`

	// LogLevel controls log verbosity (DEBUG, INFO, WARN, ERROR)
	LogLevel string `yaml:"log_level"`
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTP.Address == "" {
		errors = append(errors, "HTTP address is required")
	}
	if c.HTTP.Port == "" {
		errors = append(errors, "HTTP port is required")
	}

	if c.Data.Dir == "" {
		errors = append(errors, "Data directory is required")
	}

	if c.Cache.Dir == "" {
		errors = append(errors, "Cache directory is required")
	}
	if c.Cache.TTL <= 0 {
		errors = append(errors, "Cache TTL must be positive")
	}

	if c.Fetch.Timeout <= 0 {
		errors = append(errors, "Fetch timeout must be positive")
	}

	// Feed URL is optional (the external feed feature is disabled without
	// it), but a configured schema must be one of the known values.
	switch c.Feed.Schema {
	case "", "flat_rows", "pre_shaped", "legacy":
	default:
		errors = append(errors, fmt.Sprintf("Unknown feed schema: %s", c.Feed.Schema))
	}

	if c.Native.DataURL == "" {
		errors = append(errors, "Native data URL is required")
	}
	if c.Native.RefreshInterval <= 0 {
		errors = append(errors, "Native refresh interval must be positive")
	}

	if c.RemoteConfig.URL != "" && c.RemoteConfig.RefreshInterval <= 0 {
		errors = append(errors, "Remote config refresh interval must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.HTTP.Address = "127.0.0.1"
	cfg.HTTP.Port = "8080"

	cfg.Data.Dir = "" // Required, no default

	cfg.Cache.Dir = "" // Required, no default
	cfg.Cache.TTL = time.Hour

	cfg.Fetch.Timeout = 30 * time.Second

	cfg.Feed.URL = "" // Optional, feature disabled without it
	cfg.Feed.Schema = "flat_rows"
	cfg.Feed.UTCOffset = time.Hour

	cfg.Native.DataURL = "" // Required, no default
	cfg.Native.RefreshInterval = 15 * time.Minute

	cfg.RemoteConfig.URL = "" // Optional
	cfg.RemoteConfig.RefreshInterval = time.Hour

	cfg.LogLevel = "INFO"

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if provided) and applies environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("HTTP_PORT"); val != "" {
		cfg.HTTP.Port = val
	}

	if val := os.Getenv("DATA_DIR"); val != "" {
		absPath, err := validateDir("DATA_DIR", val)
		if err != nil {
			return err
		}
		cfg.Data.Dir = absPath
	}

	if val := os.Getenv("CACHE_DIR"); val != "" {
		absPath, err := validateDir("CACHE_DIR", val)
		if err != nil {
			return err
		}
		cfg.Cache.Dir = absPath
	}
	if val := os.Getenv("CACHE_TTL"); val != "" {
		duration, err := parsePositiveDuration("CACHE_TTL", val)
		if err != nil {
			return err
		}
		cfg.Cache.TTL = duration
	}

	if val := os.Getenv("FETCH_TIMEOUT"); val != "" {
		duration, err := parsePositiveDuration("FETCH_TIMEOUT", val)
		if err != nil {
			return err
		}
		cfg.Fetch.Timeout = duration
	}

	if val := os.Getenv("FEED_URL"); val != "" {
		cfg.Feed.URL = val
	}
	if val := os.Getenv("FEED_SCHEMA"); val != "" {
		cfg.Feed.Schema = val
	}
	if val := os.Getenv("FEED_UTC_OFFSET"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid FEED_UTC_OFFSET format (expected duration like '1h', '-30m'): %w", err)
		}
		cfg.Feed.UTCOffset = duration
	}

	if val := os.Getenv("NATIVE_DATA_URL"); val != "" {
		cfg.Native.DataURL = val
	}
	if val := os.Getenv("NATIVE_REFRESH_INTERVAL"); val != "" {
		duration, err := parsePositiveDuration("NATIVE_REFRESH_INTERVAL", val)
		if err != nil {
			return err
		}
		cfg.Native.RefreshInterval = duration
	}

	if val := os.Getenv("REMOTE_CONFIG_URL"); val != "" {
		cfg.RemoteConfig.URL = val
	}
	if val := os.Getenv("REMOTE_CONFIG_REFRESH_INTERVAL"); val != "" {
		duration, err := parsePositiveDuration("REMOTE_CONFIG_REFRESH_INTERVAL", val)
		if err != nil {
			return err
		}
		cfg.RemoteConfig.RefreshInterval = duration
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	return nil
}

// parsePositiveDuration parses an environment duration value and rejects
// zero or negative results.
func parsePositiveDuration(name, val string) (time.Duration, error) {
	duration, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format (expected duration like '1h', '30m'): %w", name, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%s must be positive, got: %s", name, val)
	}
	return duration, nil
}

// validateDir validates and normalizes a directory path to an absolute path
func validateDir(name, dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("%s cannot be empty", name)
	}

	if !filepath.IsAbs(dir) {
		absPath, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve absolute path for %s: %w", name, err)
		}
		return absPath, nil
	}

	return dir, nil
}

// Print outputs the configuration to stdout
func (c *Config) Print() {
	fmt.Printf("httpAddress: %v\n", c.HTTP.Address)
	fmt.Printf("httpPort: %v\n", c.HTTP.Port)
	fmt.Printf("dataDir: %v\n", c.Data.Dir)
	fmt.Printf("cacheDir: %v\n", c.Cache.Dir)
	fmt.Printf("cacheTTL: %v\n", c.Cache.TTL)
	fmt.Printf("fetchTimeout: %v\n", c.Fetch.Timeout)
	fmt.Printf("feedUrl: %v\n", c.Feed.URL)
	fmt.Printf("feedSchema: %v\n", c.Feed.Schema)
	fmt.Printf("feedUtcOffset: %v\n", c.Feed.UTCOffset)
	fmt.Printf("nativeDataUrl: %v\n", c.Native.DataURL)
	fmt.Printf("nativeRefreshInterval: %v\n", c.Native.RefreshInterval)
	fmt.Printf("remoteConfigUrl: %v\n", c.RemoteConfig.URL)
	fmt.Printf("remoteConfigRefreshInterval: %v\n", c.RemoteConfig.RefreshInterval)
	fmt.Printf("logLevel: %v\n", c.LogLevel)
}
