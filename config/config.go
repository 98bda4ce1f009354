// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration for the catalog proxy and the
// feed pipeline.
type Config struct {
	// APIKey is the YouTube Data API v3 key used by the catalog proxy
	APIKey string `json:"api_key"`
	// Port is the TCP port the proxy listens on (default: "3000")
	Port string `json:"port"`
	// StaticDir is the directory served at the HTTP root
	StaticDir string `json:"static_dir"`

	// StorePath is the path of the durable channel store file
	StorePath string `json:"store_path"`
	// ProxyURL is the base URL clients use to reach the proxy
	ProxyURL string `json:"proxy_url"`

	// CacheTTL is how long assembled shorts results stay fresh
	CacheTTL time.Duration `json:"cache_ttl"`
	// UpstreamQPS throttles calls to the YouTube API (0 = unthrottled)
	UpstreamQPS float64 `json:"upstream_qps"`
	// UpstreamBurst is the throttle burst size
	UpstreamBurst int `json:"upstream_burst"`

	// FeedTargetTotal is the feed size divided across subscribed channels
	FeedTargetTotal int `json:"feed_target_total"`
	// FeedMinPerChannel is the per-channel floor for the feed quota
	FeedMinPerChannel int `json:"feed_min_per_channel"`

	// HTTPTimeout is the timeout for outbound client requests
	HTTPTimeout time.Duration `json:"http_timeout"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:              "3000",
		StaticDir:         "public",
		StorePath:         "ziktok_store.json",
		ProxyURL:          "http://localhost:3000",
		CacheTTL:          time.Hour,
		UpstreamQPS:       0,
		UpstreamBurst:     1,
		FeedTargetTotal:   100,
		FeedMinPerChannel: 10,
		HTTPTimeout:       30 * time.Second,
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Override with environment variables
	cfg.loadFromEnv()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ziktok.json in current directory or home directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ziktok.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ziktok", "ziktok.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("ZIKTOK_STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("ZIKTOK_STORE_PATH"); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv("ZIKTOK_PROXY_URL"); v != "" {
		c.ProxyURL = v
	}
	if v := os.Getenv("ZIKTOK_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.CacheTTL = d
		}
	}
	if v := os.Getenv("ZIKTOK_UPSTREAM_QPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.UpstreamQPS = f
		}
	}
	if v := os.Getenv("ZIKTOK_UPSTREAM_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UpstreamBurst = n
		}
	}
	if v := os.Getenv("ZIKTOK_FEED_TARGET_TOTAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FeedTargetTotal = n
		}
	}
	if v := os.Getenv("ZIKTOK_FEED_MIN_PER_CHANNEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FeedMinPerChannel = n
		}
	}
	if v := os.Getenv("ZIKTOK_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive")
	}
	if c.UpstreamQPS < 0 {
		return fmt.Errorf("upstream_qps must be non-negative")
	}
	if c.UpstreamBurst < 1 {
		return fmt.Errorf("upstream_burst must be >= 1")
	}
	if c.FeedTargetTotal <= 0 {
		return fmt.Errorf("feed_target_total must be positive")
	}
	if c.FeedMinPerChannel <= 0 {
		return fmt.Errorf("feed_min_per_channel must be positive")
	}
	if c.FeedMinPerChannel > c.FeedTargetTotal {
		return fmt.Errorf("feed_min_per_channel must be <= feed_target_total")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	return nil
}
