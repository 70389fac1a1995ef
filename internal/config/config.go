// Package config loads the operator's runtime configuration. Environment
// variables are the primary source; an optional YAML file supplies the
// less common knobs and never overrides an explicitly set variable.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by Load.
const (
	EnvBackendURL     = "NETFABRIC_BACKEND_URL"
	EnvBackendToken   = "NETFABRIC_BACKEND_TOKEN" // #nosec G101
	EnvWatchNamespace = "NETFABRIC_WATCH_NAMESPACE"
)

// Config holds the operator configuration.
type Config struct {
	// BackendURL is the base URL of the IPAM/DCIM backend API.
	BackendURL string `mapstructure:"backend_url" yaml:"backend_url"`

	// BackendToken authenticates against the backend. Required; the
	// operator refuses to start without it rather than failing on the
	// first reconcile.
	BackendToken string `mapstructure:"backend_token" yaml:"backend_token"`

	// WatchNamespace restricts the watch to one namespace. Empty watches
	// the whole cluster.
	WatchNamespace string `mapstructure:"watch_namespace" yaml:"watch_namespace"`

	// WorkerCount sizes the reconcile worker pool.
	WorkerCount int `mapstructure:"worker_count" yaml:"worker_count"`

	// BackendCallTimeout bounds each individual backend API call.
	BackendCallTimeout time.Duration `mapstructure:"backend_call_timeout" yaml:"backend_call_timeout"`
}

// Load builds the configuration from the environment, optionally layered
// over a YAML file. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	// Environment always wins over the file.
	if v := os.Getenv(EnvBackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv(EnvBackendToken); v != "" {
		cfg.BackendToken = v
	}
	if v := os.Getenv(EnvWatchNamespace); v != "" {
		cfg.WatchNamespace = v
	}

	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 4
	}
	if cfg.BackendCallTimeout == 0 {
		cfg.BackendCallTimeout = 15 * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for the mistakes worth failing fast on.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL is required (set %s)", EnvBackendURL)
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("backend URL %q is not a valid URL: %w", c.BackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL %q must use http or https", c.BackendURL)
	}
	if c.BackendToken == "" {
		return fmt.Errorf("backend token is required (set %s)", EnvBackendToken)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker_count must be at least 1, got %d", c.WorkerCount)
	}
	if c.BackendCallTimeout < time.Second {
		return fmt.Errorf("backend_call_timeout must be at least 1s, got %s", c.BackendCallTimeout)
	}
	return nil
}
