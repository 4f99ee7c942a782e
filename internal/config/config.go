package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultListen    = ":3000"
	defaultLogLevel  = "info"
	defaultStream    = "token"
	defaultTopic     = "token"
	defaultFromBlock = "0"
	defaultBatchSize = 50

	configFile = "config.json"
)

// Environment overrides, applied after the config file.
const (
	EnvConfigDir  = "W3TOKENS_CONFIG_DIR"
	EnvGatewayURL = "W3TOKENS_ETHCONNECT_URL"
	EnvLogLevel   = "W3TOKENS_LOG_LEVEL"
	EnvListen     = "W3TOKENS_LISTEN"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads config from dir (or creates defaults). dir defaults to ~/.w3tokens.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3tokens")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.configDir = dir
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// Validate checks the settings needed to run the server.
func (c *Config) Validate() error {
	if c.Gateway.URL == "" {
		return fmt.Errorf("%w: gateway.url is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Gateway.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: gateway.url must be an http(s) URL, got %q", ErrInvalidConfig, c.Gateway.URL)
	}
	if c.Events.Topic == "" {
		return fmt.Errorf("%w: events.topic is required", ErrInvalidConfig)
	}
	if strings.Contains(c.Events.Topic, ":") {
		return fmt.Errorf("%w: events.topic must not contain ':'", ErrInvalidConfig)
	}
	if c.Events.BatchSize <= 0 {
		return fmt.Errorf("%w: events.batch_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// WebSocketURL derives the gateway event stream endpoint from its REST URL.
func (c *Config) WebSocketURL() string {
	u, err := url.Parse(c.Gateway.URL)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String()
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		Listen:   defaultListen,
		LogLevel: defaultLogLevel,
		Events: Events{
			Stream:    defaultStream,
			Topic:     defaultTopic,
			FromBlock: defaultFromBlock,
			BatchSize: defaultBatchSize,
		},
		configDir: dir,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvGatewayURL); v != "" {
		c.Gateway.URL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Listen = v
	}
}
