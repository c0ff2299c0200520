package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winbridge/internal/platform"
	"github.com/1broseidon/winbridge/internal/runtimepath"
)

const DefaultContentPort = 8080

// LoggingConfig configures controller logging.
type LoggingConfig struct {
	// Level controls verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
}

// Config is the controller configuration.
type Config struct {
	// Socket is the UI host's event socket path.
	// Default: <runtime dir>/winbridge-host.sock
	Socket string `yaml:"socket,omitempty"`

	// ContentPort is the port of the local content server that relative
	// load targets resolve against (http://127.0.0.1:<port>/).
	ContentPort int `yaml:"content_port,omitempty"`

	// HostPlatform identifies the platform the UI host runs on. Leave unset
	// to disable platform-specific geometry handling.
	HostPlatform platform.Info `yaml:"host_platform,omitempty"`

	// QuitOnAllClosed is forwarded to the host at startup: whether the host
	// process should exit once its last window closes. Default: true
	QuitOnAllClosed *bool `yaml:"quit_on_all_closed,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	quit := true
	return &Config{
		ContentPort:     DefaultContentPort,
		QuitOnAllClosed: &quit,
		Logging:         LoggingConfig{Level: "info"},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winbridge", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from a specific file. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ContentPort == 0 {
		cfg.ContentPort = DefaultContentPort
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.ContentPort < 1 || c.ContentPort > 65535 {
		return fmt.Errorf("content_port %d out of range", c.ContentPort)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}

// SocketPath resolves the host socket path, falling back to the runtime
// directory default when not configured.
func (c *Config) SocketPath() (string, error) {
	if c.Socket != "" {
		return c.Socket, nil
	}
	return runtimepath.SocketPath()
}
