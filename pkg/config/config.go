package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// API (reference server)
	API struct {
		Port int    `toml:"port"`
		Host string `toml:"host"`
	} `toml:"api"`

	// CLI
	CLI struct {
		BaseURL        string `toml:"base_url"`        // Link server base URL
		LinksPath      string `toml:"links_path"`      // Collection path of the link resource
		RequestTimeout int    `toml:"request_timeout"` // Seconds; 0 leaves requests unbounded
		LogDir         string `toml:"log_dir"`
		LogLevel       string `toml:"log_level"`
	} `toml:"cli"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.API.Port = 3030
	cfg.API.Host = "127.0.0.1"
	cfg.CLI.BaseURL = "http://localhost:3030"
	cfg.CLI.LinksPath = "/ui/api"
	cfg.CLI.RequestTimeout = 0
	cfg.CLI.LogDir = "tmp"
	cfg.CLI.LogLevel = "info"
	return cfg
}

// Timeout returns the configured request timeout
func (c *Config) Timeout() time.Duration {
	if c.CLI.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.CLI.RequestTimeout) * time.Second
}

// ConfigPath returns the path to the config file. LINK_ADMIN_CONFIG
// overrides the default location.
func ConfigPath() (string, error) {
	if p := os.Getenv("LINK_ADMIN_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "link-admin", "config.toml"), nil
}

// Load reads configuration from the config file, creating it with defaults
// if it doesn't exist, then applies environment overrides. A .env file in
// the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom is Load for an explicit config file path
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveTo(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		applyEnv(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	defaultCfg := DefaultConfig()
	if cfg.API.Port == 0 {
		cfg.API.Port = defaultCfg.API.Port
	}
	if cfg.API.Host == "" {
		cfg.API.Host = defaultCfg.API.Host
	}
	if cfg.CLI.BaseURL == "" {
		cfg.CLI.BaseURL = defaultCfg.CLI.BaseURL
	}
	if cfg.CLI.LinksPath == "" {
		cfg.CLI.LinksPath = defaultCfg.CLI.LinksPath
	}
	if cfg.CLI.LogDir == "" {
		cfg.CLI.LogDir = defaultCfg.CLI.LogDir
	}
	if cfg.CLI.LogLevel == "" {
		cfg.CLI.LogLevel = defaultCfg.CLI.LogLevel
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overrides file values with environment variables if set
func applyEnv(cfg *Config) {
	if v := os.Getenv("LINK_ADMIN_BASE_URL"); v != "" {
		cfg.CLI.BaseURL = v
	}
	if v := os.Getenv("LINK_ADMIN_LINKS_PATH"); v != "" {
		cfg.CLI.LinksPath = v
	}
	if v := os.Getenv("LINK_ADMIN_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.API.Port = port
		}
	}
}

// Save writes the configuration to the config file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to an explicit path
func SaveTo(configPath string, cfg *Config) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
