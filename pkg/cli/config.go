package cli

import (
	"fmt"
	"strconv"
	"strings"

	"link-admin/pkg/config"

	"github.com/pelletier/go-toml/v2"
)

// ShowConfig displays the current configuration
func (a *App) ShowConfig() {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error marshaling config: %v\n", err)
		return
	}
	fmt.Fprintln(a.stdout, string(data))
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "cli.base_url=http://localhost:3030")
func (a *App) SetConfig(setStr string) error {
	if err := applySetting(a.cfg, setStr); err != nil {
		return err
	}
	return config.Save(a.cfg)
}

func applySetting(cfg *config.Config, setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]

	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	section := keyPath[0]
	key := keyPath[1]

	switch section {
	case "api":
		switch key {
		case "host":
			cfg.API.Host = value
		case "port":
			port, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid port value: %s", value)
			}
			cfg.API.Port = port
		default:
			return fmt.Errorf("unknown api key: %s", key)
		}
	case "cli":
		switch key {
		case "base_url":
			cfg.CLI.BaseURL = value
		case "links_path":
			cfg.CLI.LinksPath = value
		case "request_timeout":
			timeout, err := strconv.Atoi(value)
			if err != nil || timeout < 0 {
				return fmt.Errorf("invalid request_timeout value: %s", value)
			}
			cfg.CLI.RequestTimeout = timeout
		case "log_dir":
			cfg.CLI.LogDir = value
		case "log_level":
			cfg.CLI.LogLevel = value
		default:
			return fmt.Errorf("unknown cli key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
	return nil
}
