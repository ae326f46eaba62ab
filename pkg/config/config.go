package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/portal/config"
	ConfigFileName    = "portal.yml"
)

// Config holds the portal configuration settings this core consumes.
type Config struct {
	// SuperAdmins is the allowlist of user identifiers that bypass all role
	// checks for defined permissions.
	SuperAdmins []string `yaml:"super_admins" json:"super_admins"`
}

// FilePath returns the config file path derived from the environment.
func FilePath() string {
	configPath := os.Getenv("PORTAL_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return filepath.Join(configPath, ConfigFileName)
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values. A missing config
// file is not an error; the result is then driven by the environment alone.
func Load() (*Config, error) {
	config := &Config{}

	if data, err := os.ReadFile(FilePath()); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", FilePath(), err)
		}
	}

	if admins := os.Getenv("PORTAL_SUPER_ADMINS"); admins != "" {
		config.SuperAdmins = splitList(admins)
	}

	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
