package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TenantConfig represents a pre-configured tenant in the config file.
type TenantConfig struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Token    string `yaml:"token"`
	Role     string `yaml:"role"` // "source" or "destination"
	Insecure bool   `yaml:"insecure"`
	CACert   string `yaml:"ca_cert"`
}

// Config holds the serve-mode configuration file contents. CLI flags
// take precedence over config file values.
type Config struct {
	Listen  string         `yaml:"listen"`
	Tenants []TenantConfig `yaml:"tenants"`
}

// Load reads a YAML config file. A missing path yields an empty config.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
