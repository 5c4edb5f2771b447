package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Dest      string `yaml:"dest"`
	UserAgent string `yaml:"user_agent"`
	Catalog   string `yaml:"catalog"`
	Debug     bool   `yaml:"debug"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool
	Dest         string
	UserAgent    string
	Catalog      string
}

func DefaultConfig() *Config {
	return &Config{
		Dest:      ".",
		UserAgent: "",
		Catalog:   "",
		Debug:     false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged loads the config file if present and overlays CLI flag values
// on top of it. Missing file is not an error: defaults apply.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	path := File()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "", nil
	}

	cfg, err := loadYAML(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, path, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Dest != "" {
		c.Dest = o.Dest
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Catalog != "" {
		c.Catalog = o.Catalog
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	if c.Dest == "" {
		c.Dest = "."
	}
	if c.Catalog == "" {
		c.Catalog = CatalogPath()
	}
}

func (c *Config) Print() {
	fmt.Printf(" -dest: %s\n", c.Dest)
	fmt.Printf(" -catalog: %s\n", c.Catalog)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
