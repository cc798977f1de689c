package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/rake/pkg/rake/internalerr"
	"github.com/cognicore/rake/pkg/rake/stoplist"
)

// Ranking orders
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// Config holds extraction and CLI/server settings
type Config struct {
	Language      string       `yaml:"language"`
	StopwordsFile string       `yaml:"stopwords_file"`
	Top           int          `yaml:"top"`
	Order         string       `yaml:"order"`
	HTML          bool         `yaml:"html"`
	Workers       int          `yaml:"workers"`
	DB            string       `yaml:"db"`
	Debug         bool         `yaml:"debug"`
	Server        ServerConfig `yaml:"server"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Language: string(stoplist.DefaultLanguage),
		Order:    OrderDesc,
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Order {
	case OrderDesc, OrderAsc:
	default:
		return fmt.Errorf("%w: order %q (want %s or %s)", internalerr.ErrInvalidConfig, c.Order, OrderDesc, OrderAsc)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top must not be negative", internalerr.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", internalerr.ErrInvalidConfig)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d", internalerr.ErrInvalidConfig, c.Server.Port)
	}
	return nil
}

// Stoplist represents a YAML stopword list
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// LoadStopwords reads a stopword override. Files ending in .yaml or .yml
// hold a `terms:` list; anything else is one word per line.
func LoadStopwords(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sl, err := LoadStoplist(path)
		if err != nil {
			return nil, err
		}
		return sl.Terms, nil
	default:
		return stoplist.LoadFile(path)
	}
}
