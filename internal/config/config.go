package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/polybox/internal/poly"
)

const (
	DefaultNotation      = "superscript"
	DefaultDegreeCeiling = 6
	DefaultMaxDegree     = 12
	DefaultTheme         = "classic"
	DefaultDataDir       = "sessions"
	DefaultLogLevel      = "info"
	DefaultAddr          = "127.0.0.1:8080"
	DefaultRateLimit     = 10.0
	DefaultBurst         = 20
	DefaultMaxBodyBytes  = 64 << 10
)

var (
	ErrInvalidNotation = errors.New("config: notation must be caret or superscript")
	ErrInvalidCeiling  = errors.New("config: degree_ceiling must be positive")
	ErrInvalidDegree   = errors.New("config: max_degree out of range")
	ErrInvalidLogLevel = errors.New("config: log_level must be debug, info, warn or error")
	ErrInvalidServer   = errors.New("config: server limits must be positive")
)

type Config struct {
	Notation      string       `yaml:"notation"`
	DegreeCeiling int          `yaml:"degree_ceiling"`
	MaxDegree     int          `yaml:"max_degree"`
	Theme         string       `yaml:"theme"`
	DataDir       string       `yaml:"data_dir"`
	LogLevel      string       `yaml:"log_level"`
	Server        ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Addr         string  `yaml:"addr"`
	RateLimit    float64 `yaml:"rate_limit"`
	Burst        int     `yaml:"burst"`
	MaxBodyBytes int64   `yaml:"max_body_bytes"`
}

func DefaultConfig() *Config {
	return &Config{
		Notation:      DefaultNotation,
		DegreeCeiling: DefaultDegreeCeiling,
		MaxDegree:     DefaultMaxDegree,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
		LogLevel:      DefaultLogLevel,
		Server: ServerConfig{
			Addr:         DefaultAddr,
			RateLimit:    DefaultRateLimit,
			Burst:        DefaultBurst,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Notation) {
	case "caret", "superscript":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNotation, c.Notation)
	}
	if c.DegreeCeiling <= 0 {
		return ErrInvalidCeiling
	}
	if c.MaxDegree <= 0 || c.MaxDegree > poly.MaxExponent {
		return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidDegree, c.MaxDegree, poly.MaxExponent)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Server.RateLimit <= 0 || c.Server.Burst <= 0 || c.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServer
	}
	return nil
}
