package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"o3profile/pkg/contracts/domain"
)

// ConfigFile is the optional YAML config read from the working directory.
// Environment variables (O3_ prefix) take precedence over it.
const ConfigFile = "o3profile.yml"

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/o3profile.log"`
}

// SecurityConfig contains request-hardening configuration.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"50"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"25"`
}

// PathsConfig contains filesystem paths. Datasets may only be loaded from
// inside DataDir; DefaultDataset is used when a request names no source.
type PathsConfig struct {
	DataDir        string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	DefaultDataset string `yaml:"default_dataset" envconfig:"DEFAULT_DATASET" default:"soot_staqs_ozone.csv"`
	LogsDir        string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// PipelineConfig carries the default profile parameters; every request may
// override them within the validated bounds.
type PipelineConfig struct {
	BinWidth int  `yaml:"bin_width" envconfig:"BIN_WIDTH" default:"50"`
	Window   int  `yaml:"window" envconfig:"WINDOW" default:"11"`
	ShowRaw  bool `yaml:"show_raw" envconfig:"SHOW_RAW" default:"true"`
	ShowBand bool `yaml:"show_band" envconfig:"SHOW_BAND" default:"true"`
}

// Load reads configuration from the optional YAML file, lets environment
// variables override it, then validates the result.
func Load() (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(ConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	}

	if err := envconfig.Process("O3", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Paths.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.Paths.DefaultDataset == "" {
		return fmt.Errorf("default_dataset must not be empty")
	}
	return nil
}

// DefaultParams returns the configured pipeline defaults with the default
// dataset resolved inside the data directory.
func (c *Config) DefaultParams() domain.Params {
	return domain.Params{
		Source:   c.DatasetPath(c.Paths.DefaultDataset),
		BinWidth: c.Pipeline.BinWidth,
		Window:   c.Pipeline.Window,
		ShowRaw:  c.Pipeline.ShowRaw,
		ShowBand: c.Pipeline.ShowBand,
	}
}

// DatasetPath resolves a dataset name inside the data directory. The name is
// reduced to its base so request input cannot traverse out of DataDir.
func (c *Config) DatasetPath(name string) string {
	return filepath.Join(c.Paths.DataDir, filepath.Base(name))
}

// EnsureDirectories creates the data and logs directories if absent.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
