// Package config provides configuration management.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"visia/internal/errors"
	"visia/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Reference contains reference-data settings
	Reference ReferenceConfig `json:"reference" mapstructure:"reference"`

	// Storage contains result storage settings
	Storage StorageConfig `json:"storage" mapstructure:"storage"`

	// Output contains output settings
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// ReferenceConfig contains reference-data settings
type ReferenceConfig struct {
	// Dir is the directory holding published reference table versions (*.hcl)
	Dir string `json:"dir" mapstructure:"dir"`

	// ActiveVersion pins the table version used for evaluation.
	// Empty means the latest published version.
	ActiveVersion string `json:"active_version" mapstructure:"active_version"`
}

// StorageConfig contains result storage settings
type StorageConfig struct {
	// Dir is the directory for the write-once result store
	Dir string `json:"dir" mapstructure:"dir"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// DefaultFormat is the default report format (text, json, markdown, certificate)
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// ShowComponents includes the per-dimension component breakdown
	ShowComponents bool `json:"show_components" mapstructure:"show_components"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" mapstructure:"addr"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".visia")

	return &Config{
		Version: "1.0",
		Reference: ReferenceConfig{
			Dir:           filepath.Join(baseDir, "reference"),
			ActiveVersion: "",
		},
		Storage: StorageConfig{
			Dir: filepath.Join(baseDir, "results"),
		},
		Output: OutputConfig{
			DefaultFormat:  "text",
			ShowComponents: true,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file with VISIA_* environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VISIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("visia")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".visia"))
		}
	}

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) || os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Config("failed to read config file", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to decode config file", err)
	}

	return cfg, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
