// Package config holds the exporter configuration and filesystem paths.
// Configuration is layered: built-in defaults, then an optional config.yaml,
// then ATLAS_-prefixed environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. ATLAS_LOGGING_LEVEL.
const envPrefix = "ATLAS"

// Config is the complete exporter configuration.
type Config struct {
	Logging         LoggingConfig         `yaml:"logging" envconfig:"LOGGING"`
	Paths           PathsConfig           `yaml:"paths" envconfig:"PATHS"`
	Classifications ClassificationsConfig `yaml:"classifications" envconfig:"CLASSIFICATIONS"`
	Database        DatabaseConfig        `yaml:"database" envconfig:"DATABASE"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the filesystem layout. Relative entries are resolved
// against BaseDir, which defaults to the working directory.
type PathsConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR"`
	DownloadsDir string `yaml:"downloads_dir" envconfig:"DOWNLOADS_DIR"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
	ManifestFile string `yaml:"manifest_file" envconfig:"MANIFEST_FILE"`
}

// ClassificationsConfig selects where classification tables are loaded from.
type ClassificationsConfig struct {
	// Source is one of "csv" (directory of per-entity files), "excel"
	// (single workbook) or "postgres" (application database).
	Source   string `yaml:"source" envconfig:"SOURCE" validate:"oneof=csv excel postgres"`
	Dir      string `yaml:"dir" envconfig:"DIR"`
	Workbook string `yaml:"workbook" envconfig:"WORKBOOK"`
}

// DatabaseConfig holds the connection string for the postgres
// classification source.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" envconfig:"DSN"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/downloads.log",
		},
		Paths: PathsConfig{
			DataDir:      "data",
			DownloadsDir: "downloads",
			LogsDir:      "logs",
		},
		Classifications: ClassificationsConfig{
			Source: "csv",
			Dir:    "classifications",
		},
	}
}

// Load builds the configuration from defaults, the first config file found
// and the environment, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := findConfigFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration, including cross-field requirements the
// struct tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch c.Classifications.Source {
	case "excel":
		if c.Classifications.Workbook == "" {
			return fmt.Errorf("classifications.workbook is required for the excel source")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres source")
		}
	}
	return nil
}

// findConfigFile checks the usual locations for a config file.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}
