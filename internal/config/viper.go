// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. EXPENSE_LOG_LEVEL.
const EnvPrefix = "EXPENSE"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory      string `mapstructure:"directory" yaml:"directory"`
		TransactionsDB string `mapstructure:"transactions_db" yaml:"transactions_db"`
		MerchantsDB    string `mapstructure:"merchants_db" yaml:"merchants_db"`
		MappingsFile   string `mapstructure:"mappings_file" yaml:"mappings_file"`
	} `mapstructure:"data" yaml:"data"`

	Categorization struct {
		FuzzyThreshold   int  `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
		AutoRecategorize bool `mapstructure:"auto_recategorize" yaml:"auto_recategorize"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Import struct {
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"import" yaml:"import"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from the standard locations, then environment.
func InitializeConfig() (*Config, error) {
	return load("")
}

// InitializeConfigFromFile is InitializeConfig with an explicit config file.
// A missing explicit file is an error.
func InitializeConfigFromFile(path string) (*Config, error) {
	return load(path)
}

func load(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-tracker")
		v.AddConfigPath(".expense-tracker")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	v.SetDefault("data.directory", "")
	v.SetDefault("data.transactions_db", "transactions.db")
	v.SetDefault("data.merchants_db", "merchant_categories.db")
	v.SetDefault("data.mappings_file", "merchants.yaml")

	// Categorization defaults
	v.SetDefault("categorization.fuzzy_threshold", 90)
	v.SetDefault("categorization.auto_recategorize", true)

	// Import defaults
	v.SetDefault("import.date_format", "2006-01-02")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Categorization.FuzzyThreshold < 0 || config.Categorization.FuzzyThreshold > 100 {
		return fmt.Errorf("categorization.fuzzy_threshold must be between 0 and 100, got: %d", config.Categorization.FuzzyThreshold)
	}

	if strings.TrimSpace(config.Data.TransactionsDB) == "" {
		return fmt.Errorf("data.transactions_db cannot be empty")
	}
	if strings.TrimSpace(config.Data.MerchantsDB) == "" {
		return fmt.Errorf("data.merchants_db cannot be empty")
	}

	if strings.TrimSpace(config.Import.DateFormat) == "" {
		return fmt.Errorf("import.date_format cannot be empty")
	}

	return nil
}

// DataDirectory returns the configured data directory, defaulting to
// $HOME/.expense-tracker.
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".expense-tracker"
	}
	return filepath.Join(home, ".expense-tracker")
}

// TransactionsPath is the ledger database location.
func (c *Config) TransactionsPath() string {
	return c.resolve(c.Data.TransactionsDB)
}

// MerchantsPath is the merchant directory database location.
func (c *Config) MerchantsPath() string {
	return c.resolve(c.Data.MerchantsDB)
}

// MappingsPath is the default YAML file for merchant import/export.
func (c *Config) MappingsPath() string {
	return c.resolve(c.Data.MappingsFile)
}

// resolve places relative names under the data directory. Absolute paths
// and the in-memory DSN are returned as is.
func (c *Config) resolve(name string) string {
	if name == ":memory:" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDirectory(), name)
}
