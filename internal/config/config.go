// Package config provides configuration management for the azenv CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config structs.
// Configuration sources are resolved in this order:
// command-line arguments > env > defaults file > built-in defaults.
// Argument precedence is applied later, by naming.Resolve.
package config

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"
)

// DefaultEnvironment and DefaultLocation are the built-in fallbacks used
// when neither the defaults file nor the command line supplies a value.
const (
	DefaultEnvironment = "prod"
	DefaultLocation    = "eastus2"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Config is the explicit configuration struct
// This is what the rest of the codebase sees
type Config struct {
	ProjectName    string
	Environment    string
	Location       string
	SubscriptionID string
}

// Init initializes viper with defaults and the optional .azenv defaults file
func Init() error {
	// The defaults file is a plain key=value file named .azenv
	viper.SetConfigName(".azenv")
	viper.SetConfigType("env")

	// Add defaults file search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.azenv")

	// Set defaults
	viper.SetDefault("project_name", "")
	viper.SetDefault("environment", DefaultEnvironment)
	viper.SetDefault("location", DefaultLocation)
	viper.SetDefault("subscription_id", "")

	// Bind environment variables with prefix
	viper.SetEnvPrefix("AZENV")
	viper.AutomaticEnv()

	// Read defaults file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read defaults file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns explicit Config
func Load() (*Config, error) {
	cfg := &Config{
		ProjectName:    viper.GetString("project_name"),
		Environment:    viper.GetString("environment"),
		Location:       viper.GetString("location"),
		SubscriptionID: viper.GetString("subscription_id"),
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane. ProjectName and SubscriptionID may be
// empty here; the project can still arrive as a command-line argument and
// the subscription is only required once a provider client is built.
func (c *Config) Validate() error {
	if !namePattern.MatchString(c.Environment) {
		return fmt.Errorf("invalid environment: %q (must be lowercase letters, digits, and hyphens)", c.Environment)
	}

	if !namePattern.MatchString(c.Location) {
		return fmt.Errorf("invalid location: %q (must be lowercase letters, digits, and hyphens)", c.Location)
	}

	if c.ProjectName != "" && !namePattern.MatchString(c.ProjectName) {
		return fmt.Errorf("invalid project name: %q (must be lowercase letters, digits, and hyphens)", c.ProjectName)
	}

	return nil
}
