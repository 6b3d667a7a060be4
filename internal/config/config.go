// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or
// environment variables.
type Config struct {
	Env             string `mapstructure:"APP_ENV"`
	StoreDriver     string `mapstructure:"STORE_DRIVER"`
	StorePath       string `mapstructure:"STORE_PATH"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	SeedDemo        bool   `mapstructure:"SEED_DEMO"`
	SeedPreset      string `mapstructure:"SEED_PRESET"`
	TracingEnabled  bool   `mapstructure:"TRACING_ENABLED"`
	TracingExporter string `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint    string `mapstructure:"OTLP_ENDPOINT"`
}

// LoadConfig loads application configuration from file and environment
// variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("required profile-specific config 'config.%s.yml' not found: %w", env, err)
		}
		log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
	}

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_DRIVER", "sqlite")
	viper.SetDefault("STORE_PATH", "lanagram.db")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("SEED_DEMO", false)
	viper.SetDefault("SEED_PRESET", "")
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Validate ensures that required configuration values are present and
// consistent.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "sqlite":
		if c.StorePath == "" {
			return errors.New("STORE_PATH is required when STORE_DRIVER is sqlite")
		}
	case "redis":
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when STORE_DRIVER is redis")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want sqlite or redis)", c.StoreDriver)
	}

	if c.TracingEnabled {
		switch c.TracingExporter {
		case "stdout":
		case "otlp":
			if c.OTLPEndpoint == "" {
				return errors.New("OTLP_ENDPOINT is required when TRACING_EXPORTER is otlp")
			}
		default:
			return fmt.Errorf("unknown TRACING_EXPORTER %q (want stdout or otlp)", c.TracingExporter)
		}
	}
	return nil
}
