// Package config reads the service configuration.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration parameters.
type Config struct {
	RunAddress          string `env:"RUN_ADDRESS"`
	DatabaseURI         string `env:"DATABASE_URI"`
	AssistantAPIAddress string `env:"ASSISTANT_API_ADDRESS"`
	AssistantAPIKey     string `env:"ASSISTANT_API_KEY"`
	AssistantModel      string `env:"ASSISTANT_MODEL"`
	AuthSecret          string `env:"AUTH_SECRET"`
}

// Parse reads the configuration from command line flags and environment
// variables. Environment variables take precedence.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envAssistantAddress := cfg.AssistantAPIAddress
	envAssistantModel := cfg.AssistantModel
	envAuthSecret := cfg.AuthSecret

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.AssistantAPIAddress, "r", "generativelanguage.googleapis.com", "assistant API address")
	flag.StringVar(&cfg.AssistantModel, "m", "gemini-3-pro-preview", "assistant model name")
	flag.StringVar(&cfg.AuthSecret, "s", "", "secret key for signing auth cookies")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envAssistantAddress != "" {
		cfg.AssistantAPIAddress = envAssistantAddress
	}
	if envAssistantModel != "" {
		cfg.AssistantModel = envAssistantModel
	}
	if envAuthSecret != "" {
		cfg.AuthSecret = envAuthSecret
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
