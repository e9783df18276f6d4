package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/scribe"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port     string
	LogLevel string // debug, info, warn, error

	// Provider selection
	Provider string
	Model    string

	// API keys
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string

	// Research run config
	MaxSteps int
	SavePath string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:         getEnvOrDefault("SCRIBE_PORT", "8000"),
		LogLevel:     getEnvOrDefault("SCRIBE_LOG_LEVEL", "info"),
		Provider:     getEnvOrDefault("SCRIBE_PROVIDER", "google"),
		Model:        os.Getenv("SCRIBE_MODEL"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		GoogleKey:    os.Getenv("GOOGLE_API_KEY"),
		MaxSteps:     getEnvIntOrDefault("SCRIBE_MAX_STEPS", 8),
		SavePath:     getEnvOrDefault("SCRIBE_SAVE_PATH", "research_output.txt"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	case "google":
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be anthropic, openai, or google)", c.Provider)
	}

	return nil
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	switch scribe.Provider(c.Provider) {
	case scribe.ProviderAnthropic:
		return c.AnthropicKey
	case scribe.ProviderOpenAI:
		return c.OpenAIKey
	default:
		return c.GoogleKey
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
