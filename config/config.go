// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"

	"github.com/hupe1980/careermentor/logging"
	"github.com/hupe1980/careermentor/model"
	anthropicmodel "github.com/hupe1980/careermentor/model/anthropic"
	openaimodel "github.com/hupe1980/careermentor/model/openai"
)

// Supported model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrMissingCredential is returned by Load when the API key for the selected
// provider is not set.
var ErrMissingCredential = errors.New("missing API credential")

// Config aggregates all service settings.
type Config struct {
	Server  ServerConfig
	Model   ModelConfig
	Log     LogConfig
	Session SessionConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
	// AllowedOrigins are cross-origin pages allowed to open the chat socket.
	AllowedOrigins []string
}

// ModelConfig selects and configures the LLM backend.
type ModelConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  logging.LogLevel
	Format string
}

// SessionConfig tunes per-conversation behaviour.
type SessionConfig struct {
	MaxTurns      int
	StickyHandoff bool
	Tracing       bool
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding values already present in the environment.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	mdl, err := loadModelConfig()
	if err != nil {
		return nil, err
	}

	lg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	sess, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Model: mdl, Log: lg, Session: sess}, nil
}

func loadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{AllowedOrigins: parseListEnv("CAREER_ALLOWED_ORIGINS")}

	if addr := strings.TrimSpace(os.Getenv("CAREER_ADDR")); addr != "" {
		cfg.Addr = addr
		return cfg, nil
	}

	port := getEnvOrDefault("PORT", "8080")

	if strings.Contains(port, ":") {
		cfg.Addr = port
		return cfg, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	cfg.Addr = ":" + port

	return cfg, nil
}

func loadModelConfig() (ModelConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("CAREER_PROVIDER", ProviderOpenAI))

	cfg := ModelConfig{
		Provider: provider,
		BaseURL:  strings.TrimSpace(os.Getenv("CAREER_BASE_URL")),
		Model:    strings.TrimSpace(os.Getenv("CAREER_MODEL")),
	}

	var keyVar string

	switch provider {
	case ProviderOpenAI:
		keyVar = "GEMINI_API_KEY"
		if cfg.BaseURL == "" {
			cfg.BaseURL = openaimodel.DefaultBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = openaimodel.DefaultModel
		}
	case ProviderAnthropic:
		keyVar = "ANTHROPIC_API_KEY"
	default:
		return ModelConfig{}, fmt.Errorf("invalid CAREER_PROVIDER value %q", provider)
	}

	cfg.APIKey = strings.TrimSpace(os.Getenv(keyVar))
	if cfg.APIKey == "" {
		return ModelConfig{}, fmt.Errorf("%w: %s is not set", ErrMissingCredential, keyVar)
	}

	return cfg, nil
}

func loadLogConfig() (LogConfig, error) {
	level, err := logging.ParseLogLevel(getEnvOrDefault("CAREER_LOG_LEVEL", "info"))
	if err != nil {
		return LogConfig{}, fmt.Errorf("invalid CAREER_LOG_LEVEL: %w", err)
	}

	format := strings.ToLower(getEnvOrDefault("CAREER_LOG_FORMAT", "json"))
	switch format {
	case "json", "text", "console":
	default:
		return LogConfig{}, fmt.Errorf("invalid CAREER_LOG_FORMAT value %q", format)
	}

	return LogConfig{Level: level, Format: format}, nil
}

func loadSessionConfig() (SessionConfig, error) {
	var cfg SessionConfig

	maxTurns, err := parseOptionalIntEnv("CAREER_MAX_TURNS")
	if err != nil {
		return cfg, err
	}
	if maxTurns != nil {
		if *maxTurns < 1 {
			return cfg, fmt.Errorf("invalid CAREER_MAX_TURNS value %d: must be positive", *maxTurns)
		}
		cfg.MaxTurns = *maxTurns
	}

	if cfg.StickyHandoff, err = parseBoolEnv("CAREER_STICKY_HANDOFF", false); err != nil {
		return cfg, err
	}

	if cfg.Tracing, err = parseBoolEnv("CAREER_TRACING", false); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// NewModel builds the model client for the configured provider.
func (c ModelConfig) NewModel() model.Model {
	if c.Provider == ProviderAnthropic {
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			o.APIKey = c.APIKey
			if c.BaseURL != "" {
				o.BaseURL = c.BaseURL
			}
			if c.Model != "" {
				o.Model = anthropic.Model(c.Model)
			}
		})
	}

	return openaimodel.NewModel(func(o *openaimodel.Options) {
		o.APIKey = c.APIKey
		o.BaseURL = c.BaseURL
		o.Model = c.Model
	})
}

// NewLogger builds the structured logger described by c.
func (c LogConfig) NewLogger() logging.Logger {
	return logging.New(&logging.Config{Level: c.Level, Format: c.Format, Output: os.Stderr})
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseListEnv(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
