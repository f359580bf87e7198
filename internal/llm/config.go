package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderNone       = ""
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// EnvPrefix prefixes every variable ConfigFromEnv reads.
const EnvPrefix = "WEBDEV100_"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend. Empty disables AI hints.
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `yaml:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns a disabled Config with model and retry defaults
// filled in, so only the provider and key need setting.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderNone,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ProviderNone
}

// ConfigFromEnv layers WEBDEV100_LLM_* style variables over base.
func ConfigFromEnv(base Config) Config {
	return configFromLookup(base, os.Getenv)
}

func configFromLookup(cfg Config, getenv func(string) string) Config {
	set := func(dst *string, name string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "LLM_PROVIDER")

	set(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "ANTHROPIC_MODEL")

	set(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "OPENAI_BASE_URL")

	set(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "GEMINI_MODEL")

	set(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "OPENROUTER_MODEL")

	if v := getenv(EnvPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// DiscoverConfig fills in a provider from the standard vendor key
// variables when none was chosen explicitly. Priority is Anthropic,
// OpenAI, Gemini, OpenRouter. It returns false if nothing was found.
func DiscoverConfig(base Config) (Config, bool) {
	return discoverFromLookup(base, os.Getenv)
}

func discoverFromLookup(cfg Config, getenv func(string) string) (Config, bool) {
	if cfg.Enabled() {
		return cfg, true
	}
	candidates := []struct {
		provider string
		env      string
		key      *string
	}{
		{ProviderAnthropic, "ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{ProviderOpenAI, "OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{ProviderGemini, "GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{ProviderOpenRouter, "OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
	}
	for _, c := range candidates {
		if k := getenv(c.env); k != "" {
			cfg.Provider = c.provider
			*c.key = k
			return cfg, true
		}
	}
	return cfg, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", EnvPrefix, name, c.Provider)
	}
	switch c.Provider {
	case ProviderNone, ProviderMock:
		return nil
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("ANTHROPIC")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("OPENAI")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("GEMINI")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing("OPENROUTER")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through so full IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
