package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL, when set, points the client at an OpenAI-compatible API.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig is the baseline every other config source starts from.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays FOCUSDECK_* environment variables onto the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	overlay(&cfg.Provider, "FOCUSDECK_LLM_PROVIDER")
	overlay(&cfg.Anthropic.APIKey, "FOCUSDECK_ANTHROPIC_API_KEY")
	overlay(&cfg.Anthropic.Model, "FOCUSDECK_ANTHROPIC_MODEL")
	overlay(&cfg.OpenAI.APIKey, "FOCUSDECK_OPENAI_API_KEY")
	overlay(&cfg.OpenAI.Model, "FOCUSDECK_OPENAI_MODEL")
	overlay(&cfg.OpenAI.BaseURL, "FOCUSDECK_OPENAI_BASE_URL")
	overlay(&cfg.Gemini.APIKey, "FOCUSDECK_GEMINI_API_KEY")
	overlay(&cfg.Gemini.Model, "FOCUSDECK_GEMINI_MODEL")
	overlay(&cfg.OpenRouter.APIKey, "FOCUSDECK_OPENROUTER_API_KEY")
	overlay(&cfg.OpenRouter.Model, "FOCUSDECK_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the standard provider key variables, in the
// order Gemini, OpenAI, Anthropic, OpenRouter, and configures the first
// provider whose key is present. The second return is false when no key
// is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider, cfg.Gemini.APIKey = "gemini", k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenAI.APIKey = "openai", k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider, cfg.Anthropic.APIKey = "anthropic", k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenRouter.APIKey = "openrouter", k
		return cfg, true
	}
	return Config{}, false
}

// Validate checks the selected provider has the key it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("FOCUSDECK_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("FOCUSDECK_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("FOCUSDECK_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("FOCUSDECK_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// resolveModel maps a friendly alias to a concrete model ID, passing
// unrecognized names through so exact IDs work too.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
