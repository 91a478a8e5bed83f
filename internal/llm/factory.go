package llm

import (
	"context"
	"fmt"

	"focusdeck/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from the environment. Explicit
// FOCUSDECK_* variables take precedence; otherwise standard provider API
// key variables are probed in priority order.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	explicit := cfg.Provider != DefaultConfig().Provider || anyKeySet(cfg)
	if !explicit {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM API key found: set FOCUSDECK_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewProvider(ctx, cfg, eventRepo)
}

func anyKeySet(cfg Config) bool {
	return cfg.Anthropic.APIKey != "" ||
		cfg.OpenAI.APIKey != "" ||
		cfg.Gemini.APIKey != "" ||
		cfg.OpenRouter.APIKey != ""
}
