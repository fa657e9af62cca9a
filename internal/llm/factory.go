package llm

import (
	"context"
	"fmt"
	"os"

	"skillscout/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, log store.RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> retry -> timeout -> logging -> base.
	// The deadline sits inside the retry loop so it bounds each attempt.
	logged := WithLogging(base, cfg.Provider, log)
	bounded := WithTimeout(logged, cfg.Timeout)
	retried := WithRetry(bounded, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from SKILLSCOUT_* env vars,
// falling back to probing the standard vendor key vars. The returned
// error is a configuration error; no network call is made here.
func NewProviderFromEnv(ctx context.Context, log store.RequestLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// An explicitly requested provider must validate as-is; discovery
		// would launch a different vendor than the one asked for.
		if os.Getenv("SKILLSCOUT_LLM_PROVIDER") != "" {
			return nil, err
		}
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
