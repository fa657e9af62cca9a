package llm

import (
	"context"
	"strings"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"SKILLSCOUT_LLM_PROVIDER",
		"SKILLSCOUT_OPENAI_API_KEY",
		"SKILLSCOUT_GEMINI_API_KEY",
		"SKILLSCOUT_ANTHROPIC_API_KEY",
		"OPENAI_API_KEY",
		"GEMINI_API_KEY",
		"ANTHROPIC_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func TestNewProviderFromEnv_ExplicitProviderMissingKeyFails(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("SKILLSCOUT_LLM_PROVIDER", "gemini")
	// A discoverable key for a different vendor must not be substituted
	// for the provider the user asked for.
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := NewProviderFromEnv(context.Background(), nil)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !strings.Contains(err.Error(), "GEMINI") {
		t.Fatalf("error should name the requested provider's key, got: %v", err)
	}
}

func TestNewProviderFromEnv_DiscoversWhenUnset(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestNewProviderFromEnv_NothingConfiguredFails(t *testing.T) {
	clearProviderEnv(t)

	_, err := NewProviderFromEnv(context.Background(), nil)
	if err == nil {
		t.Fatal("expected configuration error")
	}
}
