package llm

import "testing"

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected configuration error for missing key")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "watson"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SKILLSCOUT_LLM_PROVIDER", "gemini")
	t.Setenv("SKILLSCOUT_GEMINI_API_KEY", "test-key")
	t.Setenv("SKILLSCOUT_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Fatalf("api key = %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-pro" {
		t.Fatalf("model = %q", cfg.Gemini.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("got %q", got)
	}
	// Unknown names pass through as direct model IDs.
	if got := resolveModel("gemini-9.9-experimental", geminiModels); got != "gemini-9.9-experimental" {
		t.Fatalf("got %q", got)
	}
}
