package llm

import "context"

// Provider is the core abstraction for LLM interaction. All agent roles
// in SkillScout exchange plain text, so Generate returns prose rather
// than structured output.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider defaults to.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation context. For SkillScout's agents this
	// is a single user message carrying the explicit short-term memory.
	Messages []Message

	// Model overrides the provider's configured model for this request.
	// Empty means use the provider default. Agent roles use different
	// models; that difference is configuration, not behavior.
	Model string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the LLM's output.
type Response struct {
	// Content is the generated text, trimmed of surrounding whitespace.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
