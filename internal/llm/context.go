package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels recorded with each logged request.
const (
	PurposeRoleSummary  = "role-summary"
	PurposeSkillSummary = "skill-summary"
	PurposeQuestion     = "question"
	PurposeFallback     = "fallback"
)

// WithPurpose attaches an agent-role label to the context for request
// logging ("role-summary", "skill-summary", "question", "fallback").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
