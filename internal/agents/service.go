// Package agents implements the four LLM roles behind the screening
// conversation: role summaries, skill summaries, technical questions,
// and the fallback guardrail. The LLM is stateless; every call carries
// its full context in the prompt.
package agents

import (
	"context"
	"fmt"
	"strings"

	"skillscout/internal/llm"
)

// RoleSummaryInput feeds the role-understanding agent. YearsExperience
// is passed as the candidate typed it, not the parsed value, so the
// model sees phrasing like "about 5 years".
type RoleSummaryInput struct {
	DesiredPositions string
	YearsExperience  string
}

// QuestionInput is the explicit short-term memory for one question.
type QuestionInput struct {
	FullName        string
	YearsExperience int
	Seniority       string
	RoleSummary     string

	Category string
	Skills   []string

	// QuestionNumber is 1-based within the category.
	QuestionNumber int

	RecentQuestions []string
	RecentAnswers   []string

	// LastAnswer, when non-empty, asks the model to follow up on it.
	LastAnswer string
}

// FallbackInput feeds the guardrail agent.
type FallbackInput struct {
	UserMessage string
	Phase       string
}

// Service runs the agent roles against a single provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an agent service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RoleSummary produces the one-sentence recruiter summary of the
// candidate's desired roles and seniority.
func (s *Service) RoleSummary(ctx context.Context, input RoleSummaryInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRoleSummary)
	return s.generate(ctx, s.cfg.RoleSummary,
		roleSummarySystemPrompt, buildRoleSummaryUserMessage(input))
}

// SkillSummary produces the one-sentence summary of a raw tech stack.
func (s *Service) SkillSummary(ctx context.Context, rawTechStack string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSkillSummary)
	return s.generate(ctx, s.cfg.SkillSummary,
		skillSummarySystemPrompt, buildSkillSummaryUserMessage(rawTechStack))
}

// CategoryQuestion produces one technical question for the given
// category, constrained by the recent-question/answer windows.
func (s *Service) CategoryQuestion(ctx context.Context, input QuestionInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestion)
	return s.generate(ctx, s.cfg.Question,
		questionSystemPrompt, buildQuestionUserMessage(input))
}

// FallbackResponse produces a polite redirect for off-topic input.
func (s *Service) FallbackResponse(ctx context.Context, input FallbackInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFallback)
	return s.generate(ctx, s.cfg.Fallback,
		fallbackSystemPrompt, buildFallbackUserMessage(input))
}

func (s *Service) generate(ctx context.Context, rc RoleConfig, system, user string) (string, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Model:       rc.Model,
		MaxTokens:   rc.MaxTokens,
		Temperature: rc.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("agent generation: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content,
			Err: fmt.Errorf("empty completion")}
	}
	return text, nil
}
