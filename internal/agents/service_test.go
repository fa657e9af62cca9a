package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skillscout/internal/llm"
)

func TestRoleSummaryUsesRoleConfig(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "The candidate is a senior backend engineer targeting platform roles.",
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.RoleSummary(context.Background(), RoleSummaryInput{
		DesiredPositions: "Backend Engineer, Platform Engineer",
		YearsExperience:  "8",
	})
	if err != nil {
		t.Fatalf("role summary: %v", err)
	}
	if !strings.Contains(got, "senior backend engineer") {
		t.Errorf("unexpected summary: %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", req.Temperature)
	}
	if !strings.Contains(req.Messages[0].Content, "Backend Engineer, Platform Engineer") {
		t.Errorf("user message missing positions: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.System, "role-understanding assistant") {
		t.Errorf("wrong system prompt: %q", req.System)
	}
}

func TestSkillSummaryTrimsWhitespace(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "  Proficient in Python, Django, and PostgreSQL.\n",
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.SkillSummary(context.Background(), "python, django, postgres")
	if err != nil {
		t.Fatalf("skill summary: %v", err)
	}
	if got != "Proficient in Python, Django, and PostgreSQL." {
		t.Errorf("expected trimmed summary, got %q", got)
	}
}

func TestCategoryQuestionPromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "How would you tune a slow PostgreSQL query in production?",
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.CategoryQuestion(context.Background(), QuestionInput{
		FullName:        "Ada Lovelace",
		YearsExperience: 8,
		Seniority:       "Senior",
		RoleSummary:     "Senior backend engineer.",
		Category:        "Databases",
		Skills:          []string{"PostgreSQL", "Redis"},
		QuestionNumber:  4,
		RecentQuestions: []string{"What is an index?"},
		RecentAnswers:   []string{"An index speeds up lookups."},
		LastAnswer:      "An index speeds up lookups.",
	})
	if err != nil {
		t.Fatalf("category question: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Ada Lovelace",
		"Seniority level: Senior",
		"Category: Databases",
		"PostgreSQL, Redis",
		"question number 4",
		"What is an index?",
		"MOST RECENT ANSWER",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Temperature != 0.35 {
		t.Errorf("temperature = %v, want 0.35", mock.Calls[0].Temperature)
	}
}

func TestCategoryQuestionEmptySkills(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Tell me about a recent project."})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.CategoryQuestion(context.Background(), QuestionInput{
		Category:       "Other",
		QuestionNumber: 1,
	})
	if err != nil {
		t.Fatalf("category question: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "(no skills listed)") {
		t.Errorf("prompt missing empty-skills placeholder: %q", prompt)
	}
	if !strings.Contains(prompt, "Name: (not provided)") {
		t.Errorf("prompt missing name placeholder: %q", prompt)
	}
}

func TestFallbackResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "I hear you. This is a technical screening, so please answer the current question, or type exit to finish.",
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.FallbackResponse(context.Background(), FallbackInput{
		UserMessage: "what's the weather like?",
		Phase:       "screening",
	})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if got == "" {
		t.Fatal("expected non-empty fallback text")
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "screening") || !strings.Contains(prompt, "weather") {
		t.Errorf("prompt missing state or message: %q", prompt)
	}
}

func TestEmptyCompletionIsInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "   \n"})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.SkillSummary(context.Background(), "go")
	if err == nil {
		t.Fatal("expected error for empty completion")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.RoleSummary(context.Background(), RoleSummaryInput{
		DesiredPositions: "SRE",
		YearsExperience:  "3",
	})
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestPerRoleModelOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Question.Model = "gpt-4o"

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "Q"},
		llm.MockResponse{Content: "S"},
	)
	svc := NewService(mock, cfg)

	if _, err := svc.CategoryQuestion(context.Background(), QuestionInput{
		Category: "Backend", QuestionNumber: 1,
	}); err != nil {
		t.Fatalf("category question: %v", err)
	}
	if _, err := svc.SkillSummary(context.Background(), "go"); err != nil {
		t.Fatalf("skill summary: %v", err)
	}

	if mock.Calls[0].Model != "gpt-4o" {
		t.Errorf("question model = %q, want override", mock.Calls[0].Model)
	}
	if mock.Calls[1].Model != "" {
		t.Errorf("summary model = %q, want provider default", mock.Calls[1].Model)
	}
}
