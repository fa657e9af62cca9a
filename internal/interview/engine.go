package interview

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"skillscout/internal/agents"
	"skillscout/internal/profile"
	"skillscout/internal/skills"
	"skillscout/internal/store"
)

// Role identifies the author of an Event.
type Role string

const RoleAssistant Role = "assistant"

// Event is one assistant turn produced by a step. The presentation
// layer renders events in order and never feeds state back.
type Event struct {
	Role    Role
	Content string
}

// Engine advances sessions through the interview. It holds the agent
// gateway and the candidate store; all per-conversation state lives in
// the Session.
type Engine struct {
	agents     *agents.Service
	candidates store.CandidateRepo
}

// NewEngine creates an interview engine.
func NewEngine(svc *agents.Service, candidates store.CandidateRepo) *Engine {
	return &Engine{agents: svc, candidates: candidates}
}

// Start emits the opening turns for a fresh session: the greeting and
// the first profile field prompt.
func (e *Engine) Start(s *Session) []Event {
	return []Event{
		assistant(greetingMessage),
		assistant(s.Collector.Prompt()),
	}
}

// Step processes one candidate input and returns the assistant turns it
// produces. Exit keywords end the session from any phase; otherwise the
// input is dispatched to the current phase handler.
func (e *Engine) Step(ctx context.Context, s *Session, input string) []Event {
	input = strings.TrimSpace(input)

	if s.Phase == PhaseEnded {
		return []Event{assistant(endedMessage)}
	}

	if containsAnyKeyword(input, exitKeywords) {
		s.Phase = PhaseEnded
		return []Event{assistant(completionMessage(s.Profile().FirstName(), false))}
	}

	switch s.Phase {
	case PhaseCollecting:
		return e.stepCollecting(ctx, s, input)
	case PhaseAwaitingConsent:
		return e.stepConsent(ctx, s, input)
	case PhaseScreening:
		return e.stepScreening(ctx, s, input)
	}

	// Unknown phase: hand the input to the guardrail agent.
	reply, err := e.agents.FallbackResponse(ctx, agents.FallbackInput{
		UserMessage: input,
		Phase:       string(s.Phase),
	})
	if err != nil {
		reply = fallbackErrorMessage
	}
	return []Event{assistant(reply)}
}

func (e *Engine) stepCollecting(ctx context.Context, s *Session, input string) []Event {
	out := s.Collector.Submit(input)
	if !out.Accepted {
		return []Event{assistant(out.Corrective)}
	}

	var events []Event
	if out.Ack != "" {
		events = append(events, assistant(out.Ack))
	}

	if !out.Done {
		return append(events, assistant(s.Collector.Prompt()))
	}

	// Terminal field accepted: derive the screening inputs and move to
	// the consent gate.
	p := s.Profile()
	s.Categories = skills.CategorizeStack(p.TechStack)
	s.CategoryOrder = skills.CategoryOrder(s.Categories)
	s.Seniority = profile.Seniority(p.YearsExperience)

	roleSummary, err := e.agents.RoleSummary(ctx, agents.RoleSummaryInput{
		DesiredPositions: p.DesiredPositions,
		YearsExperience:  strconv.Itoa(p.YearsExperience),
	})
	if err != nil {
		roleSummary = ""
	}
	s.RoleSummary = roleSummary

	skillSummary, err := e.agents.SkillSummary(ctx, p.TechStack)
	if err != nil {
		skillSummary = ""
	}
	s.SkillSummary = skillSummary

	s.Phase = PhaseAwaitingConsent
	return append(events, assistant(consentPromptMessage))
}

func (e *Engine) stepConsent(ctx context.Context, s *Session, input string) []Event {
	answer := strings.ToLower(input)

	switch {
	case containsAny(answer, consentYesKeywords):
		s.Consent = ConsentGranted
		// Persistence failures are operational, never shown to the
		// candidate; the flow proceeds as if the record was stored.
		if err := e.persistCandidate(ctx, s); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to store candidate profile: %v\n", err)
		}
		events := []Event{assistant(consentGrantedMessage)}
		return append(events, e.beginScreening(ctx, s)...)

	case containsAny(answer, consentNoKeywords):
		s.Consent = ConsentDenied
		events := []Event{assistant(consentDeniedMessage)}
		return append(events, e.beginScreening(ctx, s)...)

	default:
		return []Event{assistant(consentRepromptMessage)}
	}
}

func (e *Engine) beginScreening(ctx context.Context, s *Session) []Event {
	s.Phase = PhaseScreening
	s.initScreening()
	return e.askNextQuestion(ctx, s)
}

func (e *Engine) stepScreening(ctx context.Context, s *Session, input string) []Event {
	cat, ok := s.currentCategory()
	if !ok {
		s.Phase = PhaseEnded
		return []Event{assistant(completionMessage(s.Profile().FirstName(), false))}
	}

	s.Answers[cat] = append(s.Answers[cat], input)
	s.AwaitingFollowup = true
	s.LastCategoryAnswered = cat

	var events []Event
	switch total := s.TotalAnswers(); {
	case total == 1:
		events = append(events, assistant(firstAnswerAck))
	case total%5 == 0:
		events = append(events, assistant(periodicAnswerAck))
	}

	return append(events, e.askNextQuestion(ctx, s)...)
}

// askNextQuestion picks the next category and materializes one question.
// Follow-ups always win over load balancing; otherwise the scan walks
// forward circularly from the rotation pointer to the first category
// with the fewest questions asked.
func (e *Engine) askNextQuestion(ctx context.Context, s *Session) []Event {
	if s.TotalQuestionsAsked >= MaxTotalQuestions {
		s.Phase = PhaseEnded
		return []Event{assistant(completionMessage(s.Profile().FirstName(), true))}
	}
	if len(s.CategoryOrder) == 0 {
		s.Phase = PhaseEnded
		return []Event{assistant(completionMessage(s.Profile().FirstName(), false))}
	}

	var category string
	if s.AwaitingFollowup && s.LastCategoryAnswered != "" {
		category = s.LastCategoryAnswered
		s.AwaitingFollowup = false
	} else {
		minCount := -1
		for _, cat := range s.CategoryOrder {
			if n := len(s.AskedQuestions[cat]); minCount < 0 || n < minCount {
				minCount = n
			}
		}
		n := len(s.CategoryOrder)
		selected := 0
		for offset := 0; offset < n; offset++ {
			idx := (s.CurrentCategoryIndex + offset) % n
			if len(s.AskedQuestions[s.CategoryOrder[idx]]) == minCount {
				selected = idx
				break
			}
		}
		s.CurrentCategoryIndex = selected
		category = s.CategoryOrder[selected]
	}

	question := e.materializeQuestion(ctx, s, category)

	s.AskedQuestions[category] = append(s.AskedQuestions[category], question)
	s.TotalQuestionsAsked++

	return []Event{assistant(question)}
}

func (e *Engine) materializeQuestion(ctx context.Context, s *Session, category string) string {
	asked := s.AskedQuestions[category]
	answers := s.Answers[category]

	recentQuestions := asked
	if len(recentQuestions) > maxQuestionHistory {
		recentQuestions = recentQuestions[len(recentQuestions)-maxQuestionHistory:]
	}
	recentAnswers := answers
	if len(recentAnswers) > maxAnswerHistory {
		recentAnswers = recentAnswers[len(recentAnswers)-maxAnswerHistory:]
	}
	lastAnswer := ""
	if len(answers) > 0 {
		lastAnswer = answers[len(answers)-1]
	}

	p := s.Profile()
	question, err := e.agents.CategoryQuestion(ctx, agents.QuestionInput{
		FullName:        p.FullName,
		YearsExperience: p.YearsExperience,
		Seniority:       s.Seniority,
		RoleSummary:     s.RoleSummary,
		Category:        category,
		Skills:          s.Categories[category],
		QuestionNumber:  len(asked) + 1,
		RecentQuestions: recentQuestions,
		RecentAnswers:   recentAnswers,
		LastAnswer:      lastAnswer,
	})
	if err != nil {
		return placeholderQuestion
	}
	return question
}

func (e *Engine) persistCandidate(ctx context.Context, s *Session) error {
	p := s.Profile()
	return e.candidates.Append(ctx, store.Candidate{
		SessionID:        s.ID,
		FullName:         p.FullName,
		Email:            p.Email,
		Phone:            p.Phone,
		YearsExperience:  p.YearsExperience,
		DesiredPositions: p.DesiredPositions,
		CurrentLocation:  p.CurrentLocation,
		TechStack:        p.TechStack,
		RoleSummary:      s.RoleSummary,
		SkillSummary:     s.SkillSummary,
		Seniority:        s.Seniority,
		Categories:       s.Categories,
	})
}

func assistant(content string) Event {
	return Event{Role: RoleAssistant, Content: content}
}

// containsAnyKeyword lowercases the input and reports whether any
// keyword appears as a substring.
func containsAnyKeyword(input string, keywords []string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(input)), keywords)
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
