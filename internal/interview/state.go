// Package interview runs the screening conversation: field collection,
// the consent gate, and the question scheduler with its global cap.
package interview

import (
	"github.com/google/uuid"

	"skillscout/internal/profile"
	"skillscout/internal/skills"
)

// MaxTotalQuestions is the global hard cap on technical questions per
// session, counting follow-ups.
const MaxTotalQuestions = 15

// History windows passed to the question agent.
const (
	maxQuestionHistory = 5
	maxAnswerHistory   = 3
)

// Phase is the conversation state. Transitions are one-directional:
// Collecting → AwaitingConsent → Screening → Ended.
type Phase string

const (
	PhaseCollecting      Phase = "collecting_info"
	PhaseAwaitingConsent Phase = "awaiting_consent"
	PhaseScreening       Phase = "screening"
	PhaseEnded           Phase = "ended"
)

// Consent is the candidate's storage decision. It gates persistence
// only; screening proceeds either way.
type Consent string

const (
	ConsentUnknown Consent = "unknown"
	ConsentGranted Consent = "granted"
	ConsentDenied  Consent = "denied"
)

// Session is the complete per-conversation state. All interview state
// lives here; the engine itself is stateless across sessions.
type Session struct {
	ID        string
	Phase     Phase
	Consent   Consent
	Collector *profile.Collector

	// Derived at the end of collection.
	RoleSummary   string
	SkillSummary  string
	Seniority     string
	Categories    skills.CategoryMap
	CategoryOrder []string

	// Screening state.
	TotalQuestionsAsked  int
	AskedQuestions       map[string][]string
	Answers              map[string][]string
	CurrentCategoryIndex int

	// AwaitingFollowup forces the next question into the category the
	// candidate just answered. Set on answer, cleared on ask.
	AwaitingFollowup     bool
	LastCategoryAnswered string
}

// NewSession returns a fresh session in the collecting phase.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Phase:     PhaseCollecting,
		Consent:   ConsentUnknown,
		Collector: profile.NewCollector(),
	}
}

// Profile returns the collected candidate profile.
func (s *Session) Profile() profile.Profile {
	return s.Collector.Profile()
}

// TotalAnswers is the cumulative answer count across categories.
func (s *Session) TotalAnswers() int {
	total := 0
	for _, a := range s.Answers {
		total += len(a)
	}
	return total
}

// currentCategory returns the category under the rotation pointer.
func (s *Session) currentCategory() (string, bool) {
	if len(s.CategoryOrder) == 0 {
		return "", false
	}
	idx := s.CurrentCategoryIndex
	if idx < 0 || idx >= len(s.CategoryOrder) {
		return "", false
	}
	return s.CategoryOrder[idx], true
}

// initScreening derives the category state from the collected stack and
// resets all question tracking.
func (s *Session) initScreening() {
	if len(s.Categories) == 0 {
		s.Categories = skills.CategorizeStack(s.Profile().TechStack)
	}
	s.CategoryOrder = skills.CategoryOrder(s.Categories)

	s.CurrentCategoryIndex = 0
	s.TotalQuestionsAsked = 0
	s.AskedQuestions = make(map[string][]string, len(s.CategoryOrder))
	s.Answers = make(map[string][]string, len(s.CategoryOrder))
	for _, cat := range s.CategoryOrder {
		s.AskedQuestions[cat] = []string{}
		s.Answers[cat] = []string{}
	}
	s.AwaitingFollowup = false
	s.LastCategoryAnswered = ""
}
