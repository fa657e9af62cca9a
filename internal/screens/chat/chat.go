// Package chat is the screening conversation screen: a transcript, a
// text input, and a live profile sidebar, driven entirely by engine
// events.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"skillscout/internal/interview"
	"skillscout/internal/ui/components"
	"skillscout/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type entryRole string

const (
	roleAssistant entryRole = "assistant"
	roleCandidate entryRole = "candidate"
)

type entry struct {
	role    entryRole
	content string
}

// Screen runs one interview session. Exactly one engine step is in
// flight at a time: the input locks on submit and unlocks when the
// step message comes back.
type Screen struct {
	engine  *interview.Engine
	session *interview.Session

	transcript []entry
	input      components.TextInput

	waiting      bool
	spinnerFrame int
	ended        bool
}

// New creates the chat screen for a fresh session.
func New(engine *interview.Engine, session *interview.Session) *Screen {
	return &Screen{
		engine:  engine,
		session: session,
		input:   components.NewTextInput("Type your response here...", 500),
	}
}

func (s *Screen) Init() tea.Cmd {
	for _, ev := range s.engine.Start(s.session) {
		s.transcript = append(s.transcript, entry{roleAssistant, ev.Content})
	}
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "Screening Interview"
}

// KeyHints returns the footer hints for the current state.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.ended {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		return s.handleStepDone(msg)

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, s.tickSpinner()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.handleSubmit()
		}
	}

	if !s.waiting && !s.ended {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleSubmit() (*Screen, tea.Cmd) {
	if s.waiting || s.ended {
		return s, nil
	}
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		return s, nil
	}

	s.transcript = append(s.transcript, entry{roleCandidate, value})
	s.input.Reset()
	s.input.Lock()
	s.waiting = true

	return s, tea.Batch(s.runStep(value), s.tickSpinner())
}

func (s *Screen) handleStepDone(msg stepDoneMsg) (*Screen, tea.Cmd) {
	for _, ev := range msg.Events {
		s.transcript = append(s.transcript, entry{roleAssistant, ev.Content})
	}
	s.waiting = false

	if s.session.Phase == interview.PhaseEnded {
		s.ended = true
		return s, nil
	}
	return s, s.input.Unlock()
}

// runStep drives the engine off the UI goroutine. The waiting flag
// guarantees a single in-flight step per session.
func (s *Screen) runStep(input string) tea.Cmd {
	return func() tea.Msg {
		events := s.engine.Step(context.Background(), s.session, input)
		return stepDoneMsg{Events: events}
	}
}

func (s *Screen) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
