// Package app wires the interview engine into the root Bubble Tea
// model: header, chat screen, footer.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"skillscout/internal/interview"
	"skillscout/internal/screens/chat"
	"skillscout/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	chat    *chat.Screen
	session *interview.Session
	width   int
	height  int
}

func newModel(engine *interview.Engine) Model {
	session := interview.NewSession()
	return Model{
		chat:    chat.New(engine, session),
		session: session,
	}
}

func (m Model) Init() tea.Cmd {
	return m.chat.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(phaseLabel(m.session.Phase),
		m.session.TotalQuestionsAsked, interview.MaxTotalQuestions, m.width)
	footer := layout.RenderFooter(m.chat.KeyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.chat.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func phaseLabel(p interview.Phase) string {
	switch p {
	case interview.PhaseCollecting:
		return "Step 1 of 3 · Profile"
	case interview.PhaseAwaitingConsent:
		return "Step 2 of 3 · Consent"
	case interview.PhaseScreening:
		return "Step 3 of 3 · Technical Screening"
	case interview.PhaseEnded:
		return "Screening Complete"
	}
	return ""
}

// Run starts the Bubble Tea program for one interview session.
func Run(engine *interview.Engine) error {
	p := tea.NewProgram(newModel(engine))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
