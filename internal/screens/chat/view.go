package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"skillscout/internal/interview"
	"skillscout/internal/profile"
	"skillscout/internal/ui/theme"
)

const sidebarWidth = 32

func (s *Screen) View(width, height int) string {
	chatWidth := width - sidebarWidth - 2
	if chatWidth < 20 {
		chatWidth = width
	}

	transcript := s.renderTranscript(chatWidth, height-3)
	inputLine := s.renderInputLine(chatWidth)

	left := lipgloss.NewStyle().
		Width(chatWidth).
		Height(height).
		Render(transcript + "\n" + inputLine)

	if chatWidth == width {
		return left
	}

	sidebar := s.renderSidebar(sidebarWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", sidebar)
}

func (s *Screen) renderTranscript(width, maxLines int) string {
	var b strings.Builder
	for _, e := range s.transcript {
		var prefix, body string
		if e.role == roleAssistant {
			prefix = theme.Assistant.Bold(true).Render("SkillScout")
			body = theme.Assistant.Render(e.content)
		} else {
			prefix = theme.Candidate.Render("You")
			body = theme.Body.Render(e.content)
		}
		block := lipgloss.NewStyle().Width(width - 2).Render(body)
		b.WriteString(prefix + "\n" + block + "\n\n")
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) renderInputLine(width int) string {
	if s.ended {
		return theme.Hint.Render("  The interview has ended.")
	}
	if s.waiting {
		spinner := spinnerFrames[s.spinnerFrame]
		return theme.Hint.Render(fmt.Sprintf("  %s thinking...", spinner))
	}
	return "  > " + s.input.View()
}

func (s *Screen) renderSidebar(width, height int) string {
	sess := s.session
	p := sess.Profile()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Candidate Profile"))
	b.WriteString("\n\n")

	for _, f := range profile.RequiredFields {
		if !sess.Collector.Accepted(f) {
			continue
		}
		value := fieldValue(p, f)
		if value == "" {
			continue
		}
		b.WriteString(theme.SidebarLabel.Render(f.Label()+":") + "\n")
		b.WriteString(theme.SidebarValue.Render("  "+value) + "\n")
	}

	if sess.Seniority != "" {
		b.WriteString("\n")
		b.WriteString(theme.SidebarLabel.Render("Seniority:") + " ")
		b.WriteString(theme.SidebarValue.Render(sess.Seniority) + "\n")
	}

	if sess.Phase == interview.PhaseScreening || sess.Phase == interview.PhaseEnded {
		b.WriteString("\n")
		b.WriteString(theme.SidebarLabel.Render("Questions:") + " ")
		b.WriteString(theme.SidebarValue.Render(
			fmt.Sprintf("%d/%d", sess.TotalQuestionsAsked, interview.MaxTotalQuestions)) + "\n")
	}

	if sess.RoleSummary != "" {
		b.WriteString("\n")
		b.WriteString(theme.SidebarLabel.Render("Profile summary:") + "\n")
		b.WriteString(theme.Hint.Render(sess.RoleSummary) + "\n")
	}
	if sess.SkillSummary != "" {
		b.WriteString("\n")
		b.WriteString(theme.SidebarLabel.Render("Skill summary:") + "\n")
		b.WriteString(theme.Hint.Render(sess.SkillSummary) + "\n")
	}

	return theme.Card.Width(width).Height(height - 2).Render(
		lipgloss.NewStyle().Width(width - 6).Render(b.String()))
}

func fieldValue(p profile.Profile, f profile.Field) string {
	switch f {
	case profile.FieldFullName:
		return p.FullName
	case profile.FieldEmail:
		return p.Email
	case profile.FieldPhone:
		return p.Phone
	case profile.FieldYearsExperience:
		return fmt.Sprintf("%d", p.YearsExperience)
	case profile.FieldDesiredPositions:
		return p.DesiredPositions
	case profile.FieldCurrentLocation:
		return p.CurrentLocation
	case profile.FieldTechStack:
		return p.TechStack
	}
	return ""
}
