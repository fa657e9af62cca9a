package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"skillscout/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with SkillScout styling and a
// lockable state for while a reply is being generated.
type TextInput struct {
	Model  textinput.Model
	locked bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. A locked input swallows everything.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.locked {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	if t.locked {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("(waiting for reply...)")
	}
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
}

// Lock disables input until Unlock.
func (t *TextInput) Lock() {
	t.locked = true
	t.Model.Blur()
}

// Unlock re-enables input.
func (t *TextInput) Unlock() tea.Cmd {
	t.locked = false
	return t.Model.Focus()
}

// Locked reports whether the input is currently disabled.
func (t TextInput) Locked() bool {
	return t.locked
}
