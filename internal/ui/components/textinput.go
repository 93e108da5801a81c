package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for form fields. A marker in front
// of the field tracks focus so multi-field forms read clearly without
// extra chrome.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput creates an input with a placeholder and a length cap.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if limit > 0 {
		ti.CharLimit = limit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the field with its focus marker.
func (t TextInput) View() string {
	marker := lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	if t.Model.Focused() {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸")
	}
	return marker + " " + t.Model.View()
}

// Focus directs keyboard input to this field.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur releases keyboard input from this field.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
