package students

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
)

// EnrollScreen is the student enrollment form. Esc cancels back to the
// roster list without creating anything.
type EnrollScreen struct {
	pf     *platform.Platform
	events store.EventRepo
	snaps  store.SnapshotRepo

	nameInput  components.TextInput
	emailInput components.TextInput
	focused    int
	errMsg     string
}

var _ screen.Screen = (*EnrollScreen)(nil)
var _ screen.KeyHintProvider = (*EnrollScreen)(nil)

func newEnroll(pf *platform.Platform, events store.EventRepo, snaps store.SnapshotRepo) *EnrollScreen {
	name := components.NewTextInput("username", 32)
	email := components.NewTextInput("email (optional)", 64)
	email.Blur()
	return &EnrollScreen{
		pf:         pf,
		events:     events,
		snaps:      snaps,
		nameInput:  name,
		emailInput: email,
	}
}

func (e *EnrollScreen) Init() tea.Cmd {
	return e.nameInput.Init()
}

func (e *EnrollScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			return e, e.toggleFocus()
		case "enter":
			if e.focused == fieldName {
				return e, e.toggleFocus()
			}
			return e, e.submit()
		}
	}

	var cmd tea.Cmd
	if e.focused == fieldName {
		e.nameInput, cmd = e.nameInput.Update(msg)
	} else {
		e.emailInput, cmd = e.emailInput.Update(msg)
	}
	return e, cmd
}

func (e *EnrollScreen) toggleFocus() tea.Cmd {
	if e.focused == fieldName {
		e.focused = fieldEmail
		e.nameInput.Blur()
		return e.emailInput.Focus()
	}
	e.focused = fieldName
	e.emailInput.Blur()
	return e.nameInput.Focus()
}

// submit creates the student, logs the roster change, and saves a
// snapshot so the enrollment survives a crash.
func (e *EnrollScreen) submit() tea.Cmd {
	username := strings.TrimSpace(e.nameInput.Value())
	if username == "" {
		e.errMsg = "Username must not be empty."
		return nil
	}

	u, err := e.pf.Roster().Create(username, strings.TrimSpace(e.emailInput.Value()), roster.RoleStudent)
	if err != nil {
		e.errMsg = err.Error()
		return nil
	}

	ctx := context.Background()
	if e.events != nil {
		_ = e.events.AppendRosterChange(ctx, store.RosterEventData{
			UserID:   u.ID,
			Username: u.Username,
			Role:     string(u.Role),
			Action:   store.RosterActionCreated,
		})
	}
	if e.snaps != nil {
		_ = store.SaveSnapshot(ctx, e.snaps, e.events, e.pf.Snapshot())
	}

	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (e *EnrollScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(10)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Enroll a student"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Username") + "  " + e.nameInput.View() + "\n\n")
	b.WriteString(labelStyle.Render("Email") + "  " + e.emailInput.View() + "\n")

	if e.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(e.errMsg) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("New accounts get the student role; use the CLI for staff accounts."))

	card := theme.Card.Width(min(width-8, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (e *EnrollScreen) Title() string {
	return "Enroll"
}

// KeyHints returns the key binding hints for the footer.
func (e *EnrollScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Cancel"},
	}
}
