package students

import (
	"fmt"
	"strings"
	"time"

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

// StudentsScreen lists the roster and routes to enrollment and per-user
// detail. Rows are re-read from the platform on every render so the list
// picks up enrollments made after this screen was created.
type StudentsScreen struct {
	pf     *platform.Platform
	events store.EventRepo
	snaps  store.SnapshotRepo
	cursor int
}

var _ screen.Screen = (*StudentsScreen)(nil)
var _ screen.KeyHintProvider = (*StudentsScreen)(nil)

// New creates a new StudentsScreen.
func New(pf *platform.Platform, events store.EventRepo, snaps store.SnapshotRepo) *StudentsScreen {
	return &StudentsScreen{pf: pf, events: events, snaps: snaps}
}

func (s *StudentsScreen) Init() tea.Cmd {
	return nil
}

func (s *StudentsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	users := s.pf.Roster().Users()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(users)-1 {
				s.cursor++
			}
		case "a":
			enroll := newEnroll(s.pf, s.events, s.snaps)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: enroll}
			}
		case "enter":
			if s.cursor < len(users) {
				detail := NewDetail(s.pf, users[s.cursor])
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: detail}
				}
			}
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StudentsScreen) View(width, height int) string {
	users := s.pf.Roster().Users()
	if s.cursor >= len(users) && len(users) > 0 {
		s.cursor = len(users) - 1
	}

	if len(users) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nobody is enrolled yet. Press 'a' to add a student."))
	}

	var lines []string
	lines = append(lines, "")
	for i, u := range users {
		lines = append(lines, s.renderUserRow(u, i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (s *StudentsScreen) Title() string {
	return "Students"
}

// KeyHints returns the key binding hints for the footer.
func (s *StudentsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "a", Description: "Enroll"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// renderUserRow renders one roster row: username, role, completion, last seen.
func (s *StudentsScreen) renderUserRow(u roster.User, selected bool, width int) string {
	sum, _ := s.pf.AggregateProgress(u.ID)
	last, _ := s.pf.Progress().LastActive(u.ID)

	// Calculate column widths
	padding := 4
	roleWidth := 10
	barWidth := 24
	lastWidth := 14
	spacing := 6
	nameWidth := width - padding - roleWidth - barWidth - lastWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := u.Username
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	bar := components.NewProgressBar("", sum.OverallCompletion/100, true, barWidth)

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		roleBadge(u.Role),
		bar.View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(lastSeen(last)),
	)
}

// roleBadge renders the short colored tag for a role.
func roleBadge(r roster.Role) string {
	switch r {
	case roster.RoleTeacher:
		return components.Badge("TCHR", theme.Accent)
	case roster.RoleAdmin:
		return components.Badge("ADMN", theme.Error)
	default:
		return components.Badge("STDT", theme.Secondary)
	}
}

// lastSeen formats a last-activity timestamp relative to now.
func lastSeen(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
