package classroom

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
	"github.com/abhisek/pathwise/internal/screens/students"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

type tab int

const (
	tabStudents tab = iota
	tabModules
)

// ClassroomScreen is the teacher dashboard: the class rollup and
// per-module uptake, behind the rollup capability check.
type ClassroomScreen struct {
	pf        *platform.Platform
	requester roster.User
	hasStaff  bool

	active  tab
	entries []platform.RollupEntry
	rates   []platform.ModuleRate
	rollErr error
	cursor  int
}

var _ screen.Screen = (*ClassroomScreen)(nil)
var _ screen.KeyHintProvider = (*ClassroomScreen)(nil)

// New creates a new ClassroomScreen. The rollup is requested as the
// first roster member allowed to view it.
func New(pf *platform.Platform) *ClassroomScreen {
	s := &ClassroomScreen{pf: pf}
	for _, u := range pf.Roster().Users() {
		if u.Role.CanViewRollup() {
			s.requester = u
			s.hasStaff = true
			break
		}
	}
	s.refresh()
	return s
}

func (s *ClassroomScreen) refresh() {
	if !s.hasStaff {
		return
	}
	s.entries, s.rollErr = s.pf.ClassRollup(s.requester.ID, nil)
	if s.rollErr == nil {
		s.rates, s.rollErr = s.pf.ModuleCompletionRates(s.requester.ID, nil)
	}
}

func (s *ClassroomScreen) Init() tea.Cmd {
	return nil
}

func (s *ClassroomScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if s.active == tabStudents {
				s.active = tabModules
			} else {
				s.active = tabStudents
			}
			s.cursor = 0
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < s.rowCount()-1 {
				s.cursor++
			}
		case "r":
			s.refresh()
		case "enter":
			if s.active == tabStudents && s.cursor < len(s.entries) {
				detail := students.NewDetail(s.pf, s.entries[s.cursor].User)
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

func (s *ClassroomScreen) rowCount() int {
	if s.active == tabStudents {
		return len(s.entries)
	}
	return len(s.rates)
}

func (s *ClassroomScreen) View(width, height int) string {
	if !s.hasStaff {
		msg := "The rollup needs a teacher or admin account.\n\n" +
			theme.Hint.Render("Create one with:  pathwise users add --name <name> --role teacher")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	if s.rollErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.rollErr.Error()))
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, s.renderTabs(width))
	lines = append(lines, "")

	if s.active == tabStudents {
		lines = append(lines, s.renderStudentRows(width)...)
	} else {
		lines = append(lines, s.renderModuleRows(width)...)
	}

	return strings.Join(lines, "\n")
}

func (s *ClassroomScreen) Title() string {
	return "Classroom"
}

// KeyHints returns the key binding hints for the footer.
func (s *ClassroomScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch view"},
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.active == tabStudents {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Details"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "r", Description: "Refresh"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

// renderTabs renders the two view tabs with the active one highlighted.
func (s *ClassroomScreen) renderTabs(width int) string {
	activeStyle := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 2)

	var studentsTab, modulesTab string
	if s.active == tabStudents {
		studentsTab = activeStyle.Render("STUDENTS")
		modulesTab = inactiveStyle.Render("MODULES")
	} else {
		studentsTab = inactiveStyle.Render("STUDENTS")
		modulesTab = activeStyle.Render("MODULES")
	}

	viewer := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("viewing as %s", s.requester.Username))

	return "  " + studentsTab + " " + modulesTab + "   " + viewer
}

// renderStudentRows renders the rollup, most complete first.
func (s *ClassroomScreen) renderStudentRows(width int) []string {
	if len(s.entries) == 0 {
		return []string{theme.Hint.Render("  The roster is empty.")}
	}

	var lines []string
	for i, e := range s.entries {
		lines = append(lines, s.renderStudentRow(e, i == s.cursor, width))
	}
	return lines
}

func (s *ClassroomScreen) renderStudentRow(e platform.RollupEntry, selected bool, width int) string {
	padding := 4
	barWidth := 22
	statsWidth := 36
	spacing := 6
	nameWidth := width - padding - barWidth - statsWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}
	if nameWidth > 20 {
		nameWidth = 20
	}

	name := e.User.Username
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

	bar := components.NewProgressBar("", e.Summary.OverallCompletion/100, true, barWidth)

	stats := fmt.Sprintf("%d done · %d active", e.Summary.ModulesCompleted, e.Summary.ModulesInProgress)
	if e.Summary.ScoreCount > 0 {
		stats += fmt.Sprintf(" · avg %.0f", e.Summary.AvgQuizScore)
	}
	stats += " · " + lastSeen(e.LastActive)

	return fmt.Sprintf("  %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		bar.View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats),
	)
}

// lastSeen renders the last-active timestamp as a compact age.
func lastSeen(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// renderModuleRows renders per-module uptake in catalog order.
func (s *ClassroomScreen) renderModuleRows(width int) []string {
	if len(s.rates) == 0 {
		return []string{theme.Hint.Render("  The catalog is empty.")}
	}

	var lines []string
	for i, r := range s.rates {
		lines = append(lines, s.renderModuleRow(r, i == s.cursor, width))
	}
	return lines
}

func (s *ClassroomScreen) renderModuleRow(r platform.ModuleRate, selected bool, width int) string {
	padding := 4
	barWidth := 22
	statsWidth := 16
	spacing := 6
	nameWidth := width - padding - barWidth - statsWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}
	if nameWidth > 32 {
		nameWidth = 32
	}

	name := r.Module.Title
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

	bar := components.NewProgressBar("", r.AvgCompletion/100, true, barWidth)

	return fmt.Sprintf("  %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		bar.View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d completed", r.Completions, r.Population)),
	)
}
