package scenario

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

type phase int

const (
	phaseList phase = iota
	phasePlay
	phaseOutcome
)

// ScenarioScreen runs decision scenarios: pick one, weigh the options,
// see the consequence. Outcomes are scored but never recorded.
type ScenarioScreen struct {
	pf *platform.Platform

	phase     phase
	scenarios []catalog.Scenario
	cursor    int

	current catalog.Scenario
	option  int
	outcome feedback.ScenarioOutcome
}

var _ screen.Screen = (*ScenarioScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioScreen)(nil)

// New creates a ScenarioScreen over the platform's scenario catalog.
func New(pf *platform.Platform) *ScenarioScreen {
	return &ScenarioScreen{
		pf:        pf,
		scenarios: pf.Catalog().Scenarios(),
	}
}

func (s *ScenarioScreen) Init() tea.Cmd {
	return nil
}

func (s *ScenarioScreen) Title() string {
	return "Scenarios"
}

func (s *ScenarioScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePlay:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "Enter", Description: "Decide"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseOutcome:
		return []layout.KeyHint{{Key: "any key", Description: "Back to list"}}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *ScenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	switch s.phase {
	case phasePlay:
		return s.handlePlay(key)
	case phaseOutcome:
		// Any key returns to the list.
		s.phase = phaseList
		return s, nil
	default:
		return s.handleList(key)
	}
}

func (s *ScenarioScreen) handleList(key string) (screen.Screen, tea.Cmd) {
	if len(s.scenarios) == 0 {
		if key == "enter" || key == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.scenarios)-1 {
			s.cursor++
		}
	case "enter":
		s.current = s.scenarios[s.cursor]
		s.option = 0
		s.phase = phasePlay
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ScenarioScreen) handlePlay(key string) (screen.Screen, tea.Cmd) {
	// Number keys decide in one stroke.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(s.current.Options) {
			s.option = idx
			return s.decide()
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.option > 0 {
			s.option--
		}
	case "down", "j":
		if s.option < len(s.current.Options)-1 {
			s.option++
		}
	case "enter":
		return s.decide()
	case "q":
		s.phase = phaseList
	}
	return s, nil
}

func (s *ScenarioScreen) decide() (screen.Screen, tea.Cmd) {
	out, err := s.pf.PracticeScenario(s.current.ID, s.option)
	if err != nil {
		// The option index comes from our own cursor; treat a failure
		// as a stale catalog and fall back to the list.
		s.phase = phaseList
		return s, nil
	}
	s.outcome = out
	s.phase = phaseOutcome
	return s, nil
}

func (s *ScenarioScreen) View(width, height int) string {
	switch s.phase {
	case phasePlay:
		return s.renderPlay(width)
	case phaseOutcome:
		return s.renderOutcome(width)
	default:
		return s.renderList(width)
	}
}

func (s *ScenarioScreen) renderList(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Decision Scenarios"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Practice judgment calls — nothing here counts toward progress."))
	b.WriteString("\n\n")

	if len(s.scenarios) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No scenarios loaded yet.\n\nPress Enter to go back."))
		return b.String()
	}

	var rows strings.Builder
	for i, sc := range s.scenarios {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d options", len(sc.Options)))
		rows.WriteString(prefix + style.Render(sc.Title) + meta + "\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	return b.String()
}

func (s *ScenarioScreen) renderPlay(width int) string {
	sc := s.current
	para := lipgloss.NewStyle().Width(min(width-8, 70))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(sc.Title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		para.Foreground(theme.Text).Render(sc.Context)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		para.Foreground(theme.Accent).Bold(true).Render(sc.Challenge)))
	b.WriteString("\n\n")

	var rows strings.Builder
	for i, opt := range sc.Options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.option {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		rows.WriteString(prefix + style.Render(fmt.Sprintf("%d) %s", i+1, opt.Text)) + "\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("What would you do? Select (1-%d) or use arrows + Enter", len(sc.Options))))

	return b.String()
}

func (s *ScenarioScreen) renderOutcome(width int) string {
	out := s.outcome
	para := lipgloss.NewStyle().Width(min(width-8, 70))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.current.Title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		para.Foreground(theme.TextDim).Render("You chose: "+out.Option.Text)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		para.Foreground(theme.Text).Render(out.Option.Consequence)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s  Ethics score: %d/10",
			components.Badge(out.Band.DisplayName(), bandColor(out.Band)), out.Score)))
	b.WriteString("\n")

	if len(s.current.Considerations) > 0 {
		b.WriteString("\n")
		var list strings.Builder
		list.WriteString("Worth weighing:\n")
		for _, c := range s.current.Considerations {
			list.WriteString("  • " + c + "\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			para.Foreground(theme.TextDim).Render(list.String())))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back to the list..."))

	return b.String()
}

func bandColor(b feedback.EthicsBand) color.Color {
	switch b {
	case feedback.EthicsGood:
		return theme.Success
	case feedback.EthicsPoor:
		return theme.Error
	default:
		return theme.Accent
	}
}
