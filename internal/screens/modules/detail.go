package modules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

// ModuleDetailScreen shows details for a single module.
type ModuleDetailScreen struct {
	pf     *platform.Platform
	module catalog.Module
	rate   platform.ModuleRate
}

var _ screen.Screen = (*ModuleDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleDetailScreen)(nil)

func newModuleDetail(pf *platform.Platform, m catalog.Module, rate platform.ModuleRate) *ModuleDetailScreen {
	return &ModuleDetailScreen{pf: pf, module: m, rate: rate}
}

func (d *ModuleDetailScreen) Init() tea.Cmd { return nil }
func (d *ModuleDetailScreen) Title() string { return d.module.Title }

func (d *ModuleDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *ModuleDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *ModuleDetailScreen) View(width, height int) string {
	m := d.module
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	// Module title + difficulty.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", difficultyBadge(m.Difficulty), m.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", catalog.CategoryDisplayName(m.Category))))
	b.WriteString("\n\n")

	// Description.
	if m.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(m.Description))
		b.WriteString("\n\n")
	}

	// Metadata.
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Difficulty:  ") + valStyle.Render(m.Difficulty.DisplayName()) + "\n")
	if m.EstimatedMins > 0 {
		b.WriteString(dimStyle.Render("  Estimated:   ") + valStyle.Render(fmt.Sprintf("%d min", m.EstimatedMins)) + "\n")
	}
	b.WriteString(dimStyle.Render("  Assessment:  ") + valStyle.Render(fmt.Sprintf("%d questions", len(m.Questions))) + "\n")
	if d.rate.Population > 0 {
		b.WriteString(dimStyle.Render("  Class:       ") + valStyle.Render(
			fmt.Sprintf("%.0f%% average, %d of %d completed", d.rate.AvgCompletion, d.rate.Completions, d.rate.Population)) + "\n")
	}
	b.WriteString("\n")

	// Content blocks.
	if len(m.Blocks) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Content"))
		b.WriteString("\n")
		for _, blk := range m.Blocks {
			line := fmt.Sprintf("  %s %s", blk.Kind.Icon(), blk.Title)
			b.WriteString(dimStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Prerequisites.
	prereqs := d.pf.Catalog().Prerequisites(m.ID)
	if len(prereqs) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Prerequisites"))
		b.WriteString("\n")
		for _, p := range prereqs {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ○ %s", p.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Dependents (what this module unlocks).
	deps := d.pf.Catalog().Dependents(m.ID)
	if len(deps) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Unlocks"))
		b.WriteString("\n")
		for _, dep := range deps {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", dep.Title)))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
