package students

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

// DetailScreen shows one user's progress, standing, and recommended path.
type DetailScreen struct {
	pf   *platform.Platform
	user roster.User
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates a detail screen for the given user.
func NewDetail(pf *platform.Platform, u roster.User) *DetailScreen {
	return &DetailScreen{pf: pf, user: u}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.user.Username }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth > 74 {
		contentWidth = 74
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	// Identity.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", roleBadge(d.user.Role), d.user.Username)))
	b.WriteString("\n")
	meta := fmt.Sprintf("  enrolled %s", d.user.CreatedAt.Format("Jan 2, 2006"))
	if d.user.Email != "" {
		meta += "  ·  " + d.user.Email
	}
	b.WriteString(dimStyle.Render(meta))
	b.WriteString("\n\n")

	// Summary.
	sum, err := d.pf.AggregateProgress(d.user.ID)
	if err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("This user is no longer on the roster."))
	}

	b.WriteString(sectionStyle.Render("  Progress"))
	b.WriteString("\n")
	bar := components.NewProgressBar("  Overall", sum.OverallCompletion/100, true, contentWidth-10)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Completed:   ") + valStyle.Render(fmt.Sprintf("%d modules", sum.ModulesCompleted)) + "\n")
	b.WriteString(dimStyle.Render("  In progress: ") + valStyle.Render(fmt.Sprintf("%d modules", sum.ModulesInProgress)) + "\n")
	b.WriteString(dimStyle.Render("  Time spent:  ") + valStyle.Render(fmt.Sprintf("%d min", sum.TotalTimeMins)) + "\n")
	if sum.ScoreCount > 0 {
		tier := d.pf.Config().Feedback.TierFor(sum.AvgQuizScore)
		b.WriteString(dimStyle.Render("  Quiz avg:    ") +
			valStyle.Render(fmt.Sprintf("%.1f over %d quizzes ", sum.AvgQuizScore, sum.ScoreCount)) +
			tierBadge(tier) + "\n")
	}
	if cat, rate, ok := d.pf.StrongestCategory(d.user.ID); ok {
		b.WriteString(dimStyle.Render("  Strongest:   ") +
			valStyle.Render(fmt.Sprintf("%s (%.0f%%)", catalog.CategoryDisplayName(cat), rate)) + "\n")
	}
	b.WriteString("\n")

	// Per-module records.
	recs, _ := d.pf.UserRecords(d.user.ID)
	if len(recs) > 0 {
		b.WriteString(sectionStyle.Render("  Modules"))
		b.WriteString("\n")
		for _, rec := range recs {
			title := rec.ModuleID
			if m, ok := d.pf.Catalog().Module(rec.ModuleID); ok {
				title = m.Title
			}
			if len(title) > 28 {
				title = title[:27] + "…"
			}
			rowBar := components.NewProgressBar(fmt.Sprintf("  %-28s", title), rec.CompletionPct/100, true, contentWidth-8)
			b.WriteString(rowBar.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Recommended path.
	path, _ := d.pf.PersonalizedPath(d.user.ID)
	target, _ := d.pf.TargetDifficulty(d.user.ID)
	b.WriteString(sectionStyle.Render("  Up next"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Target band: ") + valStyle.Render(target.DisplayName()) + "\n")
	if len(path) == 0 {
		b.WriteString(dimStyle.Render("  All available modules are complete."))
		b.WriteString("\n")
	} else {
		if len(path) > 3 {
			path = path[:3]
		}
		for i, m := range path {
			b.WriteString(valStyle.Render(fmt.Sprintf("  %d. %s", i+1, m.Title)) +
				dimStyle.Render(fmt.Sprintf("  (%s)", m.Difficulty.DisplayName())))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}

// tierBadge renders the short colored tag for a performance tier.
func tierBadge(t feedback.Tier) string {
	switch t {
	case feedback.TierProficient:
		return components.Badge("PROFICIENT", theme.Success)
	case feedback.TierStruggling:
		return components.Badge("STRUGGLING", theme.Error)
	default:
		return components.Badge("PROGRESSING", theme.Accent)
	}
}
