package assess

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

// renderStudentPick renders the student selection list.
func (s *AssessScreen) renderStudentPick(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Who is taking this assessment?"))
	b.WriteString("\n\n")

	if len(s.students) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No one is enrolled yet.\nAdd students from the Students screen first.\n\nPress Enter to go back."))
		return b.String()
	}

	var rows strings.Builder
	for i, u := range s.students {
		prefix := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "▸ "
			nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
		}

		meta := ""
		if sum, err := s.pf.AggregateProgress(u.ID); err == nil && sum.ModulesCompleted+sum.ModulesInProgress > 0 {
			meta = fmt.Sprintf("  %.0f%% complete", sum.OverallCompletion)
		}

		rows.WriteString(prefix + nameStyle.Render(u.Username))
		if meta != "" {
			rows.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
		}
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	return b.String()
}

// renderModulePick renders the module selection list, ordered by the
// recommendation engine.
func (s *AssessScreen) renderModulePick(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	heading := fmt.Sprintf("Pick a module for %s", s.student.Username)
	if s.reviewing {
		heading = fmt.Sprintf("%s finished the path — pick a module to review", s.student.Username)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Suggested difficulty: %s", s.target.DisplayName())))
	b.WriteString("\n\n")

	if len(s.modules) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No modules carry an assessment yet.\n\nPress Enter to go back."))
		return b.String()
	}

	var rows strings.Builder
	for i, m := range s.modules {
		prefix := "  "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "▸ "
			titleStyle = titleStyle.Foreground(theme.Primary).Bold(true)
		}

		meta := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s · %d questions", m.Difficulty.DisplayName(), len(m.Questions)))

		rows.WriteString(prefix + titleStyle.Render(m.Title) + meta)
		if i == 0 && !s.reviewing {
			rows.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  ← up next"))
		}
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	return b.String()
}

// renderQuestion renders the active question.
func (s *AssessScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.student.Username, s.module.Title))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			s.qIndex+1,
			len(s.module.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.correct,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(s.choice.Options))))

	return b.String()
}

// renderFeedback renders the post-answer overlay: the graded options,
// the verdict, and the coaching message for the student's tier.
func (s *AssessScreen) renderFeedback(width, height int) string {
	q := s.module.Questions[s.qIndex]
	fb := s.lastFB

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if fb.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Options[q.Correct])))
	}
	b.WriteString("\n\n")

	msgStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msgStyle.Render(fb.Message)))
	b.WriteString("\n")

	if q.Explanation != "" {
		b.WriteString("\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(q.Explanation)))
		b.WriteString("\n")
	}

	if fb.Rushed {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("That was quick — take a moment to read each option."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderSummary renders the completed-assessment recap.
func (s *AssessScreen) renderSummary(width, height int) string {
	tier := s.pf.Config().Feedback.TierFor(s.finalScore)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", s.student.Username, s.module.Title)))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Foreground(tierColor(tier)).
		Bold(true).
		Render(fmt.Sprintf("%.0f%%", s.finalScore))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s  (%d of %d correct)  %s",
			score, s.correct, len(s.module.Questions), components.Badge(tier.DisplayName(), tierColor(tier)))))
	b.WriteString("\n\n")

	var lines strings.Builder
	lines.WriteString(fmt.Sprintf("Rolling average   %.0f%% over %d quizzes\n", s.rollingAvg, s.samples))
	lines.WriteString(fmt.Sprintf("Time recorded     %d min\n", s.totalMins))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(lines.String())))
	b.WriteString("\n")

	if s.nextUp != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("Up next: %s (%s)", s.nextUp.Title, s.nextUp.Difficulty.DisplayName())))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Every module on the path is complete — great work!"))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to finish"))

	return b.String()
}

// renderQuitConfirm renders the end-early confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the assessment early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions are already recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end it"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func tierColor(t feedback.Tier) color.Color {
	switch t {
	case feedback.TierProficient:
		return theme.Success
	case feedback.TierStruggling:
		return theme.Error
	default:
		return theme.Accent
	}
}
