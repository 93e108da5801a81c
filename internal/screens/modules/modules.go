package modules

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowModule
)

type row struct {
	kind     rowKind
	category catalog.Category
	module   *catalog.Module
}

// ModulesScreen displays the catalog organized by category, with
// class-wide uptake next to each module.
type ModulesScreen struct {
	pf           *platform.Platform
	rows         []row
	rates        map[string]platform.ModuleRate
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a new ModulesScreen. Uptake numbers need a staff account
// on the roster; without one the column stays blank.
func New(pf *platform.Platform) *ModulesScreen {
	rates := make(map[string]platform.ModuleRate)
	for _, u := range pf.Roster().Users() {
		if !u.Role.CanViewRollup() {
			continue
		}
		if rs, err := pf.ModuleCompletionRates(u.ID, nil); err == nil {
			for _, r := range rs {
				rates[r.Module.ID] = r
			}
		}
		break
	}

	var rows []row
	for _, cat := range catalog.AllCategories() {
		mods := pf.Catalog().ByCategory(cat)
		if len(mods) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategoryHeader, category: cat})
		for i := range mods {
			rows = append(rows, row{kind: rowModule, category: cat, module: &mods[i]})
		}
	}

	s := &ModulesScreen{
		pf:    pf,
		rows:  rows,
		rates: rates,
	}

	// Set cursor to first module row
	for i, r := range s.rows {
		if r.kind == rowModule {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *ModulesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCategory()
		case "shift+tab":
			s.prevCategory()
		case "enter":
			return s, s.selectModule()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ModulesScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("The catalog is empty."))
	}

	// Ensure cursor is visible within the scroll window
	s.adjustScroll(height)

	// Render all visible rows
	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowModule:
			lines = append(lines, s.renderModuleRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *ModulesScreen) Title() string {
	return "Modules"
}

// KeyHints returns the key binding hints for the footer.
func (s *ModulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *ModulesScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowModule {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first module in the next category.
func (s *ModulesScreen) nextCategory() {
	current := s.rows[s.cursor].category
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowModule && s.rows[i].category != current {
			s.cursor = i
			return
		}
	}
}

// prevCategory jumps the cursor to the first module in the previous category.
func (s *ModulesScreen) prevCategory() {
	current := s.rows[s.cursor].category

	// Find the start of the previous category
	prevStart := -1
	var prev catalog.Category
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowModule && s.rows[i].category != current {
			prev = s.rows[i].category
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	// Go to the first module of that category
	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowModule || s.rows[i].category != prev {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowModule {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *ModulesScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the category header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectModule handles enter on the current module.
func (s *ModulesScreen) selectModule() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowModule || r.module == nil {
		return nil
	}

	detail := newModuleDetail(s.pf, *r.module, s.rates[r.module.ID])
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// renderCategoryHeader renders a category section header.
func (s *ModulesScreen) renderCategoryHeader(cat catalog.Category, width int) string {
	name := strings.ToUpper(catalog.CategoryDisplayName(cat))
	styled := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
	return styled
}

// renderModuleRow renders a single module row.
func (s *ModulesScreen) renderModuleRow(r row, selected bool, width int) string {
	if r.module == nil {
		return ""
	}

	m := *r.module
	badge := difficultyBadge(m.Difficulty)
	uptake := ""
	if rate, ok := s.rates[m.ID]; ok {
		uptake = fmt.Sprintf("%3.0f%% avg  %d done", rate.AvgCompletion, rate.Completions)
	}

	// Calculate column widths
	padding := 4 // left indent
	badgeWidth := 6
	uptakeWidth := 18
	spacing := 4
	nameWidth := width - padding - badgeWidth - uptakeWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	// Truncate title if needed
	name := m.Title
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle, uptakeStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		uptakeStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		uptakeStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	// Cursor indicator
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		badge,
		nameStyle.Render(namePadded),
		uptakeStyle.Render(uptake),
	)
}

// difficultyBadge renders the short colored tag for a difficulty band.
func difficultyBadge(d catalog.Difficulty) string {
	return components.Badge(difficultyTag(d), difficultyColor(d))
}

func difficultyTag(d catalog.Difficulty) string {
	switch d {
	case catalog.Beginner:
		return "BEG"
	case catalog.Intermediate:
		return "INT"
	case catalog.Advanced:
		return "ADV"
	default:
		return "???"
	}
}

func difficultyColor(d catalog.Difficulty) color.Color {
	switch d {
	case catalog.Beginner:
		return theme.Secondary
	case catalog.Intermediate:
		return theme.Accent
	case catalog.Advanced:
		return theme.Error
	default:
		return theme.TextDim
	}
}
