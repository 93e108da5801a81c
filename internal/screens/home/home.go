package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/screens/assess"
	"github.com/abhisek/pathwise/internal/screens/classroom"
	"github.com/abhisek/pathwise/internal/screens/modules"
	"github.com/abhisek/pathwise/internal/screens/scenario"
	"github.com/abhisek/pathwise/internal/screens/students"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	pf           *platform.Platform
	menu         components.Menu
	menuLabels   []string
	disabled     map[int]bool
	interactions int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(pf *platform.Platform, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	// Interaction total comes from the event log; stale after a visit
	// to the assessment screen but refreshed on next launch.
	var interactions int
	if eventRepo != nil {
		interactions, _ = eventRepo.InteractionCount(context.Background(), "")
	}

	// The assessment writes events and snapshots; without the repos it
	// stays visible but locked.
	assessLocked := eventRepo == nil || snapRepo == nil

	items := []components.MenuItem{
		{Label: "CLASSROOM", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: classroom.New(pf)}
			}
		}},
		{Label: "STUDENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: students.New(pf, eventRepo, snapRepo)}
			}
		}},
		{Label: "MODULES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modules.New(pf)}
			}
		}},
		{Label: "ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assess.New(pf, eventRepo, snapRepo)}
			}
		}, Disabled: assessLocked},
		{Label: "SCENARIOS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scenario.New(pf)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	menu := components.NewMenu(items)
	return &HomeScreen{
		pf:           pf,
		menu:         menu,
		menuLabels:   menu.Labels(),
		disabled:     menu.DisabledSet(),
		interactions: interactions,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	// Counts come straight off the platform so enrollments made on
	// other screens show up as soon as we render again.
	studentCount := len(h.pf.Roster().Users())
	moduleCount := len(h.pf.Catalog().Modules())

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		studentCount, moduleCount, h.interactions, cw, compact))

	// 3. Empty-roster hint
	if studentCount == 0 {
		sections = append(sections, renderEmptyRosterNote(cw))
	}

	// 4. Menu (same width box)
	if compact {
		sections = append(sections, renderDashMenuCompact(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderDashMenu(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in board frame, centered in the full area
	return renderBoardFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
