package scenario

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) *ScenarioScreen {
	t.Helper()
	cat, err := catalog.Load(nil, []catalog.Scenario{
		{
			ID:        "chatbot-homework",
			Title:     "The Homework Helper",
			Context:   "A chatbot can write the whole essay.",
			Challenge: "A classmate asks whether to submit its output.",
			Options: []catalog.ScenarioOption{
				{Text: "Submit it", Consequence: "Nothing was learned.", EthicsScore: 1},
				{Text: "Use it to outline, write yourself", Consequence: "The tool supported the work.", EthicsScore: 9},
			},
			Considerations: []string{"Who is being graded?"},
		},
		{
			ID:        "photo-filter",
			Title:     "The Profile Photo",
			Context:   "An AI filter reshapes faces.",
			Challenge: "Use it on a dating profile?",
			Options: []catalog.ScenarioOption{
				{Text: "Heavily", Consequence: "The first date starts with surprise.", EthicsScore: 3},
				{Text: "Lightly, and say so", Consequence: "No one is misled.", EthicsScore: 8},
			},
		},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pf := platform.New(cat, roster.New(), platform.DefaultConfig())
	return New(pf)
}

func drive(t *testing.T, s *ScenarioScreen, msg tea.Msg) *ScenarioScreen {
	t.Helper()
	next, _ := s.Update(msg)
	sc, ok := next.(*ScenarioScreen)
	if !ok {
		t.Fatalf("Update returned %T, want *ScenarioScreen", next)
	}
	return sc
}

func TestScenarioScreen_Title(t *testing.T) {
	s := testScreen(t)
	if s.Title() != "Scenarios" {
		t.Errorf("Title = %q, want %q", s.Title(), "Scenarios")
	}
}

func TestScenarioScreen_ListNavigation(t *testing.T) {
	s := testScreen(t)

	s = drive(t, s, keyPress('j'))
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1", s.cursor)
	}
	s = drive(t, s, keyPress('j'))
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (clamped)", s.cursor)
	}
	s = drive(t, s, keyPress('k'))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
}

func TestScenarioScreen_PlayAndOutcome(t *testing.T) {
	s := testScreen(t)

	s = drive(t, s, specialKey(tea.KeyEnter))
	if s.phase != phasePlay {
		t.Fatalf("phase = %d, want phasePlay", s.phase)
	}
	if s.current.ID != "chatbot-homework" {
		t.Fatalf("current = %q, want chatbot-homework", s.current.ID)
	}

	// Option 2 is the high road.
	s = drive(t, s, keyPress('2'))
	if s.phase != phaseOutcome {
		t.Fatalf("phase = %d, want phaseOutcome", s.phase)
	}
	if s.outcome.Score != 9 || s.outcome.Band != feedback.EthicsGood {
		t.Errorf("outcome = %d/%s, want 9/good", s.outcome.Score, s.outcome.Band)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "The tool supported the work.") {
		t.Error("expected the consequence in the outcome view")
	}
	if !strings.Contains(view, "Who is being graded?") {
		t.Error("expected considerations in the outcome view")
	}

	// Any key returns to the list.
	s = drive(t, s, keyPress(' '))
	if s.phase != phaseList {
		t.Errorf("phase = %d, want phaseList", s.phase)
	}
}

func TestScenarioScreen_ArrowDecide(t *testing.T) {
	s := testScreen(t)

	s = drive(t, s, specialKey(tea.KeyEnter)) // open first scenario
	s = drive(t, s, specialKey(tea.KeyEnter)) // decide on the first option

	if s.phase != phaseOutcome {
		t.Fatalf("phase = %d, want phaseOutcome", s.phase)
	}
	if s.outcome.Score != 1 || s.outcome.Band != feedback.EthicsPoor {
		t.Errorf("outcome = %d/%s, want 1/poor", s.outcome.Score, s.outcome.Band)
	}
}

func TestScenarioScreen_EmptyCatalog(t *testing.T) {
	cat, err := catalog.Load(nil, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := New(platform.New(cat, roster.New(), platform.DefaultConfig()))

	if view := s.View(80, 24); !strings.Contains(view, "No scenarios") {
		t.Error("expected the empty state")
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a pop command from the empty state")
	}
}

func TestScenarioScreen_KeyHints(t *testing.T) {
	s := testScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in the list phase")
	}
	s = drive(t, s, specialKey(tea.KeyEnter))
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in the play phase")
	}
}
