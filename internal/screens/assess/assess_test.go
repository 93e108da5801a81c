package assess

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	interactions []store.InteractionEventData
	feedbacks    []store.FeedbackEventData
}

func (m *mockEventRepo) AppendInteraction(_ context.Context, data store.InteractionEventData) error {
	m.interactions = append(m.interactions, data)
	return nil
}
func (m *mockEventRepo) AppendFeedback(_ context.Context, data store.FeedbackEventData) error {
	m.feedbacks = append(m.feedbacks, data)
	return nil
}
func (m *mockEventRepo) AppendRosterChange(_ context.Context, _ store.RosterEventData) error {
	return nil
}
func (m *mockEventRepo) LastSequence(_ context.Context) (int64, error) {
	return int64(len(m.interactions) + len(m.feedbacks)), nil
}
func (m *mockEventRepo) InteractionCount(_ context.Context, _ string) (int, error) {
	return len(m.interactions), nil
}
func (m *mockEventRepo) LatestInteractionTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) RecentInteractions(_ context.Context, _ store.QueryOpts) ([]store.InteractionEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) FeedbackStats(_ context.Context) (store.FeedbackBreakdown, error) {
	return store.FeedbackBreakdown{}, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mod(id string, diff catalog.Difficulty, questions int, prereqs ...string) catalog.Module {
	m := catalog.Module{
		ID:            id,
		Title:         "Module " + id,
		Category:      catalog.CategoryAIBasics,
		Difficulty:    diff,
		Prerequisites: prereqs,
		EstimatedMins: 10,
	}
	for i := 0; i < questions; i++ {
		m.Questions = append(m.Questions, catalog.Question{
			Prompt:      "Pick the middle option.",
			Options:     []string{"no", "yes", "no"},
			Correct:     1,
			Explanation: "The middle one.",
		})
	}
	return m
}

func testAssessScreen(t *testing.T) (*AssessScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	cat, err := catalog.Load([]catalog.Module{
		mod("basics", catalog.Beginner, 2),
		mod("ethics", catalog.Intermediate, 1, "basics"),
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ros := roster.New()
	if err := ros.Add(roster.User{ID: "u-sam", Username: "sam", Role: roster.RoleStudent, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	pf := platform.New(cat, ros, platform.DefaultConfig())
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	return New(pf, eventRepo, snapRepo), eventRepo, snapRepo
}

// drive sends a key and keeps the concrete screen type.
func drive(t *testing.T, s *AssessScreen, msg tea.Msg) (*AssessScreen, tea.Cmd) {
	t.Helper()
	next, cmd := s.Update(msg)
	as, ok := next.(*AssessScreen)
	if !ok {
		t.Fatalf("Update returned %T, want *AssessScreen", next)
	}
	return as, cmd
}

func TestAssessScreen_Title(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	if s.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", s.Title(), "Assessment")
	}
}

func TestAssessScreen_StudentPick_View(t *testing.T) {
	s, _, _ := testAssessScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty student pick view")
	}
}

func TestAssessScreen_SelectStudent(t *testing.T) {
	s, _, _ := testAssessScreen(t)

	s, _ = drive(t, s, specialKey(tea.KeyEnter))

	if s.phase != phasePickModule {
		t.Fatalf("phase = %d, want phasePickModule", s.phase)
	}
	if s.student.Username != "sam" {
		t.Errorf("student = %q, want sam", s.student.Username)
	}
	// Only basics is unlocked and carries questions.
	if len(s.modules) != 1 || s.modules[0].ID != "basics" {
		t.Errorf("modules = %v, want [basics]", s.modules)
	}
	if s.target != catalog.Beginner {
		t.Errorf("target = %v, want Beginner", s.target)
	}
}

func TestAssessScreen_FullQuiz(t *testing.T) {
	s, eventRepo, snapRepo := testAssessScreen(t)

	s, _ = drive(t, s, specialKey(tea.KeyEnter)) // pick sam
	s, _ = drive(t, s, specialKey(tea.KeyEnter)) // pick basics

	if s.phase != phaseQuestion {
		t.Fatalf("phase = %d, want phaseQuestion", s.phase)
	}

	// Answer both questions correctly via number keys.
	for i := 0; i < 2; i++ {
		q := s.module.Questions[s.qIndex]
		s, _ = drive(t, s, keyPress(rune('1'+q.Correct)))
		if s.phase != phaseFeedback {
			t.Fatalf("question %d: phase = %d, want phaseFeedback", i, s.phase)
		}
		if s.lastFB == nil || !s.lastFB.Correct {
			t.Fatalf("question %d: expected correct feedback", i)
		}
		s, _ = drive(t, s, keyPress(' ')) // dismiss feedback
	}

	if s.phase != phaseSummary {
		t.Fatalf("phase = %d, want phaseSummary", s.phase)
	}
	if s.finalScore != 100 {
		t.Errorf("finalScore = %v, want 100", s.finalScore)
	}
	if s.rollingAvg != 100 || s.samples != 1 {
		t.Errorf("rolling = %v over %d, want 100 over 1", s.rollingAvg, s.samples)
	}

	// Two per-answer events plus the completion event.
	if len(eventRepo.interactions) != 3 {
		t.Errorf("interaction events = %d, want 3", len(eventRepo.interactions))
	}
	if len(eventRepo.feedbacks) != 2 {
		t.Errorf("feedback events = %d, want 2", len(eventRepo.feedbacks))
	}
	final := eventRepo.interactions[2]
	if final.CompletionPct != 100 || final.QuizScore == nil || *final.QuizScore != 100 {
		t.Errorf("final event = %+v, want completion 100 and score 100", final)
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}

	// Progress landed on the platform.
	rec := s.pf.Progress().Get("u-sam", "basics")
	if rec.CompletionPct != 100 {
		t.Errorf("completion = %v, want 100", rec.CompletionPct)
	}

	// Finishing basics unlocks ethics for the next run.
	if s.nextUp == nil || s.nextUp.ID != "ethics" {
		t.Errorf("nextUp = %v, want ethics", s.nextUp)
	}

	// Enter leaves the screen.
	_, cmd := drive(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a pop command from the summary")
	}
}

func TestAssessScreen_WrongAnswer(t *testing.T) {
	s, eventRepo, _ := testAssessScreen(t)

	s, _ = drive(t, s, specialKey(tea.KeyEnter))
	s, _ = drive(t, s, specialKey(tea.KeyEnter))

	s, _ = drive(t, s, keyPress('1')) // correct index is 1, option 1 is index 0

	if s.lastFB == nil || s.lastFB.Correct {
		t.Fatal("expected incorrect feedback")
	}
	if s.correct != 0 {
		t.Errorf("correct = %d, want 0", s.correct)
	}
	if len(eventRepo.feedbacks) != 1 || eventRepo.feedbacks[0].Correct {
		t.Errorf("feedback events = %+v, want one incorrect", eventRepo.feedbacks)
	}
}

func TestAssessScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testAssessScreen(t)

	s, _ = drive(t, s, specialKey(tea.KeyEnter))
	s, _ = drive(t, s, specialKey(tea.KeyEnter))

	if !s.CatchEsc() {
		t.Error("expected CatchEsc during a quiz")
	}

	s, _ = drive(t, s, specialKey(tea.KeyEscape))
	if !s.confirming {
		t.Fatal("expected quit confirmation after esc")
	}

	// N resumes the quiz.
	s, _ = drive(t, s, keyPress('n'))
	if s.confirming || s.phase != phaseQuestion {
		t.Error("expected quiz to resume after n")
	}

	// Y leaves the screen.
	s, _ = drive(t, s, specialKey(tea.KeyEscape))
	_, cmd := drive(t, s, keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after y")
	}
}

func TestAssessScreen_CatchEsc_PickPhases(t *testing.T) {
	s, _, _ := testAssessScreen(t)

	if s.CatchEsc() {
		t.Error("student pick should not catch esc")
	}
	s, _ = drive(t, s, specialKey(tea.KeyEnter))
	if s.CatchEsc() {
		t.Error("module pick should not catch esc")
	}
}

func TestAssessScreen_EmptyRoster(t *testing.T) {
	cat, err := catalog.Load([]catalog.Module{mod("basics", catalog.Beginner, 1)}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pf := platform.New(cat, roster.New(), platform.DefaultConfig())
	s := New(pf, &mockEventRepo{}, &mockSnapshotRepo{})

	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty empty-roster view")
	}
	_, cmd := drive(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a pop command from the empty roster state")
	}
}

func TestAssessScreen_KeyHints(t *testing.T) {
	s, _, _ := testAssessScreen(t)

	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected key hints in the pick phase")
	}

	s, _ = drive(t, s, specialKey(tea.KeyEnter))
	s, _ = drive(t, s, specialKey(tea.KeyEnter))
	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected key hints in the question phase")
	}
}
