package assess

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"

	"github.com/google/uuid"
)

type phase int

const (
	phasePickStudent phase = iota
	phasePickModule
	phaseQuestion
	phaseFeedback
	phaseSummary
)

// AssessScreen runs one assessment: pick a student, pick a module off
// their path, answer its questions, then record the result.
type AssessScreen struct {
	pf        *platform.Platform
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	phase      phase
	errMsg     string
	confirming bool // esc pressed mid-quiz

	students  []roster.User
	modules   []catalog.Module
	reviewing bool // path exhausted, offering completed modules again
	target    catalog.Difficulty
	cursor    int

	student roster.User
	module  catalog.Module

	sessionID string
	qIndex    int
	answered  int
	correct   int
	choice    components.MultiChoice
	quizStart time.Time
	qStart    time.Time
	lastFB    *feedback.Result

	finalScore float64
	rollingAvg float64
	samples    int
	totalMins  int
	nextUp     *catalog.Module
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)
var _ screen.EscCatcher = (*AssessScreen)(nil)

// New creates an AssessScreen with injected dependencies.
func New(pf *platform.Platform, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *AssessScreen {
	return &AssessScreen{
		pf:        pf,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		students:  pf.Roster().Users(),
	}
}

func (s *AssessScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessScreen) Title() string {
	return "Assessment"
}

// CatchEsc keeps esc inside the screen while a quiz is running so it
// can confirm before abandoning it.
func (s *AssessScreen) CatchEsc() bool {
	return s.phase == phaseQuestion || s.phase == phaseFeedback
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "End assessment"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phasePickStudent, phasePickModule:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "End early"},
		}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
}

func (s *AssessScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.confirming {
		return renderQuitConfirm(width, height)
	}
	switch s.phase {
	case phasePickStudent:
		return s.renderStudentPick(width, height)
	case phasePickModule:
		return s.renderModulePick(width, height)
	case phaseQuestion:
		return s.renderQuestion(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderSummary(width, height)
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	return s, nil
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Quit confirmation dialog.
	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			return s.endEarly()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch s.phase {
	case phasePickStudent:
		return s.handlePickStudent(key)
	case phasePickModule:
		return s.handlePickModule(key)
	case phaseQuestion:
		return s.handleQuestion(msg)
	case phaseFeedback:
		return s.advance()
	default: // summary
		if key == "enter" || key == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
}

func (s *AssessScreen) handlePickStudent(key string) (screen.Screen, tea.Cmd) {
	if len(s.students) == 0 {
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
		if s.cursor < len(s.students)-1 {
			s.cursor++
		}
	case "enter":
		return s.selectStudent(s.students[s.cursor])
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// selectStudent builds the module pick list: the student's
// recommendation order, filtered to modules that carry questions. When
// the path is exhausted the whole assessable catalog is offered for
// review instead.
func (s *AssessScreen) selectStudent(u roster.User) (screen.Screen, tea.Cmd) {
	path, err := s.pf.PersonalizedPath(u.ID)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	target, err := s.pf.TargetDifficulty(u.ID)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.modules = nil
	s.reviewing = false
	for _, m := range path {
		if len(m.Questions) > 0 {
			s.modules = append(s.modules, m)
		}
	}
	if len(s.modules) == 0 {
		for _, m := range s.pf.Catalog().Modules() {
			if len(m.Questions) > 0 {
				s.modules = append(s.modules, m)
			}
		}
		s.reviewing = true
	}

	s.student = u
	s.target = target
	s.cursor = 0
	s.phase = phasePickModule
	return s, nil
}

func (s *AssessScreen) handlePickModule(key string) (screen.Screen, tea.Cmd) {
	if len(s.modules) == 0 {
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
		if s.cursor < len(s.modules)-1 {
			s.cursor++
		}
	case "enter":
		return s.startQuiz(s.modules[s.cursor])
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *AssessScreen) startQuiz(m catalog.Module) (screen.Screen, tea.Cmd) {
	s.module = m
	s.sessionID = uuid.New().String()
	s.qIndex = 0
	s.answered = 0
	s.correct = 0
	s.quizStart = time.Now()
	s.loadQuestion()
	return s, nil
}

func (s *AssessScreen) loadQuestion() {
	q := s.module.Questions[s.qIndex]
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
	s.qStart = time.Now()
	s.phase = phaseQuestion
}

func (s *AssessScreen) handleQuestion(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		s.confirming = true
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.submitAnswer()
	}
	return s, cmd
}

// submitAnswer classifies and records the current answer.
func (s *AssessScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.module.Questions[s.qIndex]
	elapsed := time.Since(s.qStart)

	res, err := s.pf.RecordInteraction(platform.Interaction{
		UserID:   s.student.ID,
		ModuleID: s.module.ID,
		Question: &q,
		Chosen:   s.choice.ChosenIndex,
		Elapsed:  elapsed,
	})
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.answered++
	if res.Feedback.Correct {
		s.correct++
	}
	s.lastFB = res.Feedback

	// Persist per-answer events.
	ctx := context.Background()
	_ = s.eventRepo.AppendInteraction(ctx, store.InteractionEventData{
		UserID:             s.student.ID,
		ModuleID:           s.module.ID,
		Created:            res.Update.Created,
		CompletionAdvanced: res.Update.CompletionAdvanced,
	})
	fb := res.Feedback
	_ = s.eventRepo.AppendFeedback(ctx, store.FeedbackEventData{
		SessionID:  s.sessionID,
		UserID:     s.student.ID,
		ModuleID:   s.module.ID,
		Prompt:     q.Prompt,
		Chosen:     s.choice.ChosenIndex,
		Correct:    fb.Correct,
		Tier:       string(fb.Tier),
		Class:      string(fb.Class),
		Adjustment: string(fb.Adjustment),
		Rushed:     fb.Rushed,
		ElapsedMs:  elapsed.Milliseconds(),
	})

	s.phase = phaseFeedback
	return s, nil
}

// advance moves past the feedback overlay.
func (s *AssessScreen) advance() (screen.Screen, tea.Cmd) {
	s.lastFB = nil
	if s.qIndex+1 < len(s.module.Questions) {
		s.qIndex++
		s.loadQuestion()
		return s, nil
	}
	return s.finishQuiz()
}

// finishQuiz records the completed assessment: full completion, time
// spent, and the quiz score, then snapshots the platform state.
func (s *AssessScreen) finishQuiz() (screen.Screen, tea.Cmd) {
	score := 100 * float64(s.correct) / float64(len(s.module.Questions))
	elapsed := time.Since(s.quizStart)
	mins := max(1, int((elapsed+time.Minute-1)/time.Minute))

	res, err := s.pf.RecordInteraction(platform.Interaction{
		UserID:        s.student.ID,
		ModuleID:      s.module.ID,
		CompletionPct: 100,
		TimeSpentMins: mins,
		QuizScore:     &score,
	})
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	ctx := context.Background()
	_ = s.eventRepo.AppendInteraction(ctx, store.InteractionEventData{
		UserID:             s.student.ID,
		ModuleID:           s.module.ID,
		CompletionPct:      100,
		TimeSpentMins:      mins,
		QuizScore:          &score,
		Created:            res.Update.Created,
		CompletionAdvanced: res.Update.CompletionAdvanced,
	})
	_ = store.SaveSnapshot(ctx, s.snapRepo, s.eventRepo, s.pf.Snapshot())

	s.finalScore = score
	s.rollingAvg, s.samples = res.Update.After.AverageScore()
	s.totalMins = mins
	s.nextUp = nil
	if next, ok, err := s.pf.NextModule(s.student.ID); err == nil && ok {
		s.nextUp = &next
	}
	s.phase = phaseSummary
	return s, nil
}

// endEarly leaves a quiz before its last question. Answered questions
// are already in the log; no completion or score is recorded.
func (s *AssessScreen) endEarly() (screen.Screen, tea.Cmd) {
	if s.answered > 0 {
		_ = store.SaveSnapshot(context.Background(), s.snapRepo, s.eventRepo, s.pf.Snapshot())
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}
