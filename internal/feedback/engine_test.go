package feedback

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/progress"
)

type fakeSource map[string]progress.Record

func (f fakeSource) Get(userID, moduleID string) progress.Record {
	if rec, ok := f[userID+"/"+moduleID]; ok {
		return rec
	}
	return progress.Record{UserID: userID, ModuleID: moduleID}
}

func withScores(scores ...float64) fakeSource {
	return fakeSource{
		"u1/easy": {UserID: "u1", ModuleID: "easy", QuizScores: scores},
		"u1/hard": {UserID: "u1", ModuleID: "hard", QuizScores: scores},
	}
}

func testEngine(t *testing.T, source ProgressSource) *Engine {
	t.Helper()
	cat, err := catalog.Load([]catalog.Module{
		{ID: "easy", Title: "Easy", Category: catalog.CategoryAIBasics, Difficulty: catalog.Beginner},
		{ID: "hard", Title: "Hard", Category: catalog.CategoryCriticalThinking, Difficulty: catalog.Advanced},
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewEngine(cat, source, DefaultConfig())
}

var quizQ = catalog.Question{
	Prompt:      "Which of these is NOT a type of machine learning?",
	Options:     []string{"Supervised", "Unsupervised", "Reinforcement", "Quantum Learning"},
	Correct:     3,
	Explanation: "Quantum Learning is not a standard category of machine learning.",
}

func TestTierFor(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		avg  float64
		want Tier
	}{
		{0, TierStruggling},
		{49.9, TierStruggling},
		{50, TierProgressing},
		{79.9, TierProgressing},
		{80, TierProficient},
		{100, TierProficient},
	}
	for _, tt := range tests {
		if got := cfg.TierFor(tt.avg); got != tt.want {
			t.Errorf("TierFor(%.1f) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestAssess_Correctness(t *testing.T) {
	eng := testEngine(t, withScores(70))

	res, err := eng.Assess("u1", "easy", quizQ, 3, 10*time.Second)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if !res.Correct {
		t.Error("correct option classified as incorrect")
	}

	res, err = eng.Assess("u1", "easy", quizQ, 0, 10*time.Second)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Correct {
		t.Error("wrong option classified as correct")
	}
}

func TestAssess_InvalidOption(t *testing.T) {
	eng := testEngine(t, withScores())
	for _, chosen := range []int{-1, 4, 99} {
		if _, err := eng.Assess("u1", "easy", quizQ, chosen, time.Second); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("chosen %d: got %v, want ErrInvalidOption", chosen, err)
		}
	}
}

func TestAssess_SixClasses(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		chosen int
		want   Class
	}{
		{"struggling correct", []float64{20, 30}, 3, ClassStrugglingCorrect},
		{"struggling incorrect", []float64{20, 30}, 0, ClassStrugglingIncorrect},
		{"progressing correct", []float64{60, 70}, 3, ClassProgressingCorrect},
		{"progressing incorrect", []float64{60, 70}, 0, ClassProgressingIncorrect},
		{"proficient correct", []float64{90, 95}, 3, ClassProficientCorrect},
		{"proficient incorrect", []float64{90, 95}, 0, ClassProficientIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := testEngine(t, withScores(tt.scores...))
			res, err := eng.Assess("u1", "easy", quizQ, tt.chosen, 10*time.Second)
			if err != nil {
				t.Fatalf("Assess: %v", err)
			}
			if res.Class != tt.want {
				t.Errorf("got class %q, want %q", res.Class, tt.want)
			}
			if res.Message == "" {
				t.Error("class has no message")
			}
			if len(res.Suggestions) == 0 {
				t.Error("class has no suggestions")
			}
		})
	}
}

func TestAssess_StrugglingMissSignalsDecrease(t *testing.T) {
	// Rolling average 40 with an incorrect answer.
	eng := testEngine(t, withScores(40))
	res, err := eng.Assess("u1", "easy", quizQ, 0, 10*time.Second)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Adjustment != AdjustDecrease {
		t.Errorf("got adjustment %q, want decrease", res.Adjustment)
	}
	if res.Class != ClassStrugglingIncorrect {
		t.Errorf("got class %q, want struggling-incorrect", res.Class)
	}
}

func TestAssess_ProficientIncrease(t *testing.T) {
	eng := testEngine(t, withScores(90, 95))

	// Correct on a module below the hardest available difficulty.
	res, err := eng.Assess("u1", "easy", quizQ, 3, 10*time.Second)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Adjustment != AdjustIncrease {
		t.Errorf("easy module: got %q, want increase", res.Adjustment)
	}

	// Correct on the hardest available difficulty holds.
	res, err = eng.Assess("u1", "hard", quizQ, 3, 10*time.Second)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Adjustment != AdjustHold {
		t.Errorf("hard module: got %q, want hold", res.Adjustment)
	}
}

func TestAssess_HoldOtherwise(t *testing.T) {
	// Progressing tier holds regardless of correctness.
	for _, chosen := range []int{3, 0} {
		eng := testEngine(t, withScores(60, 70))
		res, err := eng.Assess("u1", "easy", quizQ, chosen, 10*time.Second)
		if err != nil {
			t.Fatalf("Assess: %v", err)
		}
		if res.Adjustment != AdjustHold {
			t.Errorf("chosen %d: got %q, want hold", chosen, res.Adjustment)
		}
	}
}

func TestAssess_NoHistoryIsStruggling(t *testing.T) {
	eng := testEngine(t, fakeSource{})
	res, err := eng.Assess("u1", "easy", quizQ, 3, 10*time.Second)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Tier != TierStruggling {
		t.Errorf("got tier %q, want struggling (no history averages 0)", res.Tier)
	}
	if res.Samples != 0 {
		t.Errorf("got %d samples, want 0", res.Samples)
	}
}

func TestAssess_Rushed(t *testing.T) {
	eng := testEngine(t, withScores(60))

	res, _ := eng.Assess("u1", "easy", quizQ, 0, 2*time.Second)
	if !res.Rushed {
		t.Error("fast incorrect answer not flagged as rushed")
	}
	res, _ = eng.Assess("u1", "easy", quizQ, 3, 2*time.Second)
	if res.Rushed {
		t.Error("fast correct answer flagged as rushed")
	}
	res, _ = eng.Assess("u1", "easy", quizQ, 0, 30*time.Second)
	if res.Rushed {
		t.Error("slow incorrect answer flagged as rushed")
	}
	res, _ = eng.Assess("u1", "easy", quizQ, 0, 0)
	if res.Rushed {
		t.Error("unknown elapsed time flagged as rushed")
	}
}
