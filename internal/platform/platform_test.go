package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/roster"
)

func mod(id string, cat catalog.Category, diff catalog.Difficulty, prereqs ...string) catalog.Module {
	return catalog.Module{
		ID:            id,
		Title:         "Module " + id,
		Category:      cat,
		Difficulty:    diff,
		Prerequisites: prereqs,
		Questions: []catalog.Question{{
			Prompt:  "Pick the last option.",
			Options: []string{"no", "no", "yes"},
			Correct: 2,
		}},
		EstimatedMins: 15,
	}
}

func testPlatform(t *testing.T) *Platform {
	t.Helper()
	cat, err := catalog.Load([]catalog.Module{
		mod("basics", catalog.CategoryAIBasics, catalog.Beginner),
		mod("everyday", catalog.CategoryPracticalSkills, catalog.Beginner),
		mod("ethics", catalog.CategoryEthicsBias, catalog.Intermediate, "basics"),
		mod("prompts", catalog.CategoryPracticalSkills, catalog.Intermediate, "basics"),
		mod("claims", catalog.CategoryCriticalThinking, catalog.Advanced, "ethics"),
	}, []catalog.Scenario{{
		ID:        "hiring-screen",
		Title:     "The Resume Screener",
		Context:   "An AI tool ranks job applicants.",
		Challenge: "The ranking favors two universities.",
		Options: []catalog.ScenarioOption{
			{Text: "Trust it", Consequence: "Bias goes unnoticed.", EthicsScore: 2},
			{Text: "Audit it", Consequence: "The skew is found.", EthicsScore: 8},
			{Text: "Spot-check it", Consequence: "Some bias is caught.", EthicsScore: 6},
		},
	}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ros := roster.New()
	for _, u := range []roster.User{
		{ID: "u-sam", Username: "sam", Role: roster.RoleStudent, CreatedAt: time.Now()},
		{ID: "u-pat", Username: "pat", Role: roster.RoleStudent, CreatedAt: time.Now()},
		{ID: "u-tara", Username: "tara", Role: roster.RoleTeacher, CreatedAt: time.Now()},
		{ID: "u-ada", Username: "ada", Role: roster.RoleAdmin, CreatedAt: time.Now()},
	} {
		if err := ros.Add(u); err != nil {
			t.Fatalf("Add(%s): %v", u.Username, err)
		}
	}
	return New(cat, ros, DefaultConfig())
}

func record(t *testing.T, p *Platform, userID, moduleID string, pct float64, mins int, quizScore *float64) {
	t.Helper()
	if _, err := p.RecordInteraction(Interaction{
		UserID:        userID,
		ModuleID:      moduleID,
		CompletionPct: pct,
		TimeSpentMins: mins,
		QuizScore:     quizScore,
	}); err != nil {
		t.Fatalf("RecordInteraction(%s, %s): %v", userID, moduleID, err)
	}
}

func score(v float64) *float64 { return &v }

func TestRecordInteraction(t *testing.T) {
	p := testPlatform(t)

	res, err := p.RecordInteraction(Interaction{
		UserID:        "u-sam",
		ModuleID:      "basics",
		CompletionPct: 60,
		TimeSpentMins: 20,
		QuizScore:     score(75),
	})
	if err != nil {
		t.Fatalf("RecordInteraction: %v", err)
	}
	if !res.Update.Created {
		t.Error("first interaction did not create the record")
	}
	if res.Feedback != nil {
		t.Error("interaction without a question produced feedback")
	}
	if got := p.Progress().Get("u-sam", "basics").CompletionPct; got != 60 {
		t.Errorf("stored completion = %.1f, want 60", got)
	}
}

func TestRecordInteraction_WithQuestion(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 30, 10, score(90))

	m, _ := p.Catalog().Module("basics")
	res, err := p.RecordInteraction(Interaction{
		UserID:        "u-sam",
		ModuleID:      "basics",
		CompletionPct: 60,
		TimeSpentMins: 5,
		QuizScore:     score(100),
		Question:      &m.Questions[0],
		Chosen:        2,
		Elapsed:       10 * time.Second,
	})
	if err != nil {
		t.Fatalf("RecordInteraction: %v", err)
	}
	if res.Feedback == nil {
		t.Fatal("interaction with a question produced no feedback")
	}
	if !res.Feedback.Correct {
		t.Error("correct answer classified as incorrect")
	}
	// Classification uses the history before this event.
	if res.Feedback.RollingAvg != 90 {
		t.Errorf("rolling average = %.1f, want 90 (pre-event history)", res.Feedback.RollingAvg)
	}
	if got := len(res.Update.After.QuizScores); got != 2 {
		t.Errorf("stored %d scores, want 2", got)
	}
}

func TestRecordInteraction_UnknownIDs(t *testing.T) {
	p := testPlatform(t)

	_, err := p.RecordInteraction(Interaction{UserID: "ghost", ModuleID: "basics", CompletionPct: 10})
	if !errors.Is(err, progress.ErrInvalidUser) {
		t.Errorf("unknown user: got %v, want ErrInvalidUser", err)
	}
	_, err = p.RecordInteraction(Interaction{UserID: "u-sam", ModuleID: "nope", CompletionPct: 10})
	if !errors.Is(err, progress.ErrInvalidModule) {
		t.Errorf("unknown module: got %v, want ErrInvalidModule", err)
	}
	if p.Progress().Count() != 0 {
		t.Error("failed interactions left records behind")
	}
}

func TestRecordInteraction_BadAnswerIndexStoresNothing(t *testing.T) {
	p := testPlatform(t)
	m, _ := p.Catalog().Module("basics")

	_, err := p.RecordInteraction(Interaction{
		UserID:        "u-sam",
		ModuleID:      "basics",
		CompletionPct: 50,
		Question:      &m.Questions[0],
		Chosen:        7,
	})
	if !errors.Is(err, feedback.ErrInvalidOption) {
		t.Fatalf("got %v, want ErrInvalidOption", err)
	}
	if p.Progress().Count() != 0 {
		t.Error("rejected interaction still updated progress")
	}
}

func TestPersonalizedPath(t *testing.T) {
	p := testPlatform(t)

	if _, err := p.PersonalizedPath("ghost"); !errors.Is(err, progress.ErrInvalidUser) {
		t.Errorf("unknown user: got %v, want ErrInvalidUser", err)
	}

	path, err := p.PersonalizedPath("u-sam")
	if err != nil {
		t.Fatalf("PersonalizedPath: %v", err)
	}
	want := []string{"basics", "everyday"}
	if len(path) != len(want) {
		t.Fatalf("path has %d modules, want %d", len(path), len(want))
	}
	for i, id := range want {
		if path[i].ID != id {
			t.Errorf("path[%d] = %s, want %s", i, path[i].ID, id)
		}
	}

	record(t, p, "u-sam", "basics", 100, 30, score(90))
	next, ok, err := p.NextModule("u-sam")
	if err != nil || !ok {
		t.Fatalf("NextModule: ok=%v err=%v", ok, err)
	}
	if next.ID == "basics" {
		t.Error("completed module recommended again")
	}
}

func TestAggregateProgress(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 100, 30, score(80))
	record(t, p, "u-sam", "ethics", 50, 20, score(60))

	sum, err := p.AggregateProgress("u-sam")
	if err != nil {
		t.Fatalf("AggregateProgress: %v", err)
	}
	if sum.OverallCompletion != 75 {
		t.Errorf("overall = %.1f, want 75", sum.OverallCompletion)
	}
	if sum.TotalTimeMins != 50 {
		t.Errorf("time = %d, want 50", sum.TotalTimeMins)
	}
	if sum.AvgQuizScore != 70 {
		t.Errorf("avg score = %.1f, want 70", sum.AvgQuizScore)
	}
	if sum.ModulesCompleted != 1 || sum.ModulesInProgress != 1 {
		t.Errorf("completed/in-progress = %d/%d, want 1/1", sum.ModulesCompleted, sum.ModulesInProgress)
	}
}

func TestClassRollup(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 100, 30, score(90))
	record(t, p, "u-pat", "basics", 50, 10, nil)

	if _, err := p.ClassRollup("ghost", nil); !errors.Is(err, progress.ErrInvalidUser) {
		t.Errorf("unknown requester: got %v, want ErrInvalidUser", err)
	}
	if _, err := p.ClassRollup("u-sam", nil); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("student requester: got %v, want ErrNotPermitted", err)
	}

	entries, err := p.ClassRollup("u-tara", []string{"u-pat", "u-sam", "u-pat", "ghost"})
	if err != nil {
		t.Fatalf("ClassRollup: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (duplicates and unknowns dropped)", len(entries))
	}
	if entries[0].User.ID != "u-sam" || entries[1].User.ID != "u-pat" {
		t.Errorf("order = [%s %s], want most complete first", entries[0].User.ID, entries[1].User.ID)
	}
	if entries[0].LastActive.IsZero() {
		t.Error("active user has zero LastActive")
	}

	// Empty id list covers the whole roster; admins may call too.
	all, err := p.ClassRollup("u-ada", nil)
	if err != nil {
		t.Fatalf("ClassRollup(admin): %v", err)
	}
	if len(all) != p.Roster().Len() {
		t.Errorf("whole-roster rollup has %d entries, want %d", len(all), p.Roster().Len())
	}
}

func TestClassRollup_TieBreaksOnUserID(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 40, 5, nil)
	record(t, p, "u-pat", "everyday", 40, 5, nil)

	entries, err := p.ClassRollup("u-tara", []string{"u-sam", "u-pat"})
	if err != nil {
		t.Fatalf("ClassRollup: %v", err)
	}
	if entries[0].User.ID != "u-pat" {
		t.Errorf("tied completion should order by user id, got %s first", entries[0].User.ID)
	}
}

func TestModuleCompletionRates(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 100, 30, nil)
	record(t, p, "u-pat", "basics", 50, 10, nil)
	// Teacher activity must not count toward class rates.
	record(t, p, "u-tara", "basics", 100, 5, nil)

	if _, err := p.ModuleCompletionRates("ghost", nil); !errors.Is(err, progress.ErrInvalidUser) {
		t.Errorf("unknown requester: got %v, want ErrInvalidUser", err)
	}
	if _, err := p.ModuleCompletionRates("u-sam", nil); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("student requester: got %v, want ErrNotPermitted", err)
	}

	rates, err := p.ModuleCompletionRates("u-tara", nil)
	if err != nil {
		t.Fatalf("ModuleCompletionRates: %v", err)
	}
	if len(rates) != p.Catalog().Len() {
		t.Fatalf("got %d rates, want one per module", len(rates))
	}
	var basics ModuleRate
	for _, r := range rates {
		if r.Module.ID == "basics" {
			basics = r
		}
	}
	if basics.Population != 2 {
		t.Errorf("default population = %d, want the 2 students", basics.Population)
	}
	if basics.AvgCompletion != 75 {
		t.Errorf("basics average = %.1f, want 75", basics.AvgCompletion)
	}
	if basics.Completions != 1 {
		t.Errorf("basics completions = %d, want 1", basics.Completions)
	}

	// Named ids narrow the population; unknowns are skipped.
	narrow, err := p.ModuleCompletionRates("u-ada", []string{"u-sam", "ghost", "u-sam"})
	if err != nil {
		t.Fatalf("ModuleCompletionRates(subset): %v", err)
	}
	for _, r := range narrow {
		if r.Module.ID != "basics" {
			continue
		}
		if r.Population != 1 || r.AvgCompletion != 100 || r.Completions != 1 {
			t.Errorf("subset rate = %d/%d avg %.1f, want 1/1 avg 100", r.Completions, r.Population, r.AvgCompletion)
		}
	}
}

func TestResetProgress(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 100, 30, score(90))
	record(t, p, "u-sam", "ethics", 40, 10, nil)

	if err := p.ResetProgress("u-tara", "u-sam"); !errors.Is(err, ErrNotPermitted) {
		t.Errorf("teacher reset: got %v, want ErrNotPermitted", err)
	}

	// One bad module id rejects the whole call.
	if err := p.ResetProgress("u-ada", "u-sam", "basics", "nope"); !errors.Is(err, progress.ErrInvalidModule) {
		t.Errorf("got %v, want ErrInvalidModule", err)
	}
	if p.Progress().Get("u-sam", "basics").CompletionPct != 100 {
		t.Error("rejected reset still cleared a record")
	}

	if err := p.ResetProgress("u-ada", "u-sam"); err != nil {
		t.Fatalf("ResetProgress: %v", err)
	}
	if p.Progress().Count() != 0 {
		t.Error("reset left records behind")
	}
}

func TestSnapshotRestore(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 100, 30, score(90))
	record(t, p, "u-pat", "everyday", 40, 10, nil)

	snap := p.Snapshot()
	if len(snap.Modules) != 5 || len(snap.Users) != 4 || len(snap.Records) != 2 {
		t.Fatalf("snapshot shape %d/%d/%d, want 5 modules, 4 users, 2 records",
			len(snap.Modules), len(snap.Users), len(snap.Records))
	}

	fresh := New(catalog.New(), roster.New(), DefaultConfig())
	if err := fresh.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	sum, err := fresh.AggregateProgress("u-sam")
	if err != nil {
		t.Fatalf("AggregateProgress after restore: %v", err)
	}
	if sum.OverallCompletion != 100 {
		t.Errorf("restored overall = %.1f, want 100", sum.OverallCompletion)
	}
	path, err := fresh.PersonalizedPath("u-sam")
	if err != nil || len(path) == 0 {
		t.Fatalf("path after restore: %v (%d modules)", err, len(path))
	}
}

func TestRestore_RejectsOutOfRange(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 60, 10, nil)

	bad := p.Snapshot()
	bad.Records = append(bad.Records, progress.Record{
		UserID:        "u-pat",
		ModuleID:      "ethics",
		CompletionPct: 150,
	})

	victim := testPlatform(t)
	record(t, victim, "u-pat", "everyday", 30, 5, nil)
	if err := victim.Restore(bad); !errors.Is(err, progress.ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
	// Failed restore leaves the old state intact.
	if victim.Progress().Get("u-pat", "everyday").CompletionPct != 30 {
		t.Error("failed restore corrupted existing state")
	}
}

func TestPracticeScenario(t *testing.T) {
	p := testPlatform(t)

	out, err := p.PracticeScenario("hiring-screen", 1)
	if err != nil {
		t.Fatalf("PracticeScenario: %v", err)
	}
	if out.Band != feedback.EthicsGood {
		t.Errorf("band = %q, want good", out.Band)
	}

	if _, err := p.PracticeScenario("nope", 0); !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("got %v, want ErrUnknownScenario", err)
	}
}

func TestTargetDifficulty(t *testing.T) {
	p := testPlatform(t)
	record(t, p, "u-sam", "basics", 100, 30, score(95))

	d, err := p.TargetDifficulty("u-sam")
	if err != nil {
		t.Fatalf("TargetDifficulty: %v", err)
	}
	if d != catalog.Intermediate {
		t.Errorf("target = %s, want intermediate", d)
	}
}

func TestStrongestCategory(t *testing.T) {
	p := testPlatform(t)

	if _, _, ok := p.StrongestCategory("u-sam"); ok {
		t.Error("expected no strongest category for an untouched user")
	}

	// ai-basics has one module; 50% there beats nothing else.
	record(t, p, "u-sam", "basics", 50, 10, nil)
	cat, rate, ok := p.StrongestCategory("u-sam")
	if !ok || cat != catalog.CategoryAIBasics || rate != 50 {
		t.Errorf("strongest = %s %.0f ok=%v, want ai-basics 50 true", cat, rate, ok)
	}

	// practical-skills has two modules; covering both pulls ahead.
	record(t, p, "u-sam", "everyday", 80, 10, nil)
	record(t, p, "u-sam", "prompts", 90, 10, nil)
	cat, rate, ok = p.StrongestCategory("u-sam")
	if !ok || cat != catalog.CategoryPracticalSkills || rate != 85 {
		t.Errorf("strongest = %s %.0f ok=%v, want practical-skills 85 true", cat, rate, ok)
	}
}
