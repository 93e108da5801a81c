package progress

import (
	"errors"
	"reflect"
	"testing"
)

// fixed directories so store tests need no catalog or roster.
type fakeUsers map[string]bool

func (f fakeUsers) HasUser(id string) bool { return f[id] }

type fakeModules map[string]bool

func (f fakeModules) HasModule(id string) bool { return f[id] }

func testStore() *Store {
	return NewStore(
		fakeUsers{"u1": true, "u2": true},
		fakeModules{"m1": true, "m2": true, "m3": true},
	)
}

func score(v float64) *float64 { return &v }

func TestUpdate_CreatesRecord(t *testing.T) {
	s := testStore()
	res, err := s.Update("u1", "m1", 40, 10, score(80))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !res.Created {
		t.Error("first update did not report Created")
	}
	if !res.CompletionAdvanced {
		t.Error("first update did not report CompletionAdvanced")
	}
	if res.After.CompletionPct != 40 {
		t.Errorf("got completion %.1f, want 40", res.After.CompletionPct)
	}
	if res.After.TimeSpentMins != 10 {
		t.Errorf("got time %d, want 10", res.After.TimeSpentMins)
	}
	if len(res.After.QuizScores) != 1 || res.After.QuizScores[0] != 80 {
		t.Errorf("got scores %v, want [80]", res.After.QuizScores)
	}
}

func TestUpdate_UnknownIDs(t *testing.T) {
	s := testStore()
	if _, err := s.Update("ghost", "m1", 10, 0, nil); !errors.Is(err, ErrInvalidUser) {
		t.Errorf("unknown user: got %v, want ErrInvalidUser", err)
	}
	if _, err := s.Update("u1", "ghost", 10, 0, nil); !errors.Is(err, ErrInvalidModule) {
		t.Errorf("unknown module: got %v, want ErrInvalidModule", err)
	}
	if s.Count() != 0 {
		t.Errorf("failed updates wrote records: count %d", s.Count())
	}
}

func TestUpdate_OutOfRange(t *testing.T) {
	s := testStore()
	if _, err := s.Update("u1", "m1", 10, -5, nil); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative time: got %v, want ErrOutOfRange", err)
	}
	if _, err := s.Update("u1", "m1", 10, 0, score(101)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("score 101: got %v, want ErrOutOfRange", err)
	}
	if _, err := s.Update("u1", "m1", 10, 0, score(-1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("score -1: got %v, want ErrOutOfRange", err)
	}
	// No partial application: the rejected updates must not have
	// created or touched the record.
	if s.Count() != 0 {
		t.Errorf("rejected updates wrote records: count %d", s.Count())
	}
}

func TestUpdate_CompletionClamped(t *testing.T) {
	s := testStore()
	res, err := s.Update("u1", "m1", 120, 0, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.After.CompletionPct != 100.0 {
		t.Errorf("got completion %.1f, want 100.0", res.After.CompletionPct)
	}

	res, err = s.Update("u1", "m2", -15, 0, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.After.CompletionPct != 0 {
		t.Errorf("got completion %.1f, want 0", res.After.CompletionPct)
	}
}

func TestUpdate_Monotonic(t *testing.T) {
	s := testStore()

	// Arbitrary out-of-order sequence: the stored percentage must never
	// decrease at any step.
	inputs := []float64{30, 80, 55, 80, 10, 95, 95, 40}
	high := 0.0
	for _, pct := range inputs {
		res, err := s.Update("u1", "m1", pct, 1, nil)
		if err != nil {
			t.Fatalf("Update(%v): %v", pct, err)
		}
		if pct > high {
			high = pct
		}
		if res.After.CompletionPct != high {
			t.Fatalf("after reporting %.0f: completion %.1f, want %.1f", pct, res.After.CompletionPct, high)
		}
		if res.After.CompletionPct < res.Before.CompletionPct {
			t.Fatalf("completion decreased: %.1f -> %.1f", res.Before.CompletionPct, res.After.CompletionPct)
		}
	}
}

func TestUpdate_RegressionStillMergesHistory(t *testing.T) {
	s := testStore()
	if _, err := s.Update("u1", "m1", 80, 10, score(90)); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Lower completion: percentage holds, but time and score merge.
	res, err := s.Update("u1", "m1", 30, 5, score(60))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.CompletionAdvanced {
		t.Error("regression reported CompletionAdvanced")
	}
	if res.After.CompletionPct != 80 {
		t.Errorf("got completion %.1f, want 80", res.After.CompletionPct)
	}
	if res.After.TimeSpentMins != 15 {
		t.Errorf("got time %d, want 15", res.After.TimeSpentMins)
	}
	if !reflect.DeepEqual(res.After.QuizScores, []float64{90, 60}) {
		t.Errorf("got scores %v, want [90 60]", res.After.QuizScores)
	}
}

func TestGet_NoProgressSentinel(t *testing.T) {
	s := testStore()
	rec := s.Get("u1", "m1")
	if rec.CompletionPct != 0 || len(rec.QuizScores) != 0 || rec.TimeSpentMins != 0 {
		t.Errorf("sentinel record carries progress: %+v", rec)
	}
	if rec.UserID != "u1" || rec.ModuleID != "m1" {
		t.Errorf("sentinel record ids wrong: %+v", rec)
	}
	// Unknown ids also read as the sentinel; reads never fail.
	if got := s.Get("ghost", "ghost"); got.Started() {
		t.Errorf("unknown ids returned progress: %+v", got)
	}
}

func TestCompletedModules(t *testing.T) {
	s := testStore()
	s.Update("u1", "m1", 100, 0, nil)
	s.Update("u1", "m2", 99.9, 0, nil)

	got := s.CompletedModules("u1")
	if !reflect.DeepEqual(got, map[string]bool{"m1": true}) {
		t.Errorf("got %v, want only m1 (100.0 exactly counts)", got)
	}
}

func TestAggregate(t *testing.T) {
	s := testStore()
	s.Update("u1", "m1", 100, 30, score(80))
	s.Update("u1", "m2", 50, 20, score(60))
	s.Update("u1", "m2", 50, 0, score(70))

	sum := s.Aggregate("u1")
	if sum.OverallCompletion != 75 {
		t.Errorf("got overall %.1f, want 75", sum.OverallCompletion)
	}
	if sum.TotalTimeMins != 50 {
		t.Errorf("got time %d, want 50", sum.TotalTimeMins)
	}
	if sum.ScoreCount != 3 {
		t.Errorf("got %d scores, want 3", sum.ScoreCount)
	}
	if sum.AvgQuizScore != 70 {
		t.Errorf("got avg %.1f, want 70", sum.AvgQuizScore)
	}
	if sum.ModulesCompleted != 1 || sum.ModulesInProgress != 1 {
		t.Errorf("got %d completed / %d in progress, want 1/1", sum.ModulesCompleted, sum.ModulesInProgress)
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := testStore()
	sum := s.Aggregate("u1")
	if sum != (Summary{}) {
		t.Errorf("empty aggregate: got %+v", sum)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	s := testStore()
	s.Update("u1", "m1", 33.3, 7, score(66.6))
	s.Update("u1", "m2", 12.5, 3, score(91.2))
	s.Update("u1", "m3", 75, 11, nil)

	first := s.Aggregate("u1")
	second := s.Aggregate("u1")
	if first != second {
		t.Errorf("aggregate not idempotent:\n first %+v\nsecond %+v", first, second)
	}
}

func TestReset(t *testing.T) {
	s := testStore()
	s.Update("u1", "m1", 80, 10, score(90))

	if err := s.Reset("u1", "m1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if rec := s.Get("u1", "m1"); rec.Started() {
		t.Errorf("record survives reset: %+v", rec)
	}
	// Clearing again is a no-op, not an error.
	if err := s.Reset("u1", "m1"); err != nil {
		t.Errorf("second reset: %v", err)
	}
	if err := s.Reset("ghost", "m1"); !errors.Is(err, ErrInvalidUser) {
		t.Errorf("unknown user: got %v, want ErrInvalidUser", err)
	}
}

func TestPut_Validates(t *testing.T) {
	s := testStore()

	good := Record{UserID: "u1", ModuleID: "m1", CompletionPct: 60, TimeSpentMins: 5, QuizScores: []float64{70}}
	if err := s.Put(good); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got := s.Get("u1", "m1"); got.CompletionPct != 60 {
		t.Errorf("got completion %.1f, want 60", got.CompletionPct)
	}

	bad := good
	bad.CompletionPct = 140
	if err := s.Put(bad); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("completion 140: got %v, want ErrOutOfRange (restore rejects, never clamps)", err)
	}

	bad = good
	bad.QuizScores = []float64{70, 130}
	if err := s.Put(bad); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("score 130: got %v, want ErrOutOfRange", err)
	}
}

func TestRecords_SortedAndCopied(t *testing.T) {
	s := testStore()
	s.Update("u1", "m2", 10, 0, nil)
	s.Update("u1", "m1", 20, 0, score(50))

	recs := s.Records("u1")
	if len(recs) != 2 || recs[0].ModuleID != "m1" || recs[1].ModuleID != "m2" {
		t.Fatalf("got %+v, want m1 then m2", recs)
	}

	recs[0].QuizScores[0] = 999
	if s.Get("u1", "m1").QuizScores[0] != 50 {
		t.Error("mutating a returned record leaked into the store")
	}
}
