package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/roster"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot carrying real platform state.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: SnapshotVersion,
			State: platform.Snapshot{
				Users: []roster.User{
					{ID: "u-sam", Username: "sam", Role: roster.RoleStudent, CreatedAt: now},
				},
				Records: []progress.Record{
					{UserID: "u-sam", ModuleID: "intro-ai", CompletionPct: 60, TimeSpentMins: 20, QuizScores: []float64{75}, LastUpdated: now},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("data.version = %d, want %d", snap.Data.Version, SnapshotVersion)
	}
	if len(snap.Data.State.Users) != 1 || snap.Data.State.Users[0].ID != "u-sam" {
		t.Errorf("users did not round-trip: %+v", snap.Data.State.Users)
	}
	recs := snap.Data.State.Records
	if len(recs) != 1 || recs[0].CompletionPct != 60 || len(recs[0].QuizScores) != 1 {
		t.Errorf("records did not round-trip: %+v", recs)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base,
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// All three share a timestamp; insertion order decides.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	cur, err := sc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Errorf("current = %d, want 5", cur)
	}
}

func TestAppendInteractionAndQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	last, err := repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence (empty): %v", err)
	}
	if last != 0 {
		t.Errorf("empty log last sequence = %d, want 0", last)
	}

	zero, err := repo.LatestInteractionTime(ctx, "u-sam")
	if err != nil {
		t.Fatalf("latest time (empty): %v", err)
	}
	if !zero.IsZero() {
		t.Error("expected zero time with no events")
	}

	score := 80.0
	events := []InteractionEventData{
		{UserID: "u-sam", ModuleID: "intro-ai", CompletionPct: 30, TimeSpentMins: 10, Created: true, CompletionAdvanced: true},
		{UserID: "u-sam", ModuleID: "intro-ai", CompletionPct: 60, TimeSpentMins: 15, QuizScore: &score, CompletionAdvanced: true},
		{UserID: "u-pat", ModuleID: "intro-ai", CompletionPct: 20, TimeSpentMins: 5, Created: true, CompletionAdvanced: true},
	}
	for i, ev := range events {
		if err := repo.AppendInteraction(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	total, err := repo.InteractionCount(ctx, "")
	if err != nil {
		t.Fatalf("count all: %v", err)
	}
	if total != 3 {
		t.Errorf("total interactions = %d, want 3", total)
	}
	forSam, err := repo.InteractionCount(ctx, "u-sam")
	if err != nil {
		t.Fatalf("count u-sam: %v", err)
	}
	if forSam != 2 {
		t.Errorf("u-sam interactions = %d, want 2", forSam)
	}

	ts, err := repo.LatestInteractionTime(ctx, "u-sam")
	if err != nil {
		t.Fatalf("latest time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero latest interaction time")
	}

	recent, err := repo.RecentInteractions(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent returned %d events, want 2", len(recent))
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Error("recent events not ordered newest first")
	}
	if recent[1].QuizScore == nil || *recent[1].QuizScore != 80 {
		t.Errorf("quiz score did not round-trip: %+v", recent[1].QuizScore)
	}

	last, err = repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if last != 3 {
		t.Errorf("last sequence = %d, want 3", last)
	}
}

func TestFeedbackStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []FeedbackEventData{
		{UserID: "u-sam", ModuleID: "intro-ai", Prompt: "q1", Chosen: 2, Correct: true, Tier: "proficient", Class: "proficient-correct", Adjustment: "increase", ElapsedMs: 9000},
		{UserID: "u-sam", ModuleID: "intro-ai", Prompt: "q2", Chosen: 0, Correct: false, Tier: "struggling", Class: "struggling-incorrect", Adjustment: "decrease", Rushed: true, ElapsedMs: 1200},
		{UserID: "u-pat", ModuleID: "intro-ai", Prompt: "q1", Chosen: 1, Correct: false, Tier: "progressing", Class: "progressing-incorrect", Adjustment: "hold", ElapsedMs: 20000},
	}
	for i, ev := range events {
		if err := repo.AppendFeedback(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.FeedbackStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Correct != 1 || stats.Rushed != 1 {
		t.Errorf("stats = %d total, %d correct, %d rushed; want 3/1/1", stats.Total, stats.Correct, stats.Rushed)
	}
	if stats.ByClass["struggling-incorrect"] != 1 {
		t.Errorf("class counts = %v", stats.ByClass)
	}
	if stats.ByAdjustment["hold"] != 1 {
		t.Errorf("adjustment counts = %v", stats.ByAdjustment)
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendRosterChange(ctx, RosterEventData{
		UserID: "u-sam", Username: "sam", Role: "student", Action: RosterActionCreated,
	}); err != nil {
		t.Fatalf("append roster: %v", err)
	}
	if err := repo.AppendInteraction(ctx, InteractionEventData{
		UserID: "u-sam", ModuleID: "intro-ai", CompletionPct: 10, Created: true, CompletionAdvanced: true,
	}); err != nil {
		t.Fatalf("append interaction: %v", err)
	}
	if err := repo.AppendFeedback(ctx, FeedbackEventData{
		UserID: "u-sam", ModuleID: "intro-ai", Prompt: "q", Chosen: 1, Tier: "struggling", Class: "struggling-incorrect", Adjustment: "decrease",
	}); err != nil {
		t.Fatalf("append feedback: %v", err)
	}

	last, err := repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if last != 3 {
		t.Errorf("three events across three types ended at sequence %d, want 3", last)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "interaction_events", "feedback_events", "roster_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
