package recommend

import (
	"reflect"
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/progress"
)

type fakeUsers map[string]bool

func (f fakeUsers) HasUser(id string) bool { return f[id] }

func mod(id string, cat catalog.Category, diff catalog.Difficulty, prereqs ...string) catalog.Module {
	return catalog.Module{
		ID:            id,
		Title:         "Module " + id,
		Category:      cat,
		Difficulty:    diff,
		Prerequisites: prereqs,
	}
}

// testWorld builds a catalog of five modules, a store for one user, and
// an engine over them.
func testWorld(t *testing.T) (*catalog.Catalog, *progress.Store, *Engine) {
	t.Helper()
	cat, err := catalog.Load([]catalog.Module{
		mod("basics", catalog.CategoryAIBasics, catalog.Beginner),
		mod("everyday", catalog.CategoryApplications, catalog.Beginner),
		mod("ethics", catalog.CategoryEthicsBias, catalog.Intermediate, "basics"),
		mod("prompts", catalog.CategoryPracticalSkills, catalog.Intermediate, "basics"),
		mod("claims", catalog.CategoryCriticalThinking, catalog.Advanced, "ethics"),
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store := progress.NewStore(fakeUsers{"u1": true}, cat)
	return cat, store, NewEngine(cat, store, DefaultConfig())
}

func ids(mods []catalog.Module) []string {
	out := make([]string, 0, len(mods))
	for _, m := range mods {
		out = append(out, m.ID)
	}
	return out
}

func TestPath_FreshUser(t *testing.T) {
	_, _, eng := testWorld(t)

	got := ids(eng.Path("u1"))
	// Only the zero-prerequisite modules, id ascending.
	want := []string{"basics", "everyday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPath_ExcludesCompletedAndLocked(t *testing.T) {
	_, store, eng := testWorld(t)
	store.Update("u1", "basics", 100, 10, nil)

	got := ids(eng.Path("u1"))
	for _, id := range got {
		if id == "basics" {
			t.Error("path contains a completed module")
		}
		if id == "claims" {
			t.Error("path contains a locked module (ethics not completed)")
		}
	}
	// Completing basics unlocks both intermediates.
	for _, want := range []string{"ethics", "prompts"} {
		found := false
		for _, id := range got {
			if id == want {
				found = true
			}
		}
		if !found {
			t.Errorf("path missing unlocked module %q: %v", want, got)
		}
	}
}

func TestPath_HighAverageTargetsHarderBand(t *testing.T) {
	_, store, eng := testWorld(t)
	// Max attempted Intermediate with a high average: target Advanced.
	store.Update("u1", "basics", 100, 10, score(90))
	store.Update("u1", "ethics", 100, 10, score(85))

	got := ids(eng.Path("u1"))
	if len(got) == 0 {
		t.Fatal("empty path")
	}
	if got[0] != "claims" {
		t.Errorf("got %v, want the Advanced module first", got)
	}
}

func TestPath_LowAverageTargetsEasierBand(t *testing.T) {
	_, store, eng := testWorld(t)
	// Attempted an intermediate with a failing average: target Beginner.
	store.Update("u1", "basics", 100, 10, score(40))
	store.Update("u1", "ethics", 20, 10, score(30))

	got := ids(eng.Path("u1"))
	if len(got) == 0 {
		t.Fatal("empty path")
	}
	if got[0] != "everyday" {
		t.Errorf("got %v, want the Beginner module first", got)
	}
}

func TestPath_CategoryBreadthTieBreak(t *testing.T) {
	cat, err := catalog.Load([]catalog.Module{
		mod("app-1", catalog.CategoryApplications, catalog.Beginner),
		mod("app-2", catalog.CategoryApplications, catalog.Beginner),
		mod("basics-1", catalog.CategoryAIBasics, catalog.Beginner),
		mod("basics-2", catalog.CategoryAIBasics, catalog.Beginner),
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store := progress.NewStore(fakeUsers{"u1": true}, cat)
	eng := NewEngine(cat, store, DefaultConfig())

	// Half of applications done, none of basics: basics ranks first.
	store.Update("u1", "app-1", 100, 10, nil)

	got := ids(eng.Path("u1"))
	want := []string{"basics-1", "basics-2", "app-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPath_Deterministic(t *testing.T) {
	_, store, eng := testWorld(t)
	store.Update("u1", "basics", 100, 10, score(75))

	first := ids(eng.Path("u1"))
	second := ids(eng.Path("u1"))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("path not deterministic:\n first %v\nsecond %v", first, second)
	}
}

func TestPath_EverythingDone(t *testing.T) {
	_, store, eng := testWorld(t)
	for _, id := range []string{"basics", "everyday", "ethics", "prompts", "claims"} {
		store.Update("u1", id, 100, 10, nil)
	}

	if got := eng.Path("u1"); len(got) != 0 {
		t.Errorf("got %v, want empty terminal state", ids(got))
	}
}

func TestPath_CyclicCatalogBounded(t *testing.T) {
	// An undetected cycle must not hang recommendation; the cyclic
	// modules simply stay locked forever.
	cat, err := catalog.Load([]catalog.Module{
		mod("a", catalog.CategoryAIBasics, catalog.Beginner, "b"),
		mod("b", catalog.CategoryAIBasics, catalog.Beginner, "a"),
		mod("root", catalog.CategoryApplications, catalog.Beginner),
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store := progress.NewStore(fakeUsers{"u1": true}, cat)
	eng := NewEngine(cat, store, DefaultConfig())

	got := ids(eng.Path("u1"))
	if !reflect.DeepEqual(got, []string{"root"}) {
		t.Errorf("got %v, want [root]", got)
	}
}

func TestTargetDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		seed   func(s *progress.Store)
		want   catalog.Difficulty
	}{
		{
			name: "fresh user",
			seed: func(s *progress.Store) {},
			want: catalog.Beginner,
		},
		{
			name: "high average advances",
			seed: func(s *progress.Store) {
				s.Update("u1", "basics", 100, 5, score(95))
			},
			want: catalog.Intermediate,
		},
		{
			name: "high average caps at advanced",
			seed: func(s *progress.Store) {
				s.Update("u1", "claims", 50, 5, score(95))
			},
			want: catalog.Advanced,
		},
		{
			name: "low average eases down",
			seed: func(s *progress.Store) {
				s.Update("u1", "ethics", 40, 5, score(20))
			},
			want: catalog.Beginner,
		},
		{
			name: "middling average holds the band",
			seed: func(s *progress.Store) {
				s.Update("u1", "ethics", 40, 5, score(65))
			},
			want: catalog.Intermediate,
		},
		{
			name: "records without scores ease down",
			seed: func(s *progress.Store) {
				s.Update("u1", "ethics", 40, 5, nil)
			},
			want: catalog.Beginner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, store, eng := testWorld(t)
			tt.seed(store)
			if got := eng.TargetDifficulty("u1"); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNext(t *testing.T) {
	_, store, eng := testWorld(t)

	next, ok := eng.Next("u1")
	if !ok || next.ID != "basics" {
		t.Errorf("got %q/%v, want basics/true", next.ID, ok)
	}

	for _, id := range []string{"basics", "everyday", "ethics", "prompts", "claims"} {
		store.Update("u1", id, 100, 10, nil)
	}
	if _, ok := eng.Next("u1"); ok {
		t.Error("Next reported a module with everything completed")
	}
}

func score(v float64) *float64 { return &v }
