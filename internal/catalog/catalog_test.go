package catalog

import (
	"errors"
	"testing"
)

func testModule(id string, cat Category, diff Difficulty, prereqs ...string) Module {
	return Module{
		ID:            id,
		Title:         "Module " + id,
		Category:      cat,
		Difficulty:    diff,
		Prerequisites: prereqs,
		Questions: []Question{
			{Prompt: "?", Options: []string{"a", "b"}, Correct: 0},
		},
		EstimatedMins: 20,
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	mods := []Module{
		testModule("intro-ai", CategoryAIBasics, Beginner),
		testModule("ai-everyday", CategoryApplications, Beginner),
		testModule("ethics-bias", CategoryEthicsBias, Intermediate, "intro-ai"),
		testModule("prompt-craft", CategoryPracticalSkills, Intermediate, "intro-ai"),
		testModule("eval-claims", CategoryCriticalThinking, Advanced, "ethics-bias"),
	}
	for _, m := range mods {
		if err := c.AddModule(m); err != nil {
			t.Fatalf("AddModule(%q): %v", m.ID, err)
		}
	}
	return c
}

func TestAddModule_Duplicate(t *testing.T) {
	c := testCatalog(t)
	err := c.AddModule(testModule("intro-ai", CategoryAIBasics, Beginner))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("got %v, want ErrDuplicateID", err)
	}
	if c.Len() != 5 {
		t.Errorf("failed insert changed catalog size: got %d, want 5", c.Len())
	}
}

func TestAddModule_UnknownPrerequisite(t *testing.T) {
	c := testCatalog(t)
	err := c.AddModule(testModule("orphan", CategoryAIBasics, Beginner, "no-such-module"))
	if !errors.Is(err, ErrInvalidPrerequisite) {
		t.Fatalf("got %v, want ErrInvalidPrerequisite", err)
	}
	if _, ok := c.Module("orphan"); ok {
		t.Error("rejected module was registered anyway")
	}
}

func TestModule_Lookup(t *testing.T) {
	c := testCatalog(t)

	m, ok := c.Module("ethics-bias")
	if !ok {
		t.Fatal("Module(ethics-bias) not found")
	}
	if m.Category != CategoryEthicsBias {
		t.Errorf("got category %q, want %q", m.Category, CategoryEthicsBias)
	}

	if _, ok := c.Module("nonexistent"); ok {
		t.Error("Module(nonexistent) reported found")
	}
}

func TestModules_SortedByID(t *testing.T) {
	c := testCatalog(t)
	mods := c.Modules()
	if len(mods) != 5 {
		t.Fatalf("got %d modules, want 5", len(mods))
	}
	for i := 1; i < len(mods); i++ {
		if mods[i].ID < mods[i-1].ID {
			t.Errorf("modules not sorted: %q after %q", mods[i].ID, mods[i-1].ID)
		}
	}
}

func TestModules_DefensiveCopy(t *testing.T) {
	c := testCatalog(t)
	mods := c.Modules()
	mods[0].Title = "mutated"

	again := c.Modules()
	if again[0].Title == "mutated" {
		t.Error("mutating a returned module leaked into the catalog")
	}
}

func TestByCategory(t *testing.T) {
	c := testCatalog(t)

	basics := c.ByCategory(CategoryAIBasics)
	if len(basics) != 1 || basics[0].ID != "intro-ai" {
		t.Errorf("ByCategory(ai-basics): got %v", basics)
	}

	if got := c.ByCategory(Category("no-such")); len(got) != 0 {
		t.Errorf("unknown category: got %d modules, want 0", len(got))
	}
}

func TestByCategory_Ordering(t *testing.T) {
	c := New()
	for _, m := range []Module{
		testModule("z-basics", CategoryAIBasics, Intermediate),
		testModule("a-basics", CategoryAIBasics, Advanced),
		testModule("m-basics", CategoryAIBasics, Beginner),
	} {
		if err := c.AddModule(m); err != nil {
			t.Fatalf("AddModule(%q): %v", m.ID, err)
		}
	}

	got := c.ByCategory(CategoryAIBasics)
	wantOrder := []string{"m-basics", "z-basics", "a-basics"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestByDifficulty(t *testing.T) {
	c := testCatalog(t)
	inter := c.ByDifficulty(Intermediate)
	if len(inter) != 2 {
		t.Fatalf("got %d intermediate modules, want 2", len(inter))
	}
	if inter[0].ID != "ethics-bias" || inter[1].ID != "prompt-craft" {
		t.Errorf("got order %q, %q", inter[0].ID, inter[1].ID)
	}
}

func TestRoots(t *testing.T) {
	c := testCatalog(t)
	roots := c.Roots()
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].ID != "ai-everyday" || roots[1].ID != "intro-ai" {
		t.Errorf("got roots %q, %q", roots[0].ID, roots[1].ID)
	}
}

func TestIsUnlocked(t *testing.T) {
	c := testCatalog(t)
	none := map[string]bool{}
	introDone := map[string]bool{"intro-ai": true}

	if !c.IsUnlocked("intro-ai", none) {
		t.Error("root module should always be unlocked")
	}
	if c.IsUnlocked("ethics-bias", none) {
		t.Error("ethics-bias unlocked without its prerequisite")
	}
	if !c.IsUnlocked("ethics-bias", introDone) {
		t.Error("ethics-bias locked with prerequisite completed")
	}
	if c.IsUnlocked("eval-claims", introDone) {
		t.Error("eval-claims unlocked without ethics-bias")
	}
	if c.IsUnlocked("nonexistent", introDone) {
		t.Error("unknown module reported unlocked")
	}
}

func TestDependents(t *testing.T) {
	c := testCatalog(t)
	deps := c.Dependents("intro-ai")
	if len(deps) != 2 {
		t.Fatalf("got %d dependents, want 2", len(deps))
	}
	if deps[0].ID != "ethics-bias" || deps[1].ID != "prompt-craft" {
		t.Errorf("got dependents %q, %q", deps[0].ID, deps[1].ID)
	}
}

func TestPrerequisitesOf(t *testing.T) {
	c := testCatalog(t)

	got := c.PrerequisitesOf("eval-claims")
	if len(got) != 1 || got[0] != "ethics-bias" {
		t.Errorf("got %v, want [ethics-bias]", got)
	}
	if got := c.PrerequisitesOf("nonexistent"); got != nil {
		t.Errorf("unknown module: got %v, want nil", got)
	}
}

func TestMaxDifficulty(t *testing.T) {
	if got := New().MaxDifficulty(); got != Beginner {
		t.Errorf("empty catalog: got %v, want Beginner", got)
	}
	if got := testCatalog(t).MaxDifficulty(); got != Advanced {
		t.Errorf("got %v, want Advanced", got)
	}
}

func TestHasCycle_Acyclic(t *testing.T) {
	if testCatalog(t).HasCycle() {
		t.Error("acyclic catalog reported a cycle")
	}
}

func TestHasCycle_DetectsCycle(t *testing.T) {
	c, err := Load([]Module{
		testModule("a", CategoryAIBasics, Beginner, "b"),
		testModule("b", CategoryAIBasics, Beginner, "a"),
		testModule("standalone", CategoryApplications, Beginner),
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.HasCycle() {
		t.Error("cyclic prerequisite graph not detected")
	}
}

func TestLoad_AnyOrder(t *testing.T) {
	// The dependent is listed before its prerequisite.
	c, err := Load([]Module{
		testModule("second", CategoryAIBasics, Intermediate, "first"),
		testModule("first", CategoryAIBasics, Beginner),
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("got %d modules, want 2", c.Len())
	}
	if c.HasCycle() {
		t.Error("acyclic load reported a cycle")
	}
}

func TestLoad_DanglingPrerequisite(t *testing.T) {
	_, err := Load([]Module{
		testModule("solo", CategoryAIBasics, Beginner, "ghost"),
	}, nil)
	if !errors.Is(err, ErrInvalidPrerequisite) {
		t.Fatalf("got %v, want ErrInvalidPrerequisite", err)
	}
}

func TestAddScenario(t *testing.T) {
	c := New()
	s := Scenario{
		ID:    "hiring",
		Title: "Hiring System",
		Options: []ScenarioOption{
			{Text: "deploy", EthicsScore: 2},
			{Text: "audit", EthicsScore: 8},
		},
	}
	if err := c.AddScenario(s); err != nil {
		t.Fatalf("AddScenario: %v", err)
	}
	if err := c.AddScenario(s); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate scenario: got %v, want ErrDuplicateID", err)
	}

	got, ok := c.Scenario("hiring")
	if !ok {
		t.Fatal("Scenario(hiring) not found")
	}
	if len(got.Options) != 2 {
		t.Errorf("got %d options, want 2", len(got.Options))
	}
	if _, ok := c.Scenario("nonexistent"); ok {
		t.Error("Scenario(nonexistent) reported found")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"beginner", Beginner, true},
		{"intermediate", Intermediate, true},
		{"advanced", Advanced, true},
		{"expert", Beginner, false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
