package catalog

import (
	"strings"
	"testing"
)

func TestValidateModules_Valid(t *testing.T) {
	mods := []Module{
		testModule("a", CategoryAIBasics, Beginner),
		testModule("b", CategoryApplications, Intermediate, "a"),
	}
	if err := ValidateModules(mods); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateModules_Empty(t *testing.T) {
	if err := ValidateModules(nil); err != nil {
		t.Fatalf("empty set should validate: %v", err)
	}
}

func TestValidateModules_DuplicateID(t *testing.T) {
	mods := []Module{
		testModule("a", CategoryAIBasics, Beginner),
		testModule("a", CategoryApplications, Beginner),
	}
	err := ValidateModules(mods)
	if err == nil {
		t.Fatal("expected error for duplicate IDs")
	}
	if !strings.Contains(err.Error(), `duplicate module ID: "a"`) {
		t.Errorf("error does not name the duplicate: %v", err)
	}
}

func TestValidateModules_DanglingPrerequisite(t *testing.T) {
	mods := []Module{
		testModule("a", CategoryAIBasics, Beginner, "ghost"),
	}
	err := ValidateModules(mods)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite")
	}
	if !strings.Contains(err.Error(), `"ghost"`) {
		t.Errorf("error does not name the missing prerequisite: %v", err)
	}
}

func TestValidateModules_Cycle(t *testing.T) {
	mods := []Module{
		testModule("a", CategoryAIBasics, Beginner, "c"),
		testModule("b", CategoryAIBasics, Beginner, "a"),
		testModule("c", CategoryAIBasics, Beginner, "b"),
		testModule("root", CategoryApplications, Beginner),
	}
	err := ValidateModules(mods)
	if err == nil {
		t.Fatal("expected error for cyclic prerequisites")
	}
	msg := err.Error()
	if !strings.Contains(msg, "cycle detected") {
		t.Fatalf("error does not mention the cycle: %v", err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if !strings.Contains(msg, id) {
			t.Errorf("cycle error does not list %q: %v", id, err)
		}
	}
}

func TestValidateModules_NoRoots(t *testing.T) {
	mods := []Module{
		testModule("a", CategoryAIBasics, Beginner, "b"),
		testModule("b", CategoryAIBasics, Beginner, "a"),
	}
	err := ValidateModules(mods)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no root modules") {
		t.Errorf("error does not mention missing roots: %v", err)
	}
}

func TestValidateModules_BadQuestion(t *testing.T) {
	m := testModule("a", CategoryAIBasics, Beginner)
	m.Questions = []Question{
		{Prompt: "?", Options: []string{"x", "y"}, Correct: 5},
	}
	err := ValidateModules([]Module{m})
	if err == nil {
		t.Fatal("expected error for out-of-range correct index")
	}
	if !strings.Contains(err.Error(), "correct index 5") {
		t.Errorf("error does not name the bad index: %v", err)
	}
}

func TestValidateModules_UnknownBlockKind(t *testing.T) {
	m := testModule("a", CategoryAIBasics, Beginner)
	m.Blocks = []ContentBlock{{Kind: BlockKind("hologram"), Title: "x"}}
	err := ValidateModules([]Module{m})
	if err == nil {
		t.Fatal("expected error for unknown block kind")
	}
	if !strings.Contains(err.Error(), `"hologram"`) {
		t.Errorf("error does not name the unknown kind: %v", err)
	}
}

func TestValidateScenarios(t *testing.T) {
	good := Scenario{
		ID: "s1",
		Options: []ScenarioOption{
			{Text: "a", EthicsScore: 2},
			{Text: "b", EthicsScore: 9},
		},
	}
	if err := ValidateScenarios([]Scenario{good}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := good
	bad.Options = []ScenarioOption{
		{Text: "a", EthicsScore: 11},
		{Text: "b", EthicsScore: 3},
	}
	err := ValidateScenarios([]Scenario{bad})
	if err == nil {
		t.Fatal("expected error for ethics score out of range")
	}
	if !strings.Contains(err.Error(), "ethics score") {
		t.Errorf("error does not mention the score: %v", err)
	}

	dup := ValidateScenarios([]Scenario{good, good})
	if dup == nil {
		t.Fatal("expected error for duplicate scenario IDs")
	}
}
