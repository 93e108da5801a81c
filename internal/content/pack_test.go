package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
)

const miniPackJSON = `{
  "name": "mini",
  "version": 1,
  "modules": [
    {
      "id": "solo",
      "title": "Solo Module",
      "category": "ai-basics",
      "difficulty": "beginner",
      "blocks": [
        {"kind": "text", "title": "Only Block", "body": "Hello."}
      ],
      "questions": [
        {"prompt": "Pick B.", "options": ["A", "B"], "correct": 1, "explanation": "B it is."}
      ],
      "estimated_mins": 5
    }
  ],
  "scenarios": [
    {
      "id": "tiny-call",
      "title": "Tiny Call",
      "context": "A choice appears.",
      "challenge": "Choose.",
      "options": [
        {"text": "Rush", "consequence": "Regret", "ethics_score": 2},
        {"text": "Check", "consequence": "Relief", "ethics_score": 8}
      ]
    }
  ]
}`

const miniPackYAML = `name: mini
version: 1
modules:
  - id: solo
    title: Solo Module
    category: ai-basics
    difficulty: beginner
    blocks:
      - kind: text
        title: Only Block
        body: Hello.
    questions:
      - prompt: Pick B.
        options: ["A", "B"]
        correct: 1
        explanation: B it is.
    estimated_mins: 5
scenarios:
  - id: tiny-call
    title: Tiny Call
    context: A choice appears.
    challenge: Choose.
    options:
      - text: Rush
        consequence: Regret
        ethics_score: 2
      - text: Check
        consequence: Relief
        ethics_score: 8
`

func TestParsePack(t *testing.T) {
	pack, err := ParsePack([]byte(miniPackJSON))
	if err != nil {
		t.Fatalf("ParsePack: %v", err)
	}
	if pack.Name != "mini" || pack.Version != 1 {
		t.Errorf("pack header = %q v%d, want mini v1", pack.Name, pack.Version)
	}
	if len(pack.Modules) != 1 || len(pack.Scenarios) != 1 {
		t.Fatalf("pack shape %d/%d, want 1 module, 1 scenario", len(pack.Modules), len(pack.Scenarios))
	}

	m := pack.Modules[0]
	if m.ID != "solo" || m.Difficulty != catalog.Beginner || m.Category != catalog.CategoryAIBasics {
		t.Errorf("module decoded as %+v", m)
	}
	if len(m.Blocks) != 1 || m.Blocks[0].Kind != catalog.BlockText {
		t.Errorf("blocks decoded as %+v", m.Blocks)
	}
	if len(m.Questions) != 1 || m.Questions[0].Correct != 1 {
		t.Errorf("questions decoded as %+v", m.Questions)
	}
	if got := pack.Scenarios[0].Options[1].EthicsScore; got != 8 {
		t.Errorf("ethics score = %d, want 8", got)
	}
}

func TestParsePack_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"name": `},
		{"missing name", `{"modules": []}`},
		{"unknown category", `{"name": "x", "modules": [{"id": "a", "title": "A", "category": "cooking", "difficulty": "beginner"}]}`},
		{"unknown difficulty", `{"name": "x", "modules": [{"id": "a", "title": "A", "category": "ai-basics", "difficulty": "impossible"}]}`},
		{"uppercase id", `{"name": "x", "modules": [{"id": "NotKebab", "title": "A", "category": "ai-basics", "difficulty": "beginner"}]}`},
		{"negative correct", `{"name": "x", "modules": [{"id": "a", "title": "A", "category": "ai-basics", "difficulty": "beginner", "questions": [{"prompt": "p", "options": ["a", "b"], "correct": -1}]}]}`},
		{"single option", `{"name": "x", "modules": [{"id": "a", "title": "A", "category": "ai-basics", "difficulty": "beginner", "questions": [{"prompt": "p", "options": ["a"], "correct": 0}]}]}`},
		{"ethics score over 10", `{"name": "x", "modules": [], "scenarios": [{"id": "s", "title": "S", "context": "c", "challenge": "ch", "options": [{"text": "a", "ethics_score": 11}, {"text": "b", "ethics_score": 2}]}]}`},
		{"stray field", `{"name": "x", "modules": [], "bonus": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePack([]byte(tt.raw)); err == nil {
				t.Error("invalid pack accepted")
			}
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.yaml")
	if err := os.WriteFile(path, []byte(miniPackYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	fromYAML, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(yaml): %v", err)
	}
	fromJSON, err := ParsePack([]byte(miniPackJSON))
	if err != nil {
		t.Fatalf("ParsePack(json): %v", err)
	}
	if len(fromYAML.Modules) != len(fromJSON.Modules) {
		t.Fatalf("YAML decoded %d modules, JSON %d", len(fromYAML.Modules), len(fromJSON.Modules))
	}
	if fromYAML.Modules[0].ID != fromJSON.Modules[0].ID ||
		fromYAML.Modules[0].Questions[0].Correct != fromJSON.Modules[0].Questions[0].Correct {
		t.Error("YAML and JSON forms of the same pack decoded differently")
	}
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.toml")
	if err := os.WriteFile(path, []byte("name = 'nope'"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "01-mini.json"), []byte(miniPackJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	packs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(packs) != 1 {
		t.Fatalf("loaded %d packs, want 1", len(packs))
	}

	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("empty dir produced no error")
	}
}

func TestBuild(t *testing.T) {
	base, err := ParsePack([]byte(miniPackJSON))
	if err != nil {
		t.Fatal(err)
	}

	// A second pack may depend on modules from the first.
	extra := Pack{
		Name: "extra",
		Modules: []catalog.Module{{
			ID:            "followup",
			Title:         "Follow Up",
			Category:      catalog.CategoryApplications,
			Difficulty:    catalog.Intermediate,
			Prerequisites: []string{"solo"},
		}},
	}
	cat, err := Build(base, extra)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog has %d modules, want 2", cat.Len())
	}

	// Duplicate ids across packs are rejected.
	if _, err := Build(base, base); err == nil {
		t.Error("duplicate ids across packs accepted")
	}

	// A dangling prerequisite is rejected even though each pack alone
	// is structurally valid.
	orphan := Pack{
		Name: "orphan",
		Modules: []catalog.Module{{
			ID:            "stranded",
			Title:         "Stranded",
			Category:      catalog.CategoryAIBasics,
			Difficulty:    catalog.Beginner,
			Prerequisites: []string{"missing"},
		}},
	}
	if _, err := Build(orphan); err == nil {
		t.Error("dangling prerequisite accepted")
	}
}
