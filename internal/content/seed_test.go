package content

import (
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
)

func TestStarterPack(t *testing.T) {
	pack := StarterPack()
	cat, err := Build(pack)
	if err != nil {
		t.Fatalf("starter pack does not build: %v", err)
	}
	if cat.Len() != 6 {
		t.Errorf("starter pack has %d modules, want 6", cat.Len())
	}
	if cat.ScenarioCount() != 3 {
		t.Errorf("starter pack has %d scenarios, want 3", cat.ScenarioCount())
	}
	if cat.HasCycle() {
		t.Error("starter prerequisites contain a cycle")
	}
	if len(cat.Roots()) == 0 {
		t.Error("starter pack has no entry modules")
	}

	for _, c := range catalog.AllCategories() {
		if len(cat.ByCategory(c)) == 0 {
			t.Errorf("category %s has no modules", c)
		}
	}
	for _, m := range cat.Modules() {
		if len(m.Questions) == 0 {
			t.Errorf("module %s has no assessment questions", m.ID)
		}
		if len(m.Blocks) == 0 {
			t.Errorf("module %s has no content blocks", m.ID)
		}
	}
}

func TestStarterPack_KnownContent(t *testing.T) {
	cat, err := Build(StarterPack())
	if err != nil {
		t.Fatal(err)
	}

	intro, ok := cat.Module("intro-ai")
	if !ok {
		t.Fatal("intro-ai missing")
	}
	q := intro.Questions[0]
	if q.Correct != 3 || q.Options[q.Correct] != "Quantum Learning" {
		t.Errorf("intro quiz key moved: correct=%d option=%q", q.Correct, q.Options[q.Correct])
	}

	ethics, ok := cat.Module("ethics-bias")
	if !ok {
		t.Fatal("ethics-bias missing")
	}
	if len(ethics.Prerequisites) != 1 || ethics.Prerequisites[0] != "intro-ai" {
		t.Errorf("ethics prerequisites = %v, want [intro-ai]", ethics.Prerequisites)
	}

	hiring, ok := cat.Scenario("hiring-system")
	if !ok {
		t.Fatal("hiring-system missing")
	}
	var scores []int
	for _, o := range hiring.Options {
		scores = append(scores, o.EthicsScore)
	}
	want := []int{2, 8, 6}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("hiring option scores = %v, want %v", scores, want)
			break
		}
	}
}
