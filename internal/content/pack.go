// Package content loads module and scenario definitions from authoring
// packs: JSON or YAML files validated against a schema, then checked
// referentially and assembled into a catalog.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathwise/internal/catalog"
)

// Pack is one decoded authoring unit. Several packs can be combined
// into a single catalog; ids must be unique across all of them.
type Pack struct {
	Name      string
	Version   int
	Modules   []catalog.Module
	Scenarios []catalog.Scenario
}

type packFile struct {
	Name      string        `json:"name"`
	Version   int           `json:"version"`
	Modules   []moduleDef   `json:"modules"`
	Scenarios []scenarioDef `json:"scenarios"`
}

type moduleDef struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Difficulty    string        `json:"difficulty"`
	Prerequisites []string      `json:"prerequisites"`
	Blocks        []blockDef    `json:"blocks"`
	Questions     []questionDef `json:"questions"`
	EstimatedMins int           `json:"estimated_mins"`
}

type blockDef struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type questionDef struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type scenarioDef struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Context        string      `json:"context"`
	Challenge      string      `json:"challenge"`
	Options        []optionDef `json:"options"`
	Considerations []string    `json:"considerations"`
	Objectives     []string    `json:"objectives"`
}

type optionDef struct {
	Text        string `json:"text"`
	Consequence string `json:"consequence"`
	EthicsScore int    `json:"ethics_score"`
}

// ParsePack validates raw JSON against the pack schema and decodes it.
func ParsePack(raw []byte) (Pack, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Pack{}, fmt.Errorf("content pack is not valid JSON: %w", err)
	}
	sch, err := compiledPackSchema()
	if err != nil {
		return Pack{}, err
	}
	if err := sch.Validate(doc); err != nil {
		return Pack{}, fmt.Errorf("content pack: %w", err)
	}

	var pf packFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return Pack{}, fmt.Errorf("decode content pack: %w", err)
	}
	return pf.toPack()
}

// LoadFile reads one pack from disk. YAML files are converted to JSON
// before validation so both formats share one contract.
func LoadFile(path string) (Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("read content pack: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
	case ".yaml", ".yml":
		raw, err = yamlToJSON(raw)
		if err != nil {
			return Pack{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	default:
		return Pack{}, fmt.Errorf("%s: unsupported pack format (want .json, .yaml, or .yml)", filepath.Base(path))
	}

	pack, err := ParsePack(raw)
	if err != nil {
		return Pack{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pack, nil
}

// LoadDir loads every pack file in a directory, in name order.
func LoadDir(dir string) ([]Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var packs []Pack
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		pack, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	if len(packs) == 0 {
		return nil, fmt.Errorf("no content packs in %s", dir)
	}
	return packs, nil
}

// Build validates the combined packs referentially and assembles the
// catalog: unique ids, known prerequisites, sane answer keys, an
// acyclic prerequisite graph with at least one root.
func Build(packs ...Pack) (*catalog.Catalog, error) {
	var modules []catalog.Module
	var scenarios []catalog.Scenario
	for _, p := range packs {
		modules = append(modules, p.Modules...)
		scenarios = append(scenarios, p.Scenarios...)
	}
	if err := catalog.ValidateModules(modules); err != nil {
		return nil, err
	}
	if err := catalog.ValidateScenarios(scenarios); err != nil {
		return nil, err
	}
	return catalog.Load(modules, scenarios)
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML to JSON: %w", err)
	}
	return out, nil
}

func (pf packFile) toPack() (Pack, error) {
	pack := Pack{Name: pf.Name, Version: pf.Version}

	for _, m := range pf.Modules {
		diff, ok := catalog.ParseDifficulty(m.Difficulty)
		if !ok {
			return Pack{}, fmt.Errorf("module %q: unknown difficulty %q", m.ID, m.Difficulty)
		}
		mod := catalog.Module{
			ID:            m.ID,
			Title:         m.Title,
			Description:   m.Description,
			Category:      catalog.Category(m.Category),
			Difficulty:    diff,
			Prerequisites: m.Prerequisites,
			EstimatedMins: m.EstimatedMins,
		}
		for _, b := range m.Blocks {
			mod.Blocks = append(mod.Blocks, catalog.ContentBlock{
				Kind:  catalog.BlockKind(b.Kind),
				Title: b.Title,
				Body:  b.Body,
			})
		}
		for _, q := range m.Questions {
			mod.Questions = append(mod.Questions, catalog.Question{
				Prompt:      q.Prompt,
				Options:     q.Options,
				Correct:     q.Correct,
				Explanation: q.Explanation,
			})
		}
		pack.Modules = append(pack.Modules, mod)
	}

	for _, s := range pf.Scenarios {
		sc := catalog.Scenario{
			ID:             s.ID,
			Title:          s.Title,
			Context:        s.Context,
			Challenge:      s.Challenge,
			Considerations: s.Considerations,
			Objectives:     s.Objectives,
		}
		for _, o := range s.Options {
			sc.Options = append(sc.Options, catalog.ScenarioOption{
				Text:        o.Text,
				Consequence: o.Consequence,
				EthicsScore: o.EthicsScore,
			})
		}
		pack.Scenarios = append(pack.Scenarios, sc)
	}
	return pack, nil
}
