package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrDuplicateID is returned when registering an id that already exists.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidPrerequisite is returned when a module lists an unregistered prerequisite.
	ErrInvalidPrerequisite = errors.New("invalid prerequisite")
)

// Catalog holds module and scenario definitions with precomputed indices.
// It is append-only: definitions are never mutated or removed after
// registration. Mutation is not synchronized; the embedding process
// loads the catalog before serving queries.
type Catalog struct {
	ids          []string
	byID         map[string]*Module
	byCategory   map[Category][]string
	byDifficulty map[Difficulty][]string
	dependents   map[string][]string

	scenarioIDs  []string
	scenarioByID map[string]*Scenario
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID:         make(map[string]*Module),
		byCategory:   make(map[Category][]string),
		byDifficulty: make(map[Difficulty][]string),
		dependents:   make(map[string][]string),
		scenarioByID: make(map[string]*Scenario),
	}
}

// Load builds a catalog from full definition sets in one pass. Unlike
// AddModule it accepts modules in any order, so definitions may arrive
// exactly as a content pack listed them. It does not run cycle
// detection; callers that accept untrusted packs check HasCycle (or run
// ValidateModules first).
func Load(modules []Module, scenarios []Scenario) (*Catalog, error) {
	known := make(map[string]bool, len(modules))
	for _, m := range modules {
		if known[m.ID] {
			return nil, fmt.Errorf("module %q: %w", m.ID, ErrDuplicateID)
		}
		known[m.ID] = true
	}
	for _, m := range modules {
		for _, p := range m.Prerequisites {
			if !known[p] {
				return nil, fmt.Errorf("module %q requires %q: %w", m.ID, p, ErrInvalidPrerequisite)
			}
		}
	}

	c := New()
	for _, m := range modules {
		c.insertModule(m)
	}
	for _, s := range scenarios {
		if err := c.AddScenario(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddModule registers a module definition. It fails if the id is already
// registered or any prerequisite is unknown. It does not check for
// cycles; HasCycle is a separate query.
func (c *Catalog) AddModule(m Module) error {
	if _, ok := c.byID[m.ID]; ok {
		return fmt.Errorf("module %q: %w", m.ID, ErrDuplicateID)
	}
	for _, p := range m.Prerequisites {
		if _, ok := c.byID[p]; !ok {
			return fmt.Errorf("module %q requires %q: %w", m.ID, p, ErrInvalidPrerequisite)
		}
	}
	c.insertModule(m)
	return nil
}

// insertModule stores a module and updates every index.
func (c *Catalog) insertModule(m Module) {
	stored := m
	c.byID[m.ID] = &stored
	c.ids = append(c.ids, m.ID)

	cat := c.byCategory[m.Category]
	cat = append(cat, m.ID)
	sort.Strings(cat)
	c.byCategory[m.Category] = cat

	diff := c.byDifficulty[m.Difficulty]
	diff = append(diff, m.ID)
	sort.Strings(diff)
	c.byDifficulty[m.Difficulty] = diff

	for _, p := range m.Prerequisites {
		c.dependents[p] = append(c.dependents[p], m.ID)
	}
}

// AddScenario registers a decision scenario.
func (c *Catalog) AddScenario(s Scenario) error {
	if _, ok := c.scenarioByID[s.ID]; ok {
		return fmt.Errorf("scenario %q: %w", s.ID, ErrDuplicateID)
	}
	stored := s
	c.scenarioByID[s.ID] = &stored
	c.scenarioIDs = append(c.scenarioIDs, s.ID)
	return nil
}

// Module returns a module definition by id.
func (c *Catalog) Module(id string) (Module, bool) {
	m, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return *m, true
}

// HasModule reports whether a module id is registered.
func (c *Catalog) HasModule(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Modules returns all registered modules ordered by id.
func (c *Catalog) Modules() []Module {
	ids := slices.Clone(c.ids)
	sort.Strings(ids)
	out := make([]Module, 0, len(ids))
	for _, id := range ids {
		out = append(out, *c.byID[id])
	}
	return out
}

// Len returns the number of registered modules.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// ByCategory returns the modules in a category, ordered by difficulty
// then id. Unknown categories yield an empty slice.
func (c *Catalog) ByCategory(cat Category) []Module {
	out := c.resolve(c.byCategory[cat])
	sort.Slice(out, func(i, j int) bool {
		if out[i].Difficulty != out[j].Difficulty {
			return out[i].Difficulty < out[j].Difficulty
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByDifficulty returns the modules in a difficulty band, ordered by id.
func (c *Catalog) ByDifficulty(d Difficulty) []Module {
	return c.resolve(c.byDifficulty[d])
}

// Roots returns the modules with no prerequisites, ordered by id.
func (c *Catalog) Roots() []Module {
	var ids []string
	for _, id := range c.ids {
		if len(c.byID[id].Prerequisites) == 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return c.resolve(ids)
}

// PrerequisitesOf returns the prerequisite ids of a module. Unknown ids
// yield an empty slice.
func (c *Catalog) PrerequisitesOf(id string) []string {
	m, ok := c.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(m.Prerequisites)
}

// Prerequisites returns the resolved prerequisite modules of a module.
func (c *Catalog) Prerequisites(id string) []Module {
	m, ok := c.byID[id]
	if !ok {
		return nil
	}
	return c.resolve(m.Prerequisites)
}

// Dependents returns the modules that directly require the given module,
// ordered by id.
func (c *Catalog) Dependents(id string) []Module {
	ids := slices.Clone(c.dependents[id])
	sort.Strings(ids)
	return c.resolve(ids)
}

// IsUnlocked reports whether every prerequisite of the module is in the
// completed set. Unknown module ids are locked.
func (c *Catalog) IsUnlocked(id string, completed map[string]bool) bool {
	m, ok := c.byID[id]
	if !ok {
		return false
	}
	for _, p := range m.Prerequisites {
		if !completed[p] {
			return false
		}
	}
	return true
}

// MaxDifficulty returns the hardest difficulty band present in the
// catalog, Beginner when empty.
func (c *Catalog) MaxDifficulty() Difficulty {
	max := Beginner
	for _, m := range c.byID {
		if m.Difficulty > max {
			max = m.Difficulty
		}
	}
	return max
}

// HasCycle reports whether the prerequisite graph contains a cycle.
// Kahn's algorithm: if the topological order cannot cover every module,
// the remainder is cyclic.
func (c *Catalog) HasCycle() bool {
	inDegree := make(map[string]int, len(c.ids))
	for _, id := range c.ids {
		inDegree[id] = len(c.byID[id].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range c.dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	return visited < len(c.ids)
}

// Scenario returns a scenario definition by id.
func (c *Catalog) Scenario(id string) (Scenario, bool) {
	s, ok := c.scenarioByID[id]
	if !ok {
		return Scenario{}, false
	}
	return *s, true
}

// Scenarios returns all registered scenarios ordered by id.
func (c *Catalog) Scenarios() []Scenario {
	ids := slices.Clone(c.scenarioIDs)
	sort.Strings(ids)
	out := make([]Scenario, 0, len(ids))
	for _, id := range ids {
		out = append(out, *c.scenarioByID[id])
	}
	return out
}

// ScenarioCount returns the number of registered scenarios.
func (c *Catalog) ScenarioCount() int {
	return len(c.scenarioIDs)
}

// resolve maps ids to module copies, skipping unknown ids.
func (c *Catalog) resolve(ids []string) []Module {
	out := make([]Module, 0, len(ids))
	for _, id := range ids {
		if m, ok := c.byID[id]; ok {
			out = append(out, *m)
		}
	}
	return out
}
