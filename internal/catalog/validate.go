package catalog

import (
	"fmt"
	"strings"
)

// ValidateModules performs all structural checks on a module set before
// it is loaded into a catalog. Returns a combined error describing all
// problems found, or nil if valid.
func ValidateModules(modules []Module) error {
	var errs []string

	idSet := make(map[string]bool, len(modules))

	// Check for duplicate IDs and definition sanity
	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, "module with empty id")
			continue
		}
		if idSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		idSet[m.ID] = true

		if m.Title == "" {
			errs = append(errs, fmt.Sprintf("module %q has no title", m.ID))
		}
		if !KnownCategory(m.Category) {
			errs = append(errs, fmt.Sprintf("module %q has unknown category %q", m.ID, m.Category))
		}
		if m.Difficulty < Beginner || m.Difficulty > Advanced {
			errs = append(errs, fmt.Sprintf("module %q has unknown difficulty %d", m.ID, m.Difficulty))
		}
		if m.EstimatedMins < 0 {
			errs = append(errs, fmt.Sprintf("module %q: EstimatedMins must be >= 0, got %d", m.ID, m.EstimatedMins))
		}
		for i, b := range m.Blocks {
			if !KnownBlockKind(b.Kind) {
				errs = append(errs, fmt.Sprintf("module %q block %d has unknown kind %q", m.ID, i, b.Kind))
			}
		}
		for i, q := range m.Questions {
			prefix := fmt.Sprintf("module %q question %d", m.ID, i)
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d outside option set", prefix, q.Correct))
			}
		}
	}

	// Check for dangling prerequisites
	for _, m := range modules {
		for _, prereqID := range m.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("module %q references nonexistent prerequisite %q", m.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(modules))
	adjList := make(map[string][]string)
	for _, m := range modules {
		inDegree[m.ID] = len(m.Prerequisites)
		for _, prereqID := range m.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], m.ID)
		}
	}

	var queue []string
	for _, m := range modules {
		if inDegree[m.ID] == 0 {
			queue = append(queue, m.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(modules) {
		var cycleNodes []string
		for _, m := range modules {
			if inDegree[m.ID] > 0 {
				cycleNodes = append(cycleNodes, m.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving modules: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	if len(modules) > 0 {
		hasRoot := false
		for _, m := range modules {
			if len(m.Prerequisites) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root modules found (at least one module must have no prerequisites)")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("module validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ValidateScenarios performs structural checks on a scenario set.
func ValidateScenarios(scenarios []Scenario) error {
	var errs []string

	idSet := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		if s.ID == "" {
			errs = append(errs, "scenario with empty id")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate scenario ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if len(s.Options) < 2 {
			errs = append(errs, fmt.Sprintf("scenario %q: needs at least 2 options, got %d", s.ID, len(s.Options)))
		}
		for i, opt := range s.Options {
			if opt.EthicsScore < 0 || opt.EthicsScore > 10 {
				errs = append(errs, fmt.Sprintf("scenario %q option %d: ethics score must be in [0, 10], got %d", s.ID, i, opt.EthicsScore))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
