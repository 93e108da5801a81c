package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/pathwise/internal/catalog"
)

func categoryEnum() []any {
	out := make([]any, 0, len(catalog.AllCategories()))
	for _, c := range catalog.AllCategories() {
		out = append(out, string(c))
	}
	return out
}

func difficultyEnum() []any {
	out := make([]any, 0, len(catalog.AllDifficulties()))
	for _, d := range catalog.AllDifficulties() {
		out = append(out, d.String())
	}
	return out
}

func blockKindEnum() []any {
	out := make([]any, 0, len(catalog.AllBlockKinds()))
	for _, k := range catalog.AllBlockKinds() {
		out = append(out, string(k))
	}
	return out
}

// packSchema is the authoring contract for content packs. Structural
// rules only; referential rules (prerequisite existence, cycles, answer
// indices) are checked by catalog validation after decoding.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":    map[string]any{"type": "string", "minLength": 1},
		"version": map[string]any{"type": "integer", "minimum": 1},
		"modules": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$"},
					"title":         map[string]any{"type": "string", "minLength": 1},
					"description":   map[string]any{"type": "string"},
					"category":      map[string]any{"type": "string", "enum": categoryEnum()},
					"difficulty":    map[string]any{"type": "string", "enum": difficultyEnum()},
					"prerequisites": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"blocks": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"kind":  map[string]any{"type": "string", "enum": blockKindEnum()},
								"title": map[string]any{"type": "string", "minLength": 1},
								"body":  map[string]any{"type": "string"},
							},
							"required":             []any{"kind", "title"},
							"additionalProperties": false,
						},
					},
					"questions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"prompt":      map[string]any{"type": "string", "minLength": 1},
								"options":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
								"correct":     map[string]any{"type": "integer", "minimum": 0},
								"explanation": map[string]any{"type": "string"},
							},
							"required":             []any{"prompt", "options", "correct"},
							"additionalProperties": false,
						},
					},
					"estimated_mins": map[string]any{"type": "integer", "minimum": 0},
				},
				"required":             []any{"id", "title", "category", "difficulty"},
				"additionalProperties": false,
			},
		},
		"scenarios": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":        map[string]any{"type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$"},
					"title":     map[string]any{"type": "string", "minLength": 1},
					"context":   map[string]any{"type": "string"},
					"challenge": map[string]any{"type": "string"},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text":         map[string]any{"type": "string", "minLength": 1},
								"consequence":  map[string]any{"type": "string"},
								"ethics_score": map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
							},
							"required":             []any{"text", "ethics_score"},
							"additionalProperties": false,
						},
						"minItems": 2,
					},
					"considerations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"objectives":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required":             []any{"id", "title", "context", "challenge", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "modules"},
	"additionalProperties": false,
}

var (
	schemaOnce sync.Once
	schemaErr  error
	schema     *jsonschema.Schema
)

// compiledPackSchema compiles packSchema once and caches the result.
func compiledPackSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the Go literal through encoding/json first.
		raw, err := json.Marshal(packSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemaErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://content-pack.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add pack schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}
