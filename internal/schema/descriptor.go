// Package schema validates answer descriptors before they reach the
// grading engine. Descriptors arrive as raw JSON from question
// storage or from the grading API and are not trusted blindly: a
// malformed descriptor must surface as a 400, not as a silent
// "incorrect" grade.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// descriptorSchema is the JSON Schema for model.AnswerDescriptor.
var descriptorSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"answer_type": map[string]any{
			"type": "string",
			"enum": []any{
				"multiple_choice", "true_false", "numeric",
				"short_answer", "expression", "fill_blank",
				"matching", "long_answer",
			},
		},
		"value": map[string]any{
			"type":      []any{"string", "number", "boolean"},
			"maxLength": 10000,
		},
		"latex": map[string]any{
			"type":      "string",
			"maxLength": 10000,
		},
		"alternates": map[string]any{
			"type":     "array",
			"maxItems": 32,
			"items":    map[string]any{"type": "string", "maxLength": 10000},
		},
		"tolerance": map[string]any{
			"type":             "number",
			"exclusiveMinimum": 0,
		},
		"choices": map[string]any{
			"type":     "array",
			"maxItems": 26,
			"items":    map[string]any{"type": "string"},
		},
		"correct_index": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"blanks": map[string]any{
			"type":     "array",
			"maxItems": 64,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"position":   map[string]any{"type": "integer", "minimum": 0},
					"value":      map[string]any{"type": []any{"string", "number"}},
					"latex":      map[string]any{"type": "string"},
					"alternates": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required":             []any{"value"},
				"additionalProperties": false,
			},
		},
		"correct_matches": map[string]any{
			"type":     "array",
			"maxItems": 64,
			"items":    map[string]any{"type": "integer", "minimum": -1},
		},
		"pairs": map[string]any{
			"type":     "array",
			"maxItems": 64,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"left":  map[string]any{"type": "string"},
					"right": map[string]any{"type": "string"},
				},
				"required":             []any{"left", "right"},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// getCompiled compiles the descriptor schema once and caches it.
func getCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The library expects a parsed JSON value; round-trip the
		// definition to get a clean representation.
		raw, err := json.Marshal(descriptorSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal descriptor schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse descriptor schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://answer-descriptor.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// ValidateDescriptor checks raw descriptor JSON against the schema.
// A nil return means the document is safe to unmarshal into
// model.AnswerDescriptor.
func ValidateDescriptor(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	s, err := getCompiled()
	if err != nil {
		return err
	}
	if err := s.Validate(parsed); err != nil {
		return fmt.Errorf("descriptor schema: %w", err)
	}
	return nil
}
