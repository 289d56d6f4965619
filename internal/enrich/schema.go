package enrich

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema the response must conform to. Compiled
// lazily on first validation; safe to share.
type Schema struct {
	// Name identifies the schema (used as the OpenAI schema name).
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// Validate checks raw against the schema. Returns *ErrInvalidResponse
// for malformed JSON or schema violations.
func (s *Schema) Validate(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s.once.Do(s.compile)
	if s.compErr != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", s.Name, s.compErr)}
	}

	if err := s.compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func (s *Schema) compile() {
	// The jsonschema library expects a parsed JSON value, not a map of
	// Go values; round-trip through JSON to normalize.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		s.compErr = err
		return
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		s.compErr = err
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		s.compErr = err
		return
	}
	s.compiled, s.compErr = c.Compile(url)
}

// characterInfoSchema describes the lookup response: an array of
// {char, pinyin, meaning} records, possibly empty, possibly partial
// relative to the request.
var characterInfoSchema = &Schema{
	Name: "character-info",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"char":    map[string]any{"type": "string"},
				"pinyin":  map[string]any{"type": "string"},
				"meaning": map[string]any{"type": "string"},
			},
			"required": []any{"char", "pinyin", "meaning"},
		},
	},
}
