package profile

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://user_profile.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// schemaDefinition describes a stored profile blob. Enumerations are built
// from the option tables so the two cannot drift.
func schemaDefinition() map[string]any {
	props := map[string]any{
		"id": map[string]any{"type": "string"},
		"interests": map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
	}
	required := make([]any, 0, len(RequiredFields))
	for _, f := range RequiredFields {
		enum := make([]any, 0, len(Options(f)))
		for _, o := range Options(f) {
			enum = append(enum, o.Value)
		}
		props[string(f)] = map[string]any{"type": "string", "enum": enum}
		required = append(required, string(f))
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func profileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, schemaDefinition()); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Encode serializes a complete profile to its stored JSON form.
func Encode(p UserProfile) ([]byte, error) {
	if !p.IsComplete() {
		return nil, fmt.Errorf("encode profile: missing %v", p.Missing())
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return b, nil
}

// Decode parses a stored profile blob. The blob must satisfy the profile
// schema: every required field present and drawn from its option set.
func Decode(raw []byte) (UserProfile, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return UserProfile{}, fmt.Errorf("decode profile: invalid JSON: %w", err)
	}

	sch, err := profileSchema()
	if err != nil {
		return UserProfile{}, fmt.Errorf("compile profile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return UserProfile{}, fmt.Errorf("decode profile: schema validation failed: %w", err)
	}

	var p UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}
