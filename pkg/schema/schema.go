// Package schema validates inbound control payloads before they reach the
// dispatcher. Schemas are fixed per operation; compiled forms are cached.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Color accepts a named color or a kelvin temperature, never both.
var Color = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"device": {"type": "string"},
		"name": {"type": "string", "minLength": 1},
		"kelvin": {"type": "integer", "minimum": 1000, "maximum": 10000}
	},
	"oneOf": [
		{"required": ["name"]},
		{"required": ["kelvin"]}
	],
	"additionalProperties": false
}`)

// Brightness accepts a 0-100 level.
var Brightness = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"device": {"type": "string"},
		"level": {"type": "integer", "minimum": 0, "maximum": 100}
	},
	"required": ["level"],
	"additionalProperties": false
}`)

// Volume accepts an absolute level or a delta, never both.
var Volume = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"serial": {"type": "string"},
		"type": {"type": "string"},
		"level": {"type": "integer", "minimum": 0, "maximum": 100},
		"delta": {"type": "integer", "minimum": -100, "maximum": 100}
	},
	"oneOf": [
		{"required": ["level"]},
		{"required": ["delta"]}
	],
	"additionalProperties": false
}`)

// Announcement carries the sender and message length limits.
var Announcement = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"sender": {"type": "string", "maxLength": 40},
		"message": {"type": "string", "minLength": 1, "maxLength": 145}
	},
	"required": ["message"],
	"additionalProperties": false
}`)

// Validator validates payloads against JSON Schema documents, caching
// compiled schemas keyed by their raw bytes.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// Validate validates payload against the given JSON Schema document.
// Returns nil if valid, or an error describing the validation failures.
func (v *Validator) Validate(schemaDoc json.RawMessage, payload map[string]any) error {
	if len(schemaDoc) == 0 || string(schemaDoc) == "{}" || string(schemaDoc) == "null" {
		return nil // No schema = no validation
	}

	compiled, err := v.compile(schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	return compiled.Validate(payload)
}

func (v *Validator) compile(schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var schemaMap any
	if err := json.Unmarshal(schemaDoc, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}
