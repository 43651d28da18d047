package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled caches compiled schemas by name. Schemas are static per kind,
// so the name is a sufficient cache key.
var compiled sync.Map // map[string]*jsonschema.Schema

// checkSchema validates raw output against the schema. A nil schema
// always passes. Failures come back as *MalformedOutputError.
func checkSchema(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &MalformedOutputError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compileSchema(schema)
	if err != nil {
		return &MalformedOutputError{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := sch.Validate(doc); err != nil {
		return &MalformedOutputError{Content: raw, Err: fmt.Errorf("schema %q: %w", schema.Name, err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if c, ok := compiled.Load(schema.Name); ok {
		return c.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value; round-trip the definition
	// map to normalize typed values (ints vs float64 etc.).
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mentor://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiled.Store(schema.Name, sch)
	return sch, nil
}
