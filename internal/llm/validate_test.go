package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "grading-test",
	Description: "grading verdict",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct":  map[string]any{"type": "boolean"},
			"feedback": map[string]any{"type": "string"},
		},
		"required":             []any{"correct", "feedback"},
		"additionalProperties": false,
	},
}

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"correct":true,"feedback":"nice"}`, false},
		{"missing required", `{"correct":true}`, true},
		{"wrong type", `{"correct":"yes","feedback":"x"}`, true},
		{"extra property", `{"correct":true,"feedback":"x","extra":1}`, true},
		{"not json", `hello there`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSchema(testSchema, json.RawMessage(tt.raw))
			if tt.wantErr {
				var malformed *MalformedOutputError
				if !errors.As(err, &malformed) {
					t.Fatalf("expected MalformedOutputError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckSchema_NilSchemaPasses(t *testing.T) {
	if err := checkSchema(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass anything: %v", err)
	}
}
