package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject":      map[string]any{"type": "string"},
			"work_minutes": map[string]any{"type": "integer"},
			"intensity":    map[string]any{"type": "string", "enum": []any{"light", "normal", "deep"}},
			"tips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"subject", "work_minutes"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["subject"].Type != "STRING" {
		t.Fatalf("expected STRING for subject, got %s", schema.Properties["subject"].Type)
	}
	if schema.Properties["work_minutes"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for work_minutes, got %s", schema.Properties["work_minutes"].Type)
	}
	if len(schema.Properties["intensity"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["intensity"].Enum))
	}
	if schema.Properties["tips"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for tips, got %s", schema.Properties["tips"].Type)
	}
	if schema.Properties["tips"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for tips items, got %s", schema.Properties["tips"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
