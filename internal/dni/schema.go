package dni

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordSchema returns the JSON-Schema (draft 2020-12 subset) that every
// rendered record must satisfy before it is persisted or returned to a
// caller. It encodes the data-model invariants: 8-digit document number,
// uppercase-letters-only name fields, real-looking date strings, bounded age.
func BuildRecordSchema() map[string]any {
	nameProp := map[string]any{
		"type":    "string",
		"pattern": `^[A-ZÁÉÍÓÚÑ ]+$`,
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_number":  map[string]any{"type": "string", "pattern": `^\d{8}$`},
			"paternal_surname": nameProp,
			"maternal_surname": nameProp,
			"given_names":      nameProp,
			"birth_date":       map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{4}$`},
			"birth_date_iso":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"age":              map[string]any{"type": "integer", "minimum": MinAge, "maximum": MaxAge},
			"sex":              map[string]any{"type": "string", "enum": []string{"M", "F"}},
			"sex_label":        map[string]any{"type": "string", "enum": []string{"MASCULINO", "FEMENINO"}},
			"full_name":        nameProp,
		},
		"required": []string{"document_number"},
	}
}

// ValidateRecordJSON validates rendered record JSON against schemaMap.
func ValidateRecordJSON(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
