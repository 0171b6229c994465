package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// GenerateSchema generates the JSON Schema for sticky.yml. The Extensions
// field is excluded; unknown top-level keys are validated by their owners.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Sticky Configuration"
	schema.Description = "Schema for sticky.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"
	// Every field has a default; nothing is required.
	schema.Required = nil

	return json.MarshalIndent(schema, "", "  ")
}
