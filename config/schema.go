package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// schemaConfig mirrors Config minus the inline Extensions map, which
// tools/schema-generator layers in during composition.
type schemaConfig struct {
	Name      string           `yaml:"name,omitempty" jsonschema:"description=Name of the workbench profile"`
	Version   string           `yaml:"version" jsonschema:"required,description=Configuration version (e.g. '1.0')"`
	TUI       *TUIConfig       `yaml:"tui,omitempty" jsonschema:"description=TUI appearance and behavior settings"`
	Workbench *WorkbenchConfig `yaml:"workbench,omitempty" jsonschema:"description=Dock and panel settings"`
	Bridge    *BridgeConfig    `yaml:"bridge,omitempty" jsonschema:"description=Event bridge settings"`
}

// GenerateSchema reflects the workbench.yml structure into a draft-07
// JSON Schema. Property names come from the yaml tags, nested structs
// are inlined rather than referenced, and unknown fields are rejected.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		DoNotReference:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&schemaConfig{})
	schema.Title = "Workbench Configuration"
	schema.Description = "Base schema for core workbench.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
