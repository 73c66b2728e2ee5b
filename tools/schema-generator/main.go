// Command schema-generator regenerates the embedded configuration schema.
// It reflects the base schema from the config package, then applies the
// adjustments reflection cannot express: extension keys are allowed at the
// top level, and the keybindings object accepts per-TUI override sections.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/workbench/config"
)

func main() {
	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(schemaBytes, &schema); err != nil {
		log.Fatalf("Error parsing generated schema: %v", err)
	}

	composeSchema(schema)

	output, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error serializing composed schema: %v", err)
	}
	output = append(output, '\n')

	outputPath := filepath.Join("schema", "workbench.embedded.schema.json")
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated embedded schema at %s", outputPath)
}

// composeSchema rewrites the reflected base schema into the embedded form.
func composeSchema(schema map[string]interface{}) {
	schema["title"] = "Workbench Configuration Schema"
	schema["description"] = "A unified schema for workbench.yml configuration files."

	// Unknown top-level keys are extension sections for companion tools.
	schema["additionalProperties"] = true
	delete(schema, "required")

	keybindingSection := map[string]interface{}{
		"type": "object",
		"additionalProperties": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	}

	// The keybindings object carries per-TUI overrides under arbitrary keys,
	// which reflection renders as additionalProperties: false. Replace the
	// node with one that accepts them.
	if tui := propertyNode(schema, "tui"); tui != nil {
		if props, ok := tui["properties"].(map[string]interface{}); ok {
			props["keybindings"] = map[string]interface{}{
				"type":        "object",
				"description": "Custom keybinding overrides",
				"properties": map[string]interface{}{
					"navigation": keybindingSection,
					"actions":    keybindingSection,
					"docks":      keybindingSection,
					"system":     keybindingSection,
				},
				"additionalProperties": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": keybindingSection,
				},
			}
		}
	}
}

func propertyNode(schema map[string]interface{}, name string) map[string]interface{} {
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return nil
	}
	node, ok := props[name].(map[string]interface{})
	if !ok {
		return nil
	}
	return node
}
