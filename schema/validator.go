// Package schema validates workbench configuration documents against
// the embedded JSON Schema.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed workbench.embedded.schema.json
var embeddedSchemaData []byte

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("workbench.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return nil, fmt.Errorf("failed to add embedded schema resource: %w", err)
	}
	return c.Compile("workbench.json")
})

// ValidateConfig checks a raw workbench.yml document against the embedded
// schema. The document is validated as parsed, so property names in the
// file are checked directly.
func ValidateConfig(yamlData []byte) error {
	s, err := compiled()
	if err != nil {
		return fmt.Errorf("failed to compile embedded schema: %w", err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(yamlData, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML for validation: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	norm, err := normalize(doc)
	if err != nil {
		return err
	}
	if err := s.Validate(norm); err != nil {
		return formatError(err)
	}
	return nil
}

// normalize round-trips the document through JSON so the validator sees
// the value shapes a JSON decoder would produce.
func normalize(doc interface{}) (interface{}, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config for validation: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert config for validation: %w", err)
	}
	return out, nil
}

// formatError flattens the validator's error tree into one line per
// failing property.
func formatError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	var lines []string
	flatten(ve, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func flatten(err *jsonschema.ValidationError, lines *[]string) {
	if err.InstanceLocation != "" {
		*lines = append(*lines, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		flatten(cause, lines)
	}
}
