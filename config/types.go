package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// KeybindingSectionConfig defines keybindings for a specific section (navigation, docks, etc.)
// Keys are action names (e.g., "up", "toggle_left"), values are lists of key combinations.
type KeybindingSectionConfig map[string][]string

// KeybindingsConfig defines the structure for custom keybindings.
type KeybindingsConfig struct {
	// Standard sections - apply to all TUIs
	Navigation KeybindingSectionConfig `yaml:"navigation,omitempty" toml:"navigation,omitempty" jsonschema:"description=Navigation keybindings (up, down, left, right, top, bottom)"`
	Actions    KeybindingSectionConfig `yaml:"actions,omitempty" toml:"actions,omitempty" jsonschema:"description=Action keybindings (select, back)"`
	Docks      KeybindingSectionConfig `yaml:"docks,omitempty" toml:"docks,omitempty" jsonschema:"description=Dock keybindings (toggle_left, toggle_right, toggle_bottom, next_panel, prev_panel)"`
	System     KeybindingSectionConfig `yaml:"system,omitempty" toml:"system,omitempty" jsonschema:"description=System keybindings (help, quit)"`

	// TUIOverrides holds per-TUI keybinding overrides, keyed by TUI name
	// (e.g. "demo"), then by section.
	TUIOverrides map[string]map[string]KeybindingSectionConfig `yaml:"-" toml:"-" jsonschema:"-"`
}

// standardSections maps the recognized section names to their fields, so
// the YAML and TOML decoders share one dispatch table.
func (k *KeybindingsConfig) standardSections() map[string]*KeybindingSectionConfig {
	return map[string]*KeybindingSectionConfig{
		"navigation": &k.Navigation,
		"actions":    &k.Actions,
		"docks":      &k.Docks,
		"system":     &k.System,
	}
}

// UnmarshalYAML decodes the keybindings block. Keys that are not standard
// section names are TUI names carrying per-TUI override sections.
func (k *KeybindingsConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}

	standard := k.standardSections()
	for key, valueNode := range raw {
		if dst, ok := standard[key]; ok {
			if err := valueNode.Decode(dst); err != nil {
				return fmt.Errorf("failed to decode %s keybindings: %w", key, err)
			}
			continue
		}

		var sections map[string]KeybindingSectionConfig
		if err := valueNode.Decode(&sections); err != nil {
			return fmt.Errorf("failed to decode keybinding overrides for TUI %q: %w", key, err)
		}
		if k.TUIOverrides == nil {
			k.TUIOverrides = make(map[string]map[string]KeybindingSectionConfig)
		}
		k.TUIOverrides[key] = sections
	}

	return nil
}

// UnmarshalKeybindingsTOML parses a TOML keybindings document into a
// KeybindingsConfig. Modular keybinding files in the config directory may be
// written in TOML instead of YAML; Load merges them over workbench.yml.
func UnmarshalKeybindingsTOML(data []byte) (*KeybindingsConfig, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	k := &KeybindingsConfig{}
	standard := k.standardSections()

	for key, value := range raw {
		if dst, ok := standard[key]; ok {
			*dst = tomlSection(value)
			continue
		}

		tuiMap, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		sections := make(map[string]KeybindingSectionConfig, len(tuiMap))
		for name, sectionValue := range tuiMap {
			sections[name] = tomlSection(sectionValue)
		}
		if k.TUIOverrides == nil {
			k.TUIOverrides = make(map[string]map[string]KeybindingSectionConfig)
		}
		k.TUIOverrides[key] = sections
	}

	return k, nil
}

// tomlSection converts one decoded TOML table into a section map, skipping
// entries that are not arrays of strings.
func tomlSection(value interface{}) KeybindingSectionConfig {
	table, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}
	section := make(KeybindingSectionConfig)
	for action, keys := range table {
		arr, ok := keys.([]interface{})
		if !ok {
			continue
		}
		var combos []string
		for _, item := range arr {
			if s, ok := item.(string); ok {
				combos = append(combos, s)
			}
		}
		section[action] = combos
	}
	return section
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	Icons       string             `yaml:"icons,omitempty" toml:"icons,omitempty" jsonschema:"description=Icon set to use: nerd or ascii,enum=nerd,enum=ascii"`
	Theme       string             `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"description=Color theme for terminal interfaces,enum=kanagawa,enum=gruvbox,enum=terminal"`
	Preset      string             `yaml:"preset,omitempty" toml:"preset,omitempty" jsonschema:"description=Keybinding preset: vim (default), emacs, or arrows,enum=vim,enum=emacs,enum=arrows,default=vim"`
	Keybindings *KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" jsonschema:"description=Custom keybinding overrides"`
}

// WorkbenchConfig holds the dock and panel settings for the workbench.
type WorkbenchConfig struct {
	// HiddenButtons lists glob patterns matched against panel names; matching
	// panels get no sidebar button (e.g. "debug*").
	HiddenButtons []string `yaml:"hidden_buttons,omitempty" toml:"hidden_buttons,omitempty" jsonschema:"description=Glob patterns for panel names whose sidebar buttons are hidden"`

	// Placement maps a panel name to its dock position (left, right, bottom),
	// overriding the panel's default placement.
	Placement map[string]string `yaml:"placement,omitempty" toml:"placement,omitempty" jsonschema:"description=Panel name to dock position overrides (left or right or bottom)"`

	// OpenDocks lists docks that start open (left, right, bottom).
	OpenDocks []string `yaml:"open_docks,omitempty" toml:"open_docks,omitempty" jsonschema:"description=Docks that start open"`
}

// BridgeConfig holds configuration for the workbench event bridge.
type BridgeConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" toml:"enabled,omitempty" jsonschema:"description=Whether the websocket event bridge is started with the demo"`
	Listen  string `yaml:"listen,omitempty" toml:"listen,omitempty" jsonschema:"description=Bridge listen address (default 127.0.0.1:7599)"`
}

// Config represents the workbench.yml configuration
type Config struct {
	Name    string `yaml:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Name of the workbench profile"`
	Version string `yaml:"version" toml:"version" jsonschema:"description=Configuration version (e.g. 1.0)"`

	TUI       *TUIConfig       `yaml:"tui,omitempty" toml:"tui,omitempty" jsonschema:"description=TUI appearance and behavior settings"`
	Workbench *WorkbenchConfig `yaml:"workbench,omitempty" toml:"workbench,omitempty" jsonschema:"description=Dock and panel settings"`
	Bridge    *BridgeConfig    `yaml:"bridge,omitempty" toml:"bridge,omitempty" jsonschema:"description=Event bridge settings"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Bridge != nil && c.Bridge.Listen == "" {
		c.Bridge.Listen = "127.0.0.1:7599"
	}
}

// validPositions is the set of accepted dock position names in config files.
var validPositions = map[string]bool{"left": true, "right": true, "bottom": true}

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.Workbench == nil {
		return nil
	}
	for panel, pos := range c.Workbench.Placement {
		if !validPositions[pos] {
			return fmt.Errorf("placement for panel %q: invalid position %q (want left, right or bottom)", panel, pos)
		}
	}
	for _, d := range c.Workbench.OpenDocks {
		if !validPositions[d] {
			return fmt.Errorf("open_docks: invalid dock %q (want left, right or bottom)", d)
		}
	}
	return nil
}

// UnmarshalExtension decodes one extension section of workbench.yml into
// target, which must be a pointer. Companion tools keep their settings under
// their own top-level key; a missing key leaves target zero-valued.
//
//	var logCfg logging.Config
//	cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	raw, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// mapstructure bridges the generic map into the typed struct, reusing
	// the yaml tags for field names.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}
	return nil
}
