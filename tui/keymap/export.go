package keymap

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// TUIInfo is the serializable listing of a TUI's keybindings.
type TUIInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Sections    []SectionInfo `json:"sections"`
}

// SectionInfo is one keymap section in listing form.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is one binding in listing form. ConfigKey is the snake_case
// workbench.yml key that overrides the binding, when one exists.
type BindingInfo struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	ConfigKey   string   `json:"config_key"`
}

// Describe flattens a keymap into its listing form, annotating each binding
// with the config key that overrides it.
func Describe(name, description string, km SectionedKeyMap) TUIInfo {
	overrideKeys := configKeys(km)

	sections := km.Sections()
	info := TUIInfo{
		Name:        name,
		Description: description,
		Sections:    make([]SectionInfo, 0, len(sections)),
	}
	for _, s := range sections {
		sec := SectionInfo{
			Name:     s.Name,
			Bindings: make([]BindingInfo, 0, len(s.Bindings)),
		}
		for _, b := range s.Bindings {
			help := b.Help()
			sec.Bindings = append(sec.Bindings, BindingInfo{
				Keys:        b.Keys(),
				Description: help.Desc,
				Enabled:     b.Enabled(),
				ConfigKey:   overrideKeys[help.Desc],
			})
		}
		info.Sections = append(info.Sections, sec)
	}
	return info
}

// configKeys maps each binding's help text to its snake_case field name.
// Sections() hands out bare bindings, so help text is the only identity the
// two walks share.
func configKeys(km interface{}) map[string]string {
	keys := make(map[string]string)
	collectConfigKeys(reflect.ValueOf(km), keys)
	return keys
}

func collectConfigKeys(v reflect.Value, out map[string]string) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		value := v.Field(i)
		switch {
		case field.Type == bindingType:
			if !value.CanInterface() {
				continue
			}
			if b, ok := value.Interface().(key.Binding); ok && b.Help().Desc != "" {
				out[b.Help().Desc] = toSnakeCase(field.Name)
			}
		case field.Anonymous || value.Kind() == reflect.Struct:
			collectConfigKeys(value, out)
		}
	}
}
