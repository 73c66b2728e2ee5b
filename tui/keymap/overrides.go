package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/workbench/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides rewrites the key.Binding fields of km from a config
// section, matching snake_case config keys against field names. km must
// be a pointer to a struct; embedded structs are walked too. Overridden
// bindings keep their help description, with the first new key shown as
// the help key.
//
//	ApplyOverrides(&km, section) // section["toggle_left"] -> km.ToggleLeft
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	overrideBindings(v.Elem(), overrides)
}

func overrideBindings(v reflect.Value, overrides config.KeybindingSectionConfig) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		value := v.Field(i)
		if !value.CanSet() {
			continue
		}

		switch {
		case field.Type == bindingType:
			keys, ok := overrides[toSnakeCase(field.Name)]
			if !ok || len(keys) == 0 {
				continue
			}
			desc := value.Interface().(key.Binding).Help().Desc
			value.Set(reflect.ValueOf(key.NewBinding(
				key.WithKeys(keys...),
				key.WithHelp(keys[0], desc),
			)))
		case field.Anonymous && value.Kind() == reflect.Struct:
			overrideBindings(value, overrides)
		}
	}
}

// toSnakeCase turns a field name into its config key form. Acronym runs
// stay together: HTTPServer becomes http_server, not h_t_t_p_server.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(runes) + 4)
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-':
			sb.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteRune('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
