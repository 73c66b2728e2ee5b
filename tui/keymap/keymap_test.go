package keymap

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/workbench/config"
)

func assertKeys(t *testing.T, b key.Binding, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(b.Keys(), want) {
		t.Errorf("keys = %v, want %v", b.Keys(), want)
	}
}

func TestDefaultVim(t *testing.T) {
	b := DefaultVim()

	assertKeys(t, b.Up, "k", "up")
	assertKeys(t, b.Down, "j", "down")
	assertKeys(t, b.ToggleLeft, "ctrl+b")
	assertKeys(t, b.ToggleBottom, "ctrl+j")
	assertKeys(t, b.NextPanel, "]")
	assertKeys(t, b.Relocate, "m")
	assertKeys(t, b.Quit, "q", "ctrl+c")
}

func TestPresetSelection(t *testing.T) {
	emacsCfg := &config.Config{TUI: &config.TUIConfig{Preset: "emacs"}}
	b := Load(emacsCfg, "")
	assertKeys(t, b.Up, "ctrl+p", "up")
	assertKeys(t, b.Back, "ctrl+g", "esc")
	// Dock bindings survive preset swaps.
	assertKeys(t, b.ToggleLeft, "ctrl+b")

	arrowsCfg := &config.Config{TUI: &config.TUIConfig{Preset: "arrows"}}
	b = Load(arrowsCfg, "")
	assertKeys(t, b.Up, "up")
	assertKeys(t, b.Top, "home")

	// Unknown preset falls back to vim.
	weirdCfg := &config.Config{TUI: &config.TUIConfig{Preset: "dvorak"}}
	b = Load(weirdCfg, "")
	assertKeys(t, b.Up, "k", "up")

	// Nil config falls back to vim.
	b = Load(nil, "")
	assertKeys(t, b.Up, "k", "up")
}

func TestLoadAppliesGlobalOverrides(t *testing.T) {
	cfg := &config.Config{
		TUI: &config.TUIConfig{
			Keybindings: &config.KeybindingsConfig{
				Navigation: config.KeybindingSectionConfig{
					"up": []string{"w"},
				},
				Docks: config.KeybindingSectionConfig{
					"toggle_left": []string{"f1"},
				},
			},
		},
	}

	b := Load(cfg, "")
	assertKeys(t, b.Up, "w")
	assertKeys(t, b.ToggleLeft, "f1")
	// Untouched bindings keep their defaults.
	assertKeys(t, b.Down, "j", "down")

	// Help description is preserved across overrides.
	if b.ToggleLeft.Help().Desc != "toggle left dock" {
		t.Errorf("help desc = %q", b.ToggleLeft.Help().Desc)
	}
	if b.ToggleLeft.Help().Key != "f1" {
		t.Errorf("help key = %q", b.ToggleLeft.Help().Key)
	}
}

func TestLoadAppliesTUIOverrides(t *testing.T) {
	cfg := &config.Config{
		TUI: &config.TUIConfig{
			Keybindings: &config.KeybindingsConfig{
				Docks: config.KeybindingSectionConfig{
					"toggle_bottom": []string{"f3"},
				},
				TUIOverrides: map[string]map[string]config.KeybindingSectionConfig{
					"demo": {
						"docks": {
							"toggle_bottom": []string{"f4"},
						},
					},
				},
			},
		},
	}

	// TUI-specific overrides win over global ones.
	b := Load(cfg, "demo")
	assertKeys(t, b.ToggleBottom, "f4")

	// Other TUIs only see the global override.
	b = Load(cfg, "logs")
	assertKeys(t, b.ToggleBottom, "f3")
}

func TestApplyOverridesEmbedded(t *testing.T) {
	type demoKeyMap struct {
		Base
		OpenBridge key.Binding
	}

	km := demoKeyMap{
		Base: DefaultVim(),
		OpenBridge: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "open bridge"),
		),
	}

	ApplyOverrides(&km, config.KeybindingSectionConfig{
		"open_bridge": []string{"ctrl+o"},
		"quit":        []string{"ctrl+q"},
	})

	assertKeys(t, km.OpenBridge, "ctrl+o")
	assertKeys(t, km.Quit, "ctrl+q")
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Up", "up"},
		{"ToggleLeft", "toggle_left"},
		{"NextPanel", "next_panel"},
		{"PageDown", "page_down"},
		{"HTTPServer", "http_server"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.input); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSections(t *testing.T) {
	b := DefaultVim()

	nav := NavigationSection(b.Up, b.Down, b.PageUp, b.PageDown)
	if nav.Name != SectionNavigation {
		t.Errorf("section name = %q", nav.Name)
	}
	if len(nav.FilterEnabled()) != 4 {
		t.Errorf("enabled bindings = %d, want 4", len(nav.FilterEnabled()))
	}
	if nav.IsEmpty() {
		t.Error("section with enabled bindings reported empty")
	}

	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disabled"))
	disabled.SetEnabled(false)
	empty := NewSection("Custom", disabled)
	if !empty.IsEmpty() {
		t.Error("section with only disabled bindings should be empty")
	}

	extended := nav.With(b.Top, b.Bottom)
	if len(extended.Bindings) != 6 {
		t.Errorf("extended section bindings = %d, want 6", len(extended.Bindings))
	}
	if len(nav.Bindings) != 4 {
		t.Error("With must not mutate the original section")
	}
}

type sectionedStub struct {
	Base
}

func (s sectionedStub) Sections() []Section {
	return []Section{
		DocksSection(s.ToggleLeft, s.NextPanel),
		SystemSection(s.Help, s.Quit),
	}
}

func TestDescribeKeymap(t *testing.T) {
	info := Describe("demo", "workbench demo workspace", sectionedStub{Base: DefaultVim()})

	if info.Name != "demo" {
		t.Errorf("info name = %q", info.Name)
	}
	if len(info.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(info.Sections))
	}

	docks := info.Sections[0]
	if docks.Name != SectionDocks {
		t.Errorf("first section = %q", docks.Name)
	}
	if docks.Bindings[0].ConfigKey != "toggle_left" {
		t.Errorf("config key = %q, want toggle_left", docks.Bindings[0].ConfigKey)
	}
	if docks.Bindings[1].ConfigKey != "next_panel" {
		t.Errorf("config key = %q, want next_panel", docks.Bindings[1].ConfigKey)
	}
}
