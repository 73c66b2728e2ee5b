package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/workbench/config"
)

// Base holds the bindings shared by every workbench TUI: movement,
// the two core actions, dock control and system keys.
type Base struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Confirm key.Binding
	Back    key.Binding

	ToggleLeft   key.Binding
	ToggleRight  key.Binding
	ToggleBottom key.Binding
	NextPanel    key.Binding
	PrevPanel    key.Binding
	Relocate     key.Binding

	Help key.Binding
	Quit key.Binding
}

// Sections groups the base bindings into the standard help sections,
// satisfying SectionedKeyMap.
func (b Base) Sections() []Section {
	return []Section{
		NavigationSection(b.Up, b.Down, b.Left, b.Right, b.PageUp, b.PageDown, b.Top, b.Bottom),
		ActionsSection(b.Confirm, b.Back),
		DocksSection(b.ToggleLeft, b.ToggleRight, b.ToggleBottom, b.NextPanel, b.PrevPanel, b.Relocate),
		SystemSection(b.Help, b.Quit),
	}
}

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// DefaultVim returns the vim-style keymap, the workbench default.
func DefaultVim() Base {
	return Base{
		Up:       bind("k/up", "up", "k", "up"),
		Down:     bind("j/down", "down", "j", "down"),
		Left:     bind("h/left", "left", "h", "left"),
		Right:    bind("l/right", "right", "l", "right"),
		PageUp:   bind("C-u", "page up", "ctrl+u", "pgup"),
		PageDown: bind("C-d", "page down", "ctrl+d", "pgdown"),
		Top:      bind("g", "top", "g"),
		Bottom:   bind("G", "bottom", "G"),

		Confirm: bind("enter", "confirm", "enter"),
		Back:    bind("esc", "back", "esc"),

		ToggleLeft:   bind("C-b", "toggle left dock", "ctrl+b"),
		ToggleRight:  bind("C-e", "toggle right dock", "ctrl+e"),
		ToggleBottom: bind("C-j", "toggle bottom dock", "ctrl+j"),
		NextPanel:    bind("]", "next panel", "]"),
		PrevPanel:    bind("[", "prev panel", "["),
		Relocate:     bind("m", "move panel", "m"),

		Help: bind("?", "help", "?"),
		Quit: bind("q", "quit", "q", "ctrl+c"),
	}
}

// DefaultEmacs swaps the navigation and back bindings for emacs-style
// chords. Dock and system bindings match the vim preset.
func DefaultEmacs() Base {
	b := DefaultVim()
	b.Up = bind("C-p", "up", "ctrl+p", "up")
	b.Down = bind("C-n", "down", "ctrl+n", "down")
	b.Left = bind("left", "left", "left")
	b.Right = bind("right", "right", "right")
	b.PageUp = bind("M-v", "page up", "alt+v", "pgup")
	b.PageDown = bind("C-v", "page down", "ctrl+v", "pgdown")
	b.Top = bind("M-<", "top", "alt+<", "home")
	b.Bottom = bind("M->", "bottom", "alt+>", "end")
	b.Back = bind("C-g", "back", "ctrl+g", "esc")
	return b
}

// DefaultArrows navigates with arrow keys only, for users who want
// plain terminal conventions.
func DefaultArrows() Base {
	b := DefaultVim()
	b.Up = bind("up", "up", "up")
	b.Down = bind("down", "down", "down")
	b.Left = bind("left", "left", "left")
	b.Right = bind("right", "right", "right")
	b.PageUp = bind("PgUp", "page up", "pgup", "shift+up")
	b.PageDown = bind("PgDn", "page down", "pgdown", "shift+down")
	b.Top = bind("Home", "top", "home")
	b.Bottom = bind("End", "bottom", "end")
	return b
}

func presetFor(name string) Base {
	switch name {
	case "emacs":
		return DefaultEmacs()
	case "arrows":
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// Load resolves the keymap for one TUI: the configured preset
// (vim, emacs or arrows), then global keybinding overrides, then
// overrides scoped to tuiName. Unknown presets and nil configs fall
// back to vim.
func Load(cfg *config.Config, tuiName string) Base {
	preset := ""
	if cfg != nil && cfg.TUI != nil {
		preset = cfg.TUI.Preset
	}
	base := presetFor(preset)

	if cfg == nil || cfg.TUI == nil || cfg.TUI.Keybindings == nil {
		return base
	}
	kb := cfg.TUI.Keybindings

	// Section names only organize the config file; the action keys are
	// unique across sections, so each section applies to the whole map.
	for _, section := range []config.KeybindingSectionConfig{
		kb.Navigation, kb.Actions, kb.Docks, kb.System,
	} {
		ApplyOverrides(&base, section)
	}

	if tuiName != "" {
		for _, section := range kb.TUIOverrides[tuiName] {
			ApplyOverrides(&base, section)
		}
	}

	return base
}
