package keymap

import "github.com/charmbracelet/bubbles/key"

// Section groups related keybindings under a heading for help display.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that organize their bindings
// into named sections. The help overlay and the keys command render
// sectioned keymaps group by group.
type SectionedKeyMap interface {
	Sections() []Section
}

// Shared section names. Workspaces that stick to these get uniform help
// output across every surface that renders the keymap.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionDocks      = "Docks"
	SectionSystem     = "System"
)

// NewSection builds a section with a custom heading.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// NavigationSection groups movement bindings such as Up, Down and PageUp.
func NavigationSection(bindings ...key.Binding) Section {
	return NewSection(SectionNavigation, bindings...)
}

// ActionsSection groups bindings that act on the focused panel.
func ActionsSection(bindings ...key.Binding) Section {
	return NewSection(SectionActions, bindings...)
}

// DocksSection groups dock toggles, panel cycling and relocation.
func DocksSection(bindings ...key.Binding) Section {
	return NewSection(SectionDocks, bindings...)
}

// SystemSection groups bindings like Help and Quit.
func SystemSection(bindings ...key.Binding) Section {
	return NewSection(SectionSystem, bindings...)
}

// FilterEnabled returns the section's enabled bindings.
func (s Section) FilterEnabled() []key.Binding {
	enabled := make([]key.Binding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Enabled() {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

// IsEmpty reports whether the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	return len(s.FilterEnabled()) == 0
}

// With returns a copy of the section with extra bindings appended.
func (s Section) With(bindings ...key.Binding) Section {
	combined := append([]key.Binding(nil), s.Bindings...)
	return Section{Name: s.Name, Bindings: append(combined, bindings...)}
}
