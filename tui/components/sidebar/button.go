package sidebar

import (
	"fmt"

	"github.com/grovetools/workbench/dock"
)

// Button is one launcher in the sidebar: the rendered form of a panel that
// currently offers both an icon and a tooltip.
type Button struct {
	Kind    dock.PanelKind
	Name    string
	Icon    string
	Tooltip string

	// Active marks the button whose panel is the active panel of an open
	// dock. An active button's action closes that dock; an inactive one
	// toggles its own panel.
	Active bool

	Action   dock.Action
	Focus    dock.FocusHandle
	Position dock.Position

	panel dock.Panel
}

// ID is the button's identity for hit zones and re-render diffing. The same
// panel yields distinct identities in its active and inactive states.
func (b Button) ID() string {
	if b.Active {
		return fmt.Sprintf("sidebar/%s/active", b.Name)
	}
	return fmt.Sprintf("sidebar/%s", b.Name)
}

// Click runs the press behavior: move focus to the owning dock, then
// dispatch the action. Both effects complete before Click returns.
func (b Button) Click(host dock.Host) {
	if host == nil {
		return
	}
	host.Focus(b.Focus)
	host.Dispatch(b.Action)
}

// Menu builds the relocate menu for the button's panel at its current
// position.
func (b Button) Menu() Menu {
	return BuildMenu(b.panel, b.Position)
}

// buildButton assembles the button for one panel. ok is false when the panel
// has no visual representation here; a missing icon or tooltip means silent
// omission, not an error.
func buildButton(p dock.Panel, isActive bool, d *dock.Dock) (Button, bool) {
	icon := p.Icon()
	tooltip := p.IconTooltip()
	if icon == "" || tooltip == "" {
		return Button{}, false
	}

	action := p.ToggleAction()
	if isActive {
		action = d.ToggleAction()
		tooltip = fmt.Sprintf("Close %s Dock", d.Position().Label())
	}

	return Button{
		Kind:     p.Kind(),
		Name:     p.Name(),
		Icon:     icon,
		Tooltip:  tooltip,
		Active:   isActive,
		Action:   action,
		Focus:    d.FocusHandle(),
		Position: d.Position(),
		panel:    p,
	}, true
}
