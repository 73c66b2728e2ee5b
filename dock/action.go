package dock

import "fmt"

// Action is a request for the workspace to change state. Actions are plain
// values; the sidebar never applies them itself, it hands them to the host's
// Dispatcher.
type Action interface {
	ActionName() string
}

// ToggleDock opens the dock at Position if closed, closes it if open.
type ToggleDock struct {
	Position Position
}

func (a ToggleDock) ActionName() string {
	return fmt.Sprintf("dock.toggle.%s", a.Position)
}

// TogglePanel toggles visibility of the panel with the given kind: it opens
// the panel's dock and activates the panel, or closes the dock when the
// panel is already the active one in an open dock.
type TogglePanel struct {
	Kind PanelKind
}

func (a TogglePanel) ActionName() string {
	return fmt.Sprintf("panel.toggle.%s", a.Kind)
}

// FocusHandle identifies a focusable element to the host focus system.
// Handles are comparable; two handles with the same ID refer to the same
// focus target.
type FocusHandle struct {
	ID string
}

// Focuser moves input focus to a handle's target.
type Focuser interface {
	Focus(h FocusHandle)
}

// Dispatcher applies dispatched actions to the workspace.
type Dispatcher interface {
	Dispatch(a Action)
}

// Host is the surface the sidebar needs from its owning workspace. Button
// click handlers focus first, then dispatch.
type Host interface {
	Focuser
	Dispatcher
}
