// Package dock models the dockable regions of a workspace and the panels
// they host. A workspace owns three docks (left, right, bottom); panels
// advertise their capabilities through the Panel interface and the sidebar
// renders launcher buttons for them. Docks follow the bubbletea threading
// model: all access happens on the program's update loop, so there is no
// internal locking.
package dock

import (
	"strings"

	"github.com/grovetools/workbench/errors"
)

// Side selects which edge of the workspace a sidebar occupies.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Position identifies one of the three dockable regions of a workspace.
type Position int

const (
	PositionLeft Position = iota
	PositionRight
	PositionBottom
)

// Positions returns the dock positions in canonical order: left, right,
// bottom. Menu candidates and iteration follow this order.
func Positions() []Position {
	return []Position{PositionLeft, PositionRight, PositionBottom}
}

// Label returns the capitalized name used in tooltips and menu entries.
func (p Position) Label() string {
	switch p {
	case PositionRight:
		return "Right"
	case PositionBottom:
		return "Bottom"
	default:
		return "Left"
	}
}

func (p Position) String() string {
	return strings.ToLower(p.Label())
}

// ParsePosition converts a configuration value into a Position.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return PositionLeft, nil
	case "right":
		return PositionRight, nil
	case "bottom":
		return PositionBottom, nil
	}
	return PositionLeft, errors.InvalidPosition(s)
}
