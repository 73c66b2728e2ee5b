package sidebar

import (
	"fmt"

	"github.com/grovetools/workbench/dock"
)

// MenuEntry is one selectable relocation target.
type MenuEntry struct {
	Label  string
	Target dock.Position
}

// Menu is the relocate menu for a single panel. A menu with no entries is
// still valid; it simply offers nothing.
type Menu struct {
	Entries []MenuEntry

	panel dock.Panel
}

// BuildMenu enumerates the positions the panel could move to, in canonical
// order (left, right, bottom). The current position is never offered, and
// positions the panel rejects are filtered out.
func BuildMenu(p dock.Panel, current dock.Position) Menu {
	m := Menu{panel: p}
	if p == nil {
		return m
	}
	for _, pos := range dock.Positions() {
		if pos == current || !p.PositionValid(pos) {
			continue
		}
		m.Entries = append(m.Entries, MenuEntry{
			Label:  fmt.Sprintf("Dock %s", pos.Label()),
			Target: pos,
		})
	}
	return m
}

// Select applies entry i by asking the panel to move to that entry's
// target. Out-of-range indices do nothing.
func (m Menu) Select(i int) {
	if i < 0 || i >= len(m.Entries) || m.panel == nil {
		return
	}
	m.panel.SetPosition(m.Entries[i].Target)
}
