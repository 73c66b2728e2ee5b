// Package sidebar renders the launcher-button column for one side of a
// workspace. It walks the three docks, decides per panel whether a button is
// shown and whether that button reads as active, offers a relocate menu for
// moving a panel to another dock, and stacks the result into two groups
// pushed to opposite ends of the column.
package sidebar

import "github.com/grovetools/workbench/dock"

// Group selects which of the two stacked button lists a panel lands in.
type Group int

const (
	GroupTop Group = iota
	GroupBottom
)

func (g Group) String() string {
	if g == GroupBottom {
		return "bottom"
	}
	return "top"
}

// placements maps a side to the panel kinds shown in each of its groups.
// A kind absent from both lists for a side gets no button there, even when
// its panel currently lives in one of the three docks.
var placements = map[dock.Side]map[Group][]dock.PanelKind{
	dock.SideLeft: {
		GroupTop:    {dock.KindProject, dock.KindGit, dock.KindOutline, dock.KindCollab},
		GroupBottom: {dock.KindTerminal, dock.KindDebug},
	},
	dock.SideRight: {
		GroupTop:    {dock.KindAgent, dock.KindAgents, dock.KindNotification},
		GroupBottom: {},
	},
}

// Classify returns the group a panel kind belongs to on the given side, or
// ok=false when the kind has no place on that side. A kind is in at most one
// group per side; the top list is checked first.
func Classify(side dock.Side, kind dock.PanelKind) (Group, bool) {
	for _, k := range placements[side][GroupTop] {
		if k == kind {
			return GroupTop, true
		}
	}
	for _, k := range placements[side][GroupBottom] {
		if k == kind {
			return GroupBottom, true
		}
	}
	return GroupTop, false
}
