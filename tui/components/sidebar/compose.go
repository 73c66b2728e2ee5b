package sidebar

import "github.com/grovetools/workbench/dock"

// Groups holds one render pass's buttons, split into the two stacked lists.
// Nothing is cached between passes; Compose rebuilds the groups from current
// dock state every time.
type Groups struct {
	Top    []Button
	Bottom []Button
}

// Compose walks the three docks in fixed order (left, bottom, right) and
// builds both button groups for a side. Panel order within a dock is
// preserved. hidden filters classified panels out by name; nil hides
// nothing.
func Compose(side dock.Side, left, bottom, right *dock.Dock, hidden func(name string) bool) Groups {
	var g Groups
	for _, d := range []*dock.Dock{left, bottom, right} {
		g = collect(d, side, hidden, g)
	}
	return g
}

// collect appends one dock's buttons to the accumulator. A panel is skipped
// when its kind has no group on this side, when its name is hidden, or when
// the panel declines a button (no icon or no tooltip).
func collect(d *dock.Dock, side dock.Side, hidden func(string) bool, g Groups) Groups {
	if d == nil {
		return g
	}
	for i, p := range d.Panels() {
		group, ok := Classify(side, p.Kind())
		if !ok {
			continue
		}
		if hidden != nil && hidden(p.Name()) {
			continue
		}
		isActive := i == d.ActivePanelIndex() && d.IsOpen()
		b, ok := buildButton(p, isActive, d)
		if !ok {
			continue
		}
		if group == GroupTop {
			g.Top = append(g.Top, b)
		} else {
			g.Bottom = append(g.Bottom, b)
		}
	}
	return g
}
