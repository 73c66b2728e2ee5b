package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/grovetools/workbench/dock"
)

// View renders the button column: top group at the top, bottom group (plus
// injected extras) pushed to the bottom, a divider between them only when
// both are non-empty, and newline fill in between so the column spans the
// full height.
func (m *Model) View() string {
	g := m.groups()

	topBlocks := m.renderButtons(g.Top)
	bottomBlocks := m.renderButtons(g.Bottom)
	for _, e := range m.extras {
		bottomBlocks = append(bottomBlocks, e.Render(m.width))
	}

	top := strings.Join(topBlocks, "\n\n")
	bottom := strings.Join(bottomBlocks, "\n\n")
	if len(topBlocks) > 0 && len(bottomBlocks) > 0 {
		bottom = m.dividerView() + "\n" + bottom
	}

	return m.justify(top, bottom)
}

func (m *Model) renderButtons(buttons []Button) []string {
	blocks := make([]string, 0, len(buttons))
	for _, b := range buttons {
		blocks = append(blocks, m.renderButton(b))
	}
	return blocks
}

// renderButton draws one icon cell. Active styling wins over hover so an
// open panel's button stays visually pressed under the cursor.
func (m *Model) renderButton(b Button) string {
	st := m.th.SidebarButton
	switch {
	case b.Active:
		st = m.th.SidebarButtonActive
	case b.ID() == m.hovered:
		st = m.th.SidebarButtonHover
	}
	cell := st.Width(m.width).Align(lipgloss.Center).Render(b.Icon)
	return zone.Mark(b.ID(), cell)
}

func (m *Model) dividerView() string {
	return m.th.SidebarDivider.Render(strings.Repeat("─", m.width))
}

// justify stacks the two blocks at opposite ends of the column. With no
// height set the blocks stack directly; otherwise newline fill between (or
// around) them makes the result exactly m.height lines.
func (m *Model) justify(top, bottom string) string {
	topLines := lineCount(top)
	bottomLines := lineCount(bottom)

	if m.height <= 0 {
		switch {
		case top == "":
			return bottom
		case bottom == "":
			return top
		}
		return top + "\n" + bottom
	}

	switch {
	case top == "" && bottom == "":
		return strings.Repeat("\n", m.height-1)
	case bottom == "":
		return top + strings.Repeat("\n", m.height-topLines)
	case top == "":
		return strings.Repeat("\n", m.height-bottomLines) + bottom
	}

	gap := m.height - topLines - bottomLines + 1
	if gap < 1 {
		gap = 1
	}
	return top + strings.Repeat("\n", gap) + bottom
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// Overlay is a floating view with its anchor cell in the workspace frame.
type Overlay struct {
	View string
	X, Y int
}

// Overlays returns the floating views to composite over the workspace this
// frame: the open relocate menu, and the hovered button's tooltip. A
// button's tooltip is suppressed only while its own menu is open; hovering
// a different button still shows that button's tooltip.
func (m *Model) Overlays() []Overlay {
	var out []Overlay
	if m.menu != nil {
		if o, ok := m.anchored(m.menu.owner.ID(), m.menuView()); ok {
			out = append(out, o)
		}
	}
	if b, ok := m.tooltipTarget(); ok {
		if o, ok := m.anchored(b.ID(), m.tooltipView(b.Tooltip)); ok {
			out = append(out, o)
		}
	}
	return out
}

// tooltipTarget returns the button whose tooltip should float this frame.
// The suppression condition is the relocate menu's own open state: the menu
// owner never tooltips while its menu is up, regardless of the button's
// active flag.
func (m *Model) tooltipTarget() (Button, bool) {
	if m.hovered == "" {
		return Button{}, false
	}
	if m.menu != nil && m.menu.owner.ID() == m.hovered {
		return Button{}, false
	}
	return findButton(m.groups(), m.hovered)
}

// anchored positions an overlay from the owning button's hit zone: a left
// sidebar attaches it at the button's top-right corner, a right sidebar at
// the top-left, so it always deploys toward the workspace interior. Without
// zone bounds (nothing rendered yet) there is nowhere to anchor.
func (m *Model) anchored(ownerID, view string) (Overlay, bool) {
	z := zone.Get(ownerID)
	if z == nil || z.IsZero() {
		return Overlay{}, false
	}
	if m.side == dock.SideLeft {
		return Overlay{View: view, X: z.EndX + 1, Y: z.StartY}, true
	}
	return Overlay{View: view, X: z.StartX - lipgloss.Width(view), Y: z.StartY}, true
}

func (m *Model) menuView() string {
	entries := m.menu.menu.Entries
	width := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Label) + 2; w > width {
			width = w
		}
	}

	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		st := m.th.MenuEntry
		if i == m.menu.cursor {
			st = m.th.MenuSelected
		}
		rows = append(rows, zone.Mark(menuZoneID(i), st.Width(width).Render(" "+e.Label)))
	}
	return m.th.Menu.Render(strings.Join(rows, "\n"))
}

// tooltipMaxWidth caps a floating tooltip so a verbose panel description
// cannot paint across the whole frame.
const tooltipMaxWidth = 40

func (m *Model) tooltipView(text string) string {
	if runewidth.StringWidth(text) > tooltipMaxWidth {
		text = runewidth.Truncate(text, tooltipMaxWidth, "…")
	}
	return m.th.Tooltip.Render(text)
}
