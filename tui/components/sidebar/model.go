package sidebar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/tui/keymap"
	"github.com/grovetools/workbench/tui/theme"
)

// DefaultWidth is the rendered width of the button column in cells.
const DefaultWidth = 4

// Extra is an externally injected renderable appended to the bottom group,
// after every composer-built button.
type Extra interface {
	Render(width int) string
}

// Subscribable is an additional change source the sidebar re-renders on.
// The settings store satisfies it.
type Subscribable interface {
	Subscribe(fn func()) dock.Subscription
}

// Model is the sidebar component for one workspace side. It keeps no derived
// state between renders: every View call recomposes the button groups from
// current dock state. The only long-lived state is the injected extra items
// and the subscription handles. Construct with New; the zero value is not
// usable.
type Model struct {
	// OnChange, when set, runs after any subscribed source reports a change.
	// The sidebar uses it only to schedule a repaint; parents typically send
	// a refresh message into their program loop. Watcher goroutines may call
	// it, so it must be safe to invoke from outside the update loop.
	OnChange func()

	side   dock.Side
	left   *dock.Dock
	bottom *dock.Dock
	right  *dock.Dock
	host   dock.Host

	th   *theme.Theme
	keys keymap.Base

	width  int
	height int

	hidden func(name string) bool
	extras []Extra
	subs   []dock.Subscription

	hovered string     // button ID under the mouse, "" when none
	menu    *menuState // non-nil while a relocate menu is open
}

// menuState tracks the one open relocate menu and its keyboard cursor.
type menuState struct {
	owner  Button
	menu   Menu
	cursor int
}

// New creates the sidebar for a side, bound to the three docks for its
// lifetime. It subscribes to all three immediately; call Close to release
// the subscriptions.
func New(side dock.Side, left, bottom, right *dock.Dock, host dock.Host) *Model {
	m := &Model{
		side:   side,
		left:   left,
		bottom: bottom,
		right:  right,
		host:   host,
		th:     theme.DefaultTheme,
		keys:   keymap.DefaultVim(),
		width:  DefaultWidth,
	}
	for _, d := range []*dock.Dock{left, bottom, right} {
		if d != nil {
			m.subs = append(m.subs, d.Subscribe(m.changed))
		}
	}
	return m
}

// Side returns the workspace side this sidebar renders for.
func (m *Model) Side() dock.Side {
	return m.side
}

// SetSize sets the column's rendered dimensions.
func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	m.height = height
}

// SetTheme replaces the style set. Nil is ignored.
func (m *Model) SetTheme(th *theme.Theme) {
	if th != nil {
		m.th = th
	}
}

// SetKeys replaces the bindings used for menu navigation.
func (m *Model) SetKeys(keys keymap.Base) {
	m.keys = keys
}

// SetHidden installs the name filter applied after classification. Nil
// hides nothing.
func (m *Model) SetHidden(filter func(name string) bool) {
	m.hidden = filter
}

// AddBottomItem appends e to the bottom group. Items render after all
// composer-built bottom buttons, in injection order, and live until the
// sidebar is closed; there is no removal.
func (m *Model) AddBottomItem(e Extra) {
	if e == nil {
		return
	}
	m.extras = append(m.extras, e)
	m.changed()
}

// Watch subscribes the sidebar to an additional change source for its
// lifetime.
func (m *Model) Watch(src Subscribable) {
	if src == nil {
		return
	}
	m.subs = append(m.subs, src.Subscribe(m.changed))
}

// Close releases every subscription the sidebar holds. The model still
// renders afterwards but no longer reacts to dock or settings changes.
// Close is idempotent.
func (m *Model) Close() {
	for _, s := range m.subs {
		s.Cancel()
	}
	m.subs = nil
}

// changed is the handler behind every subscription: it only schedules a
// repaint, never touches dock state.
func (m *Model) changed() {
	if m.OnChange != nil {
		m.OnChange()
	}
}

// MenuOpen reports whether a relocate menu is currently open. Parents skip
// their own key handling while it is.
func (m *Model) MenuOpen() bool {
	return m.menu != nil
}

// OpenMenu opens the relocate menu for the hovered button, falling back to
// the first active button of the composed groups. Returns false when there
// is no button to anchor a menu on.
func (m *Model) OpenMenu() bool {
	g := m.groups()
	if b, ok := findButton(g, m.hovered); ok {
		m.openMenuFor(b)
		return true
	}
	for _, b := range g.All() {
		if b.Active {
			m.openMenuFor(b)
			return true
		}
	}
	return false
}

// CloseMenu closes the relocate menu if one is open.
func (m *Model) CloseMenu() {
	m.menu = nil
}

// openMenuFor builds the menu from the panel's current position at open
// time, so entries reflect the dock layout of this instant.
func (m *Model) openMenuFor(b Button) {
	m.menu = &menuState{owner: b, menu: b.Menu()}
}

// Update handles mouse events for the whole column and key events while the
// relocate menu is open. All other messages pass through untouched.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.menu != nil {
			m.updateMenuKeys(msg)
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return nil
}

func (m *Model) updateMenuKeys(msg tea.KeyMsg) {
	ms := m.menu
	switch {
	case key.Matches(msg, m.keys.Up):
		if ms.cursor > 0 {
			ms.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if ms.cursor < len(ms.menu.Entries)-1 {
			ms.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		ms.menu.Select(ms.cursor)
		m.menu = nil
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Relocate):
		m.menu = nil
	}
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.hovered = m.buttonIDAt(msg)

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.menu != nil {
				// A click inside the menu applies that entry; any other
				// click dismisses the menu without side effects.
				if i, ok := m.menuEntryAt(msg); ok {
					m.menu.menu.Select(i)
				}
				m.menu = nil
				return
			}
			if b, ok := m.buttonAt(msg); ok {
				b.Click(m.host)
			}
		case tea.MouseButtonRight:
			if b, ok := m.buttonAt(msg); ok {
				m.openMenuFor(b)
			}
		}
	}
}

// groups recomposes both button groups from current dock state.
func (m *Model) groups() Groups {
	return Compose(m.side, m.left, m.bottom, m.right, m.hidden)
}

// All returns the groups' buttons in composed order, top group first.
func (g Groups) All() []Button {
	all := make([]Button, 0, len(g.Top)+len(g.Bottom))
	all = append(all, g.Top...)
	all = append(all, g.Bottom...)
	return all
}

func findButton(g Groups, id string) (Button, bool) {
	if id == "" {
		return Button{}, false
	}
	for _, b := range g.All() {
		if b.ID() == id {
			return b, true
		}
	}
	return Button{}, false
}

// buttonAt hit-tests the mouse event against the button zones of the last
// rendered frame.
func (m *Model) buttonAt(msg tea.MouseMsg) (Button, bool) {
	for _, b := range m.groups().All() {
		if z := zone.Get(b.ID()); z != nil && !z.IsZero() && z.InBounds(msg) {
			return b, true
		}
	}
	return Button{}, false
}

func (m *Model) buttonIDAt(msg tea.MouseMsg) string {
	if b, ok := m.buttonAt(msg); ok {
		return b.ID()
	}
	return ""
}

// menuEntryAt hit-tests the mouse event against the open menu's entry zones.
func (m *Model) menuEntryAt(msg tea.MouseMsg) (int, bool) {
	if m.menu == nil {
		return 0, false
	}
	for i := range m.menu.menu.Entries {
		if z := zone.Get(menuZoneID(i)); z != nil && !z.IsZero() && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

func menuZoneID(i int) string {
	return fmt.Sprintf("sidebar/menu/%d", i)
}
