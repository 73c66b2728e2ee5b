package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/internal/panels"
	"github.com/grovetools/workbench/logging"
	"github.com/grovetools/workbench/pkg/bridge"
	"github.com/grovetools/workbench/pkg/profiling"
	"github.com/grovetools/workbench/pkg/settings"
	"github.com/grovetools/workbench/state"
	"github.com/grovetools/workbench/tui/components/help"
	"github.com/grovetools/workbench/tui/components/sidebar"
	"github.com/grovetools/workbench/tui/keymap"
	"github.com/grovetools/workbench/tui/overlay"
	"github.com/grovetools/workbench/tui/theme"
)

// refreshMsg asks the program for a repaint after an out-of-loop change
// (dock subscriptions, the settings watcher).
type refreshMsg struct{}

// editorFocus is the focus target for the central editor area, where focus
// returns when no dock holds it.
var editorFocus = dock.FocusHandle{ID: "editor"}

// workspace is the demo's root model: three docks, a sidebar on each side,
// and a stub editor area between them. It is the dock.Host for both sidebars,
// so button clicks land here as focus moves and dispatched actions.
type workspace struct {
	store  *settings.Store
	bridge *bridge.Bridge
	send   func(tea.Msg)

	left   *dock.Dock
	bottom *dock.Dock
	right  *dock.Dock
	panels []*panels.Panel

	leftBar  *sidebar.Model
	rightBar *sidebar.Model

	keys keymap.Base
	th   *theme.Theme
	help help.Model

	focused dock.FocusHandle

	width  int
	height int

	logger *logrus.Entry
}

func newWorkspace(store *settings.Store, open []dock.Position) *workspace {
	defer profiling.Start("demo.new-workspace").Stop()

	cfg := store.Config()

	th := theme.DefaultTheme
	if cfg.TUI != nil && cfg.TUI.Theme != "" {
		th = theme.NewThemeWithName(cfg.TUI.Theme)
	}

	ws := &workspace{
		store:   store,
		keys:    keymap.Load(cfg, "demo"),
		th:      th,
		focused: editorFocus,
		left:    dock.New(dock.PositionLeft),
		bottom:  dock.New(dock.PositionBottom),
		right:   dock.New(dock.PositionRight),
		logger:  logging.NewLogger("workspace"),
	}

	// Persisted placements override each panel's home position. The relocate
	// hook is installed after the override so construction never moves docks.
	for _, p := range panels.All() {
		if pos, ok := store.Placement(p.Name()); ok {
			p.SetPosition(pos)
		}
		p.OnRelocate = ws.relocate
		ws.dockFor(p.Position()).AddPanel(p)
		ws.panels = append(ws.panels, p)
	}

	if len(open) == 0 {
		for _, pos := range dock.Positions() {
			if store.DockOpen(pos) {
				open = append(open, pos)
			}
		}
	}
	for _, pos := range open {
		ws.dockFor(pos).SetOpen(true)
	}

	// Each dock resumes on the panel it showed last session, and focus
	// returns to the dock that held it.
	if st, err := state.Load(); err == nil {
		ws.restoreSession(st)
	}

	ws.leftBar = sidebar.New(dock.SideLeft, ws.left, ws.bottom, ws.right, ws)
	ws.rightBar = sidebar.New(dock.SideRight, ws.left, ws.bottom, ws.right, ws)
	for _, bar := range []*sidebar.Model{ws.leftBar, ws.rightBar} {
		bar.SetTheme(th)
		bar.SetKeys(ws.keys)
		bar.SetHidden(store.IsHidden)
		bar.Watch(store)
		bar.OnChange = ws.requestRefresh
	}
	ws.leftBar.AddBottomItem(aboutBadge{th: th})

	ws.help = help.NewBuilder().
		WithKeys(ws.keys).
		WithTheme(th).
		WithTitle("Workspace Keys").
		Build()

	return ws
}

// aboutBadge is an injected sidebar item: a static info glyph rendered under
// the launcher buttons on the left column.
type aboutBadge struct {
	th *theme.Theme
}

func (a aboutBadge) Render(width int) string {
	return a.th.Muted.Width(width).Align(lipgloss.Center).Render(theme.IconInfo)
}

func (ws *workspace) dockFor(pos dock.Position) *dock.Dock {
	switch pos {
	case dock.PositionLeft:
		return ws.left
	case dock.PositionRight:
		return ws.right
	default:
		return ws.bottom
	}
}

func (ws *workspace) panelByKind(kind dock.PanelKind) *panels.Panel {
	for _, p := range ws.panels {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// requestRefresh schedules a repaint. Subscriptions fire it synchronously
// from the update loop and the settings watcher fires it from its own
// goroutine; Send is safe from both.
func (ws *workspace) requestRefresh() {
	if ws.send != nil {
		ws.send(refreshMsg{})
	}
}

func (ws *workspace) publish(e bridge.Event) {
	if ws.bridge != nil {
		ws.bridge.Publish(e)
	}
}

// relocate is the hook run by every panel after it accepts a new position:
// the panel changes docks, the placement persists, and the bridge announces
// the move.
func (ws *workspace) relocate(p *panels.Panel, from dock.Position) {
	dock.Move(p, ws.dockFor(from), ws.dockFor(p.Position()))
	if err := ws.store.SetPlacement(p.Name(), p.Position()); err != nil {
		ws.logger.Warnf("Failed to persist placement for %s: %v", p.Name(), err)
	}
	ws.publish(bridge.PanelRelocated(p.Name(), from, p.Position()))
}

// Focus implements dock.Focuser.
func (ws *workspace) Focus(h dock.FocusHandle) {
	ws.focused = h
}

// Dispatch implements dock.Dispatcher. Actions apply synchronously; dock
// subscribers run before Dispatch returns.
func (ws *workspace) Dispatch(a dock.Action) {
	switch a := a.(type) {
	case dock.ToggleDock:
		d := ws.dockFor(a.Position)
		d.Toggle()
		if d.IsOpen() {
			ws.publish(bridge.DockOpened(d.Position()))
		} else {
			ws.publish(bridge.DockClosed(d.Position()))
		}
	case dock.TogglePanel:
		ws.togglePanel(a.Kind)
	}
}

func (ws *workspace) togglePanel(kind dock.PanelKind) {
	p := ws.panelByKind(kind)
	if p == nil {
		return
	}
	d := ws.dockFor(p.Position())

	// Toggling the already-active panel of an open dock closes the dock;
	// anything else activates the panel and makes sure its dock is open.
	if d.IsOpen() && d.ActivePanel() == dock.Panel(p) {
		d.SetOpen(false)
		ws.publish(bridge.DockClosed(d.Position()))
		return
	}
	d.ActivatePanel(p)
	if !d.IsOpen() {
		d.SetOpen(true)
		ws.publish(bridge.DockOpened(d.Position()))
	}
	ws.publish(bridge.PanelActivated(p.Name(), d.Position()))
}

// toggleDockKey is the keyboard variant of a dock toggle: opening also
// focuses the dock, closing returns focus to the editor.
func (ws *workspace) toggleDockKey(pos dock.Position) {
	d := ws.dockFor(pos)
	ws.Dispatch(dock.ToggleDock{Position: pos})
	if d.IsOpen() {
		ws.Focus(d.FocusHandle())
	} else if ws.focused == d.FocusHandle() {
		ws.Focus(editorFocus)
	}
}

func (ws *workspace) focusedDock() *dock.Dock {
	for _, d := range []*dock.Dock{ws.left, ws.bottom, ws.right} {
		if ws.focused == d.FocusHandle() {
			return d
		}
	}
	return nil
}

func (ws *workspace) firstOpenDock() *dock.Dock {
	for _, d := range []*dock.Dock{ws.left, ws.bottom, ws.right} {
		if d.IsOpen() {
			return d
		}
	}
	return nil
}

func (ws *workspace) cyclePanel(delta int) {
	d := ws.focusedDock()
	if d == nil {
		d = ws.firstOpenDock()
	}
	if d == nil || !d.IsOpen() {
		return
	}
	n := len(d.Panels())
	if n < 2 {
		return
	}
	d.SetActivePanelIndex((d.ActivePanelIndex() + delta + n) % n)
	if p := d.ActivePanel(); p != nil {
		ws.publish(bridge.PanelActivated(p.Name(), d.Position()))
	}
}

func (ws *workspace) restoreSession(st *state.Session) {
	for _, d := range []*dock.Dock{ws.left, ws.bottom, ws.right} {
		name := st.ActivePanel(d.Position().String())
		if name == "" {
			continue
		}
		for i, p := range d.Panels() {
			if p.Name() == name {
				d.SetActivePanelIndex(i)
				break
			}
		}
	}
	if pos, err := dock.ParsePosition(st.FocusedDock); err == nil {
		if d := ws.dockFor(pos); d.IsOpen() {
			ws.focused = d.FocusHandle()
		}
	}
}

func (ws *workspace) saveSessionState() {
	st, err := state.Load()
	if err != nil {
		return
	}
	for _, d := range []*dock.Dock{ws.left, ws.bottom, ws.right} {
		name := ""
		if p := d.ActivePanel(); p != nil {
			name = p.Name()
		}
		st.SetActivePanel(d.Position().String(), name)
	}
	st.FocusedDock = ""
	if d := ws.focusedDock(); d != nil {
		st.FocusedDock = d.Position().String()
	}
	if err := st.Save(); err != nil {
		ws.logger.Warnf("Failed to save session state: %v", err)
	}
}

func (ws *workspace) close() {
	ws.saveSessionState()
	ws.leftBar.Close()
	ws.rightBar.Close()
}

func (ws *workspace) Init() tea.Cmd {
	return nil
}

func (ws *workspace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ws.width, ws.height = msg.Width, msg.Height
		contentHeight := ws.height - 1
		ws.leftBar.SetSize(sidebar.DefaultWidth, contentHeight)
		ws.rightBar.SetSize(sidebar.DefaultWidth, contentHeight)
		ws.help.SetSize(msg.Width, msg.Height)
		return ws, nil

	case refreshMsg:
		return ws, nil

	case tea.MouseMsg:
		if ws.help.ShowAll {
			return ws, nil
		}
		ws.leftBar.Update(msg)
		ws.rightBar.Update(msg)
		return ws, nil

	case tea.KeyMsg:
		return ws.updateKeys(msg)
	}
	return ws, nil
}

func (ws *workspace) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return ws, tea.Quit
	}

	if ws.help.ShowAll {
		var cmd tea.Cmd
		ws.help, cmd = ws.help.Update(msg)
		return ws, cmd
	}

	// An open relocate menu captures the keyboard fully.
	if ws.leftBar.MenuOpen() || ws.rightBar.MenuOpen() {
		ws.leftBar.Update(msg)
		ws.rightBar.Update(msg)
		return ws, nil
	}

	switch {
	case key.Matches(msg, ws.keys.Quit):
		return ws, tea.Quit

	case key.Matches(msg, ws.keys.Help):
		ws.help.Toggle()

	case key.Matches(msg, ws.keys.ToggleLeft):
		ws.toggleDockKey(dock.PositionLeft)

	case key.Matches(msg, ws.keys.ToggleRight):
		ws.toggleDockKey(dock.PositionRight)

	case key.Matches(msg, ws.keys.ToggleBottom):
		ws.toggleDockKey(dock.PositionBottom)

	case key.Matches(msg, ws.keys.NextPanel):
		ws.cyclePanel(1)

	case key.Matches(msg, ws.keys.PrevPanel):
		ws.cyclePanel(-1)

	case key.Matches(msg, ws.keys.Relocate):
		if !ws.leftBar.OpenMenu() {
			ws.rightBar.OpenMenu()
		}

	case key.Matches(msg, ws.keys.Back):
		ws.Focus(editorFocus)
	}
	return ws, nil
}

func (ws *workspace) View() string {
	if ws.width == 0 {
		return "Initializing..."
	}
	if ws.help.ShowAll {
		return zone.Scan(ws.help.View())
	}

	contentHeight := ws.height - 1
	frame := lipgloss.JoinHorizontal(lipgloss.Top, ws.columns(contentHeight)...)
	frame = lipgloss.JoinVertical(lipgloss.Left, frame, ws.statusView())

	// Overlays composite before the zone scan so menu entry markers register
	// for hit-testing.
	for _, bar := range []*sidebar.Model{ws.leftBar, ws.rightBar} {
		for _, o := range bar.Overlays() {
			frame = overlay.PlaceClamped(frame, o.View, o.X, o.Y)
		}
	}
	return zone.Scan(frame)
}

func (ws *workspace) columns(height int) []string {
	dockW := ws.dockWidth()
	centerW := ws.width - 2*sidebar.DefaultWidth
	if ws.left.IsOpen() {
		centerW -= dockW
	}
	if ws.right.IsOpen() {
		centerW -= dockW
	}
	if centerW < 1 {
		centerW = 1
	}

	cols := []string{ws.leftBar.View()}
	if ws.left.IsOpen() {
		cols = append(cols, ws.renderDock(ws.left, dockW, height))
	}
	cols = append(cols, ws.centerView(centerW, height))
	if ws.right.IsOpen() {
		cols = append(cols, ws.renderDock(ws.right, dockW, height))
	}
	cols = append(cols, ws.rightBar.View())
	return cols
}

func (ws *workspace) dockWidth() int {
	w := ws.width / 4
	if w > 32 {
		w = 32
	}
	if w < 16 {
		w = 16
	}
	return w
}

func (ws *workspace) centerView(width, height int) string {
	if !ws.bottom.IsOpen() {
		return ws.editorView(width, height)
	}
	bottomH := height / 3
	if bottomH < 4 {
		bottomH = 4
	}
	editorH := height - bottomH
	if editorH < 0 {
		editorH = 0
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		ws.editorView(width, editorH),
		ws.renderDock(ws.bottom, width, bottomH),
	)
}

func (ws *workspace) editorView(width, height int) string {
	lines := []string{
		ws.th.Highlight.Render("workbench"),
		"",
		ws.th.Muted.Render("Click a sidebar button to toggle its panel."),
		ws.th.Muted.Render(fmt.Sprintf("Right-click or press %s to move a panel between docks.",
			ws.keys.Relocate.Help().Key)),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (ws *workspace) renderDock(d *dock.Dock, width, height int) string {
	st := ws.th.DockBorder
	if ws.focused == d.FocusHandle() {
		st = ws.th.DockBorderFocused
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		ws.th.DockTitle.Render(fmt.Sprintf(" %s Dock", d.Position().Label())),
		ws.tabsView(d),
		"",
		ws.panelBody(d),
	)
	return st.Width(width - 2).Height(height - 2).Render(content)
}

// tabsView draws one cell per panel in the dock; panels without an icon get
// a bullet so the strip still shows them.
func (ws *workspace) tabsView(d *dock.Dock) string {
	var tabs []string
	for i, p := range d.Panels() {
		icon := p.Icon()
		if icon == "" {
			icon = theme.IconBullet
		}
		st := ws.th.Muted
		if i == d.ActivePanelIndex() {
			st = ws.th.SidebarButtonActive
		}
		tabs = append(tabs, st.Render(" "+icon+" "))
	}
	return strings.Join(tabs, "")
}

func (ws *workspace) panelBody(d *dock.Dock) string {
	p := d.ActivePanel()
	if p == nil {
		return ws.th.Muted.Render(" no panels")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		" "+ws.th.Bold.Render(p.IconTooltip()),
		"",
		ws.th.Muted.Render(fmt.Sprintf(" kind    %s", p.Kind())),
		ws.th.Muted.Render(fmt.Sprintf(" docked  %s", d.Position().Label())),
	)
}

func (ws *workspace) statusView() string {
	var open []string
	for _, d := range []*dock.Dock{ws.left, ws.bottom, ws.right} {
		if d.IsOpen() {
			open = append(open, d.Position().String())
		}
	}
	openStr := "none"
	if len(open) > 0 {
		openStr = strings.Join(open, ",")
	}
	status := fmt.Sprintf(" Docks: %s | %s move panel | ? for help | q to quit",
		openStr, ws.keys.Relocate.Help().Key)
	return ws.th.StatusBar.Width(ws.width).Render(status)
}
