// Package help renders keybinding help for workbench TUIs: a one-line hint
// bar, and a full modal overlay grouping bindings by keymap section.
package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/grovetools/workbench/tui/keymap"
	"github.com/grovetools/workbench/tui/theme"
)

// Model is an embeddable help component.
type Model struct {
	Keys    interface{} // keymap.Base or any SectionedKeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string
	Extra   []keymap.Section // appended after the keymap's own sections

	viewport viewport.Model
}

// New creates a help model for the given keymap.
func New(keys interface{}) Model {
	vp := viewport.New(0, 0)
	// The viewport's own wheel handling would fight the workspace's mouse
	// routing, so scrolling goes through key events only.
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// Update handles messages while the full help view is open: the help, quit,
// and escape keys close it, everything else scrolls the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.setViewportContent()
		}
		return m, nil

	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if m.shouldClose(msg) {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) shouldClose(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return key.Matches(msg, m.helpBinding()) || key.Matches(msg, m.quitBinding())
}

// View renders the modal help view when open, or the one-line hint bar.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}
	if !m.ShowAll {
		return m.hintBar()
	}

	content := m.viewport.View()
	if m.viewport.TotalLineCount() > m.viewport.Height {
		var indicator string
		switch {
		case m.viewport.AtTop():
			indicator = "↓ more"
		case m.viewport.AtBottom():
			indicator = "↑ more"
		default:
			indicator = "↕ more"
		}
		style := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
		content = lipgloss.JoinVertical(lipgloss.Right, content, style.Render(indicator))
	}

	// Center on screen for a modal effect.
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

// hintBar renders the compact single-line prompt.
func (m Model) hintBar() string {
	return m.Theme.Muted.Render("Press ") +
		m.Theme.Highlight.Render(m.helpBinding().Help().Key) +
		m.Theme.Muted.Render(" for help")
}

// sections returns the keymap's sections plus any extras.
func (m *Model) sections() []keymap.Section {
	var sections []keymap.Section
	if k, ok := m.Keys.(keymap.SectionedKeyMap); ok {
		sections = k.Sections()
	}
	return append(sections, m.Extra...)
}

// setViewportContent lays the sections out and loads them into the viewport.
func (m *Model) setViewportContent() {
	const (
		verticalMargin   = 4
		horizontalMargin = 4
		gutterWidth      = 4
	)

	content := m.renderContent(verticalMargin, horizontalMargin, gutterWidth)
	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	// Reserve a line for the scroll indicator.
	m.viewport.Height = m.Height - verticalMargin - 1
}

// renderContent prefers a single column, switching to two columns when the
// content is too tall and the terminal is wide enough. The viewport scrolls
// whatever still overflows.
func (m *Model) renderContent(vMargin, hMargin, gutter int) string {
	blocks := m.sectionBlocks()
	if len(blocks) == 0 {
		return ""
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)
	titled := func(body string) string {
		head := titleStyle.Width(lipgloss.Width(body)).Render(title)
		return lipgloss.JoinVertical(lipgloss.Center, head, body)
	}

	single := titled(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if lipgloss.Height(single) <= m.Height-vMargin-1 {
		return single
	}

	if len(blocks) >= 2 {
		if two := titled(twoColumns(blocks, gutter)); lipgloss.Width(two) <= m.Width-hMargin {
			return two
		}
	}

	return single
}

// twoColumns distributes blocks greedily, each block onto the currently
// shorter column.
func twoColumns(blocks []string, gutter int) string {
	var left, right []string
	var leftH, rightH int
	for _, block := range blocks {
		if leftH <= rightH {
			left = append(left, block)
			leftH += lipgloss.Height(block)
		} else {
			right = append(right, block)
			rightH += lipgloss.Height(block)
		}
	}

	leftCol := lipgloss.JoinVertical(lipgloss.Left, left...)
	if len(right) == 0 {
		return leftCol
	}
	rightCol := lipgloss.JoinVertical(lipgloss.Left, right...)
	gap := lipgloss.NewStyle().Width(gutter).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, gap, rightCol)
}

// sectionBlocks renders each non-empty section into its own boxed block.
func (m *Model) sectionBlocks() []string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	var blocks []string
	for _, section := range m.sections() {
		rows := m.bindingRows(section, keyStyle)
		if len(rows) > 0 {
			blocks = append(blocks, m.renderSectionBox(section.Name, rows))
		}
	}
	return blocks
}

func (m *Model) bindingRows(section keymap.Section, keyStyle lipgloss.Style) [][]string {
	var rows [][]string
	for _, binding := range section.FilterEnabled() {
		help := binding.Help()
		if help.Key == "" || help.Desc == "" {
			continue
		}
		rows = append(rows, []string{
			keyStyle.Render(help.Key),
			m.Theme.Muted.Italic(true).Render(help.Desc),
		})
	}
	return rows
}

// renderSectionBox renders one section as a bordered box with a title row.
func (m *Model) renderSectionBox(title string, rows [][]string) string {
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, row := range rows {
		table = table.Row(row...)
	}

	heading := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1).
		Render(fmt.Sprintf("%s %s", sectionIcon(title), title))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, heading, table.String()))
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconArrow
	case keymap.SectionActions:
		return theme.IconSelect
	case keymap.SectionDocks:
		return theme.IconPanelOutline
	case keymap.SectionSystem:
		return theme.IconInfo
	default:
		return theme.IconBullet
	}
}

func (m *Model) helpBinding() key.Binding {
	switch k := m.Keys.(type) {
	case keymap.Base:
		return k.Help
	case interface{ GetHelp() key.Binding }:
		return k.GetHelp()
	}
	return key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
}

func (m *Model) quitBinding() key.Binding {
	switch k := m.Keys.(type) {
	case keymap.Base:
		return k.Quit
	case interface{ GetQuit() key.Binding }:
		return k.GetQuit()
	}
	return key.NewBinding(key.WithKeys("q"))
}

// Toggle switches between the hint bar and the full view, resetting scroll
// position when opening.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions the full view centers within.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// SetKeys replaces the keymap.
func (m *Model) SetKeys(keys interface{}) {
	m.Keys = keys
}

// Builder assembles a help model fluently.
type Builder struct {
	model Model
}

func NewBuilder() *Builder {
	return &Builder{model: New(nil)}
}

func (b *Builder) WithKeys(keys interface{}) *Builder {
	b.model.Keys = keys
	return b
}

func (b *Builder) WithTheme(t *theme.Theme) *Builder {
	b.model.Theme = t
	return b
}

func (b *Builder) WithSize(width, height int) *Builder {
	b.model.Width = width
	b.model.Height = height
	return b
}

// WithSections appends sections shown after the keymap's own, for bindings
// the host TUI defines itself.
func (b *Builder) WithSections(sections ...keymap.Section) *Builder {
	b.model.Extra = append(b.model.Extra, sections...)
	return b
}

func (b *Builder) WithTitle(title string) *Builder {
	b.model.Title = title
	return b
}

func (b *Builder) Build() Model {
	return b.model
}
