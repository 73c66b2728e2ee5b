// Package panels provides the demo workspace's stub panels. The panels render
// no real content; what matters is the capability surface the sidebar
// consumes: kind, icon, tooltip, and per-kind position validity.
package panels

import (
	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/tui/theme"
)

// Panel is a stub implementation of dock.Panel with a recorded position.
type Panel struct {
	kind    dock.PanelKind
	name    string
	icon    string
	tooltip string
	valid   map[dock.Position]bool
	pos     dock.Position

	// OnRelocate runs after SetPosition records a new position. The workspace
	// installs a hook that moves the panel between docks and persists the
	// placement override.
	OnRelocate func(p *Panel, from dock.Position)
}

type definition struct {
	icon    string
	tooltip string
	home    dock.Position
	valid   []dock.Position
}

// definitions fixes each kind's demo identity. The collab panel deliberately
// has no icon, so it never gets a sidebar button; the notification panel is
// only valid on the right, so its relocate menu is empty.
func definitions() map[dock.PanelKind]definition {
	sides := []dock.Position{dock.PositionLeft, dock.PositionRight}
	anywhere := []dock.Position{dock.PositionLeft, dock.PositionRight, dock.PositionBottom}

	return map[dock.PanelKind]definition{
		dock.KindProject:  {theme.IconPanelProject, "Project Panel", dock.PositionLeft, sides},
		dock.KindGit:      {theme.IconPanelGit, "Git Panel", dock.PositionLeft, sides},
		dock.KindOutline:  {theme.IconPanelOutline, "Outline Panel", dock.PositionLeft, sides},
		dock.KindCollab:   {"", "Collaboration Panel", dock.PositionLeft, sides},
		dock.KindTerminal: {theme.IconPanelTerminal, "Terminal Panel", dock.PositionBottom, anywhere},
		dock.KindDebug:    {theme.IconPanelDebug, "Debug Panel", dock.PositionBottom, anywhere},
		dock.KindAgent:    {theme.IconPanelAgent, "Agent Panel", dock.PositionRight, anywhere},
		dock.KindAgents:   {theme.IconPanelAgents, "Agents Panel", dock.PositionRight, sides},
		dock.KindNotification: {theme.IconPanelNotification, "Notification Panel", dock.PositionRight,
			[]dock.Position{dock.PositionRight}},
	}
}

// New creates the stub panel for a kind at the kind's default position.
func New(kind dock.PanelKind) *Panel {
	return NewAt(kind, DefaultPosition(kind))
}

// NewAt creates the stub panel for a kind at the given position, falling back
// to the kind's default when the position is not valid for it.
func NewAt(kind dock.PanelKind, pos dock.Position) *Panel {
	def := definitions()[kind]
	valid := make(map[dock.Position]bool, len(def.valid))
	for _, p := range def.valid {
		valid[p] = true
	}
	if !valid[pos] {
		pos = def.home
	}
	return &Panel{
		kind:    kind,
		name:    kind.String(),
		icon:    def.icon,
		tooltip: def.tooltip,
		valid:   valid,
		pos:     pos,
	}
}

// All returns one panel of every kind at default positions: left dock panels
// first, then bottom, then right.
func All() []*Panel {
	kinds := []dock.PanelKind{
		dock.KindProject, dock.KindGit, dock.KindOutline, dock.KindCollab,
		dock.KindTerminal, dock.KindDebug,
		dock.KindAgent, dock.KindAgents, dock.KindNotification,
	}
	out := make([]*Panel, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, New(k))
	}
	return out
}

// DefaultPosition returns the dock a kind lives in when no placement override
// applies.
func DefaultPosition(kind dock.PanelKind) dock.Position {
	return definitions()[kind].home
}

func (p *Panel) Kind() dock.PanelKind { return p.kind }
func (p *Panel) Name() string         { return p.name }
func (p *Panel) Icon() string         { return p.icon }
func (p *Panel) IconTooltip() string  { return p.tooltip }

// Position returns the dock position the panel currently occupies.
func (p *Panel) Position() dock.Position { return p.pos }

func (p *Panel) ToggleAction() dock.Action {
	return dock.TogglePanel{Kind: p.kind}
}

func (p *Panel) PositionValid(pos dock.Position) bool {
	return p.valid[pos]
}

// SetPosition records the panel's new position and runs the relocation hook.
// Invalid positions and the current position are ignored.
func (p *Panel) SetPosition(pos dock.Position) {
	if !p.valid[pos] || pos == p.pos {
		return
	}
	from := p.pos
	p.pos = pos
	if p.OnRelocate != nil {
		p.OnRelocate(p, from)
	}
}
