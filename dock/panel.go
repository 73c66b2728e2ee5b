package dock

// PanelKind identifies the behavioral category of a panel. The sidebar's
// placement tables are keyed by kind, so a panel's kind decides which side
// and group its button lands in.
type PanelKind int

const (
	KindProject PanelKind = iota
	KindGit
	KindOutline
	KindCollab
	KindTerminal
	KindDebug
	KindAgent
	KindAgents
	KindNotification
)

func (k PanelKind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindGit:
		return "git"
	case KindOutline:
		return "outline"
	case KindCollab:
		return "collab"
	case KindTerminal:
		return "terminal"
	case KindDebug:
		return "debug"
	case KindAgent:
		return "agent"
	case KindAgents:
		return "agents"
	case KindNotification:
		return "notification"
	}
	return "unknown"
}

// Panel is the capability surface a dockable panel exposes to the dock
// system and the sidebar. Implementations live with the workspace, not here.
type Panel interface {
	// Kind returns the panel's behavioral category.
	Kind() PanelKind

	// Name returns the panel's stable identity, unique within a workspace.
	Name() string

	// Icon returns the glyph for the panel's sidebar button, or "" when the
	// panel offers none.
	Icon() string

	// IconTooltip returns the hover text for the button, or "" when none.
	// A panel without both an icon and a tooltip gets no button.
	IconTooltip() string

	// ToggleAction returns the action that toggles this panel's visibility.
	ToggleAction() Action

	// PositionValid reports whether the panel may be docked at p.
	PositionValid(p Position) bool

	// SetPosition requests relocation of the panel to p. Callers check
	// PositionValid first.
	SetPosition(p Position)
}
