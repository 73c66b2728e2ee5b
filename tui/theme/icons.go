package theme

import (
	"os"

	"github.com/grovetools/workbench/config"
)

// Icon variables resolved at init, so one process uses one glyph set
// throughout. Nerd Font glyphs are the default; WORKBENCH_ICONS=ascii or
// tui.icons: ascii switches to plain Unicode.
var (
	IconPanelProject      string
	IconPanelGit          string
	IconPanelOutline      string
	IconPanelCollab       string
	IconPanelTerminal     string
	IconPanelDebug        string
	IconPanelAgent        string
	IconPanelAgents       string
	IconPanelNotification string

	IconSuccess string
	IconError   string
	IconWarning string
	IconInfo    string
	IconSelect  string
	IconArrow   string
	IconBullet  string
)

// iconSet is one complete glyph assignment.
type iconSet struct {
	project      string
	git          string
	outline      string
	collab       string
	terminal     string
	debug        string
	agent        string
	agents       string
	notification string

	success string
	failure string
	warning string
	info    string
	pick    string
	arrow   string
	bullet  string
}

var nerdIcons = iconSet{
	project:      "", // cod-project (U+EB30)
	git:          "", // dev-git_branch (U+E725)
	outline:      "󰎚", // md-note (U+F039A)
	collab:       "󰭹", // md-chat (U+F0B79)
	terminal:     "", // seti-shell (U+E691)
	debug:        "", // fa-bug (U+F188)
	agent:        "", // fa-robot (U+EE0D)
	agents:       "󰭆", // md-robot_industrial (U+F0B46)
	notification: "", // fa-bell (U+F0F3)

	success: "󰄬", // md-check (U+F012C)
	failure: "", // cod-error (U+EA87)
	warning: "", // fa-warning (U+F071)
	info:    "󰋼", // md-information (U+F02FC)
	pick:    "󰱒", // md-checkbox_outline (U+F0C52)
	arrow:   "󰁔", // md-arrow_right (U+F0054)
	bullet:  "", // oct-dot_fill (U+F444)
}

var asciiIcons = iconSet{
	project:      "◆",
	git:          "⎇",
	outline:      "≡",
	collab:       "★",
	terminal:     "▶",
	debug:        "⚙",
	agent:        "◉",
	agents:       "❖",
	notification: "◌",

	success: "✓",
	failure: "✗",
	warning: "⚠",
	info:    "ℹ",
	pick:    "▶",
	arrow:   "→",
	bullet:  "•",
}

func init() {
	set := nerdIcons
	if asciiIconsConfigured() {
		set = asciiIcons
	}

	IconPanelProject = set.project
	IconPanelGit = set.git
	IconPanelOutline = set.outline
	IconPanelCollab = set.collab
	IconPanelTerminal = set.terminal
	IconPanelDebug = set.debug
	IconPanelAgent = set.agent
	IconPanelAgents = set.agents
	IconPanelNotification = set.notification

	IconSuccess = set.success
	IconError = set.failure
	IconWarning = set.warning
	IconInfo = set.info
	IconSelect = set.pick
	IconArrow = set.arrow
	IconBullet = set.bullet
}

func asciiIconsConfigured() bool {
	if os.Getenv("WORKBENCH_ICONS") == "ascii" {
		return true
	}
	cfg, err := config.LoadDefault()
	return err == nil && cfg.TUI != nil && cfg.TUI.Icons == "ascii"
}
