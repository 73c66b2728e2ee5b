package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/workbench/config"
)

const defaultPalette = "kanagawa"

// tone is a light/dark hex pair rendered adaptively.
type tone struct {
	light string
	dark  string
}

func (t tone) color() lipgloss.TerminalColor {
	return lipgloss.AdaptiveColor{Light: t.light, Dark: t.dark}
}

// palette holds the tones a theme derives its styles from.
type palette struct {
	green, yellow, red, orange tone
	cyan, blue, violet, pink   tone

	lightText, mutedText, darkText tone

	border, selectedBg, subtleBg, dimBg tone
}

func (p palette) colors() Colors {
	return Colors{
		Green:                p.green.color(),
		Yellow:               p.yellow.color(),
		Red:                  p.red.color(),
		Orange:               p.orange.color(),
		Cyan:                 p.cyan.color(),
		Blue:                 p.blue.color(),
		Violet:               p.violet.color(),
		Pink:                 p.pink.color(),
		LightText:            p.lightText.color(),
		MutedText:            p.mutedText.color(),
		DarkText:             p.darkText.color(),
		Border:               p.border.color(),
		SelectedBackground:   p.selectedBg.color(),
		SubtleBackground:     p.subtleBg.color(),
		VerySubtleBackground: p.dimBg.color(),
	}
}

// Kanagawa: dragon tones on dark terminals, wave-derived tones on light.
var kanagawa = palette{
	green:      tone{"#4E7C5A", "#98BB6C"},
	yellow:     tone{"#A68A64", "#FF9E3B"},
	red:        tone{"#C34043", "#FF5D62"},
	orange:     tone{"#CC6B4E", "#FFA066"},
	cyan:       tone{"#5B8BBE", "#7E9CD8"},
	blue:       tone{"#4F7CAC", "#7FB4CA"},
	violet:     tone{"#674D7A", "#957FB8"},
	pink:       tone{"#B35C74", "#D27E99"},
	lightText:  tone{"#2B2F42", "#DCD7BA"},
	mutedText:  tone{"#6C7086", "#727169"},
	darkText:   tone{"#E6E9EF", "#1D1C19"},
	border:     tone{"#B5BDC5", "#363646"},
	selectedBg: tone{"#E2E6F3", "#223249"},
	subtleBg:   tone{"#F7F7FB", "#1F1F28"},
	dimBg:      tone{"#EFF1F8", "#181820"},
}

var gruvbox = palette{
	green:      tone{"#98971A", "#B8BB26"},
	yellow:     tone{"#D79921", "#FABD2F"},
	red:        tone{"#CC241D", "#FB4934"},
	orange:     tone{"#D65D0E", "#FE8019"},
	cyan:       tone{"#458588", "#83A598"},
	blue:       tone{"#076678", "#458588"},
	violet:     tone{"#8F3F71", "#B16286"},
	pink:       tone{"#B57679", "#D3869B"},
	lightText:  tone{"#3C3836", "#EBDBB2"},
	mutedText:  tone{"#928374", "#BDAE93"},
	darkText:   tone{"#F9F5D7", "#1D2021"},
	border:     tone{"#D5C4A1", "#504945"},
	selectedBg: tone{"#F2E5BC", "#32302F"},
	subtleBg:   tone{"#FBF1C7", "#282828"},
	dimBg:      tone{"#F9F5D7", "#1D2021"},
}

// terminalColors stays inside the ANSI space for terminals without
// truecolor.
func terminalColors() Colors {
	return Colors{
		Green:                lipgloss.Color("2"),
		Yellow:               lipgloss.Color("3"),
		Red:                  lipgloss.Color("1"),
		Orange:               lipgloss.Color("208"),
		Cyan:                 lipgloss.Color("6"),
		Blue:                 lipgloss.Color("4"),
		Violet:               lipgloss.Color("5"),
		Pink:                 lipgloss.Color("13"),
		LightText:            lipgloss.Color("7"),
		MutedText:            lipgloss.Color("8"),
		DarkText:             lipgloss.Color("0"),
		Border:               lipgloss.Color("8"),
		SelectedBackground:   lipgloss.Color("8"),
		SubtleBackground:     lipgloss.Color("0"),
		VerySubtleBackground: lipgloss.Color("0"),
	}
}

// Colors is the resolved palette a Theme is built from.
type Colors struct {
	Green  lipgloss.TerminalColor
	Yellow lipgloss.TerminalColor
	Red    lipgloss.TerminalColor
	Orange lipgloss.TerminalColor
	Cyan   lipgloss.TerminalColor
	Blue   lipgloss.TerminalColor
	Violet lipgloss.TerminalColor
	Pink   lipgloss.TerminalColor

	LightText lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	DarkText  lipgloss.TerminalColor

	Border               lipgloss.TerminalColor
	SelectedBackground   lipgloss.TerminalColor
	SubtleBackground     lipgloss.TerminalColor
	VerySubtleBackground lipgloss.TerminalColor
}

// Theme carries the pre-built styles for the workbench surfaces.
type Theme struct {
	Colors Colors

	// CLI output.
	Header  lipgloss.Style
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text hierarchy.
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// Sidebar launcher buttons.
	SidebarButton       lipgloss.Style
	SidebarButtonHover  lipgloss.Style
	SidebarButtonActive lipgloss.Style
	SidebarDivider      lipgloss.Style

	// Floating overlays.
	Tooltip      lipgloss.Style
	Menu         lipgloss.Style
	MenuEntry    lipgloss.Style
	MenuSelected lipgloss.Style

	// Dock and workspace chrome.
	DockBorder        lipgloss.Style
	DockBorderFocused lipgloss.Style
	DockTitle         lipgloss.Style
	StatusBar         lipgloss.Style
	StatusKey         lipgloss.Style
}

var palettes = map[string]func() Colors{
	"kanagawa": kanagawa.colors,
	"gruvbox":  gruvbox.colors,
	"terminal": terminalColors,
}

var paletteAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// DefaultTheme is the process-wide theme, resolved once from the
// environment and the workbench config.
var DefaultTheme = NewThemeWithName(configuredPalette())

// NewTheme builds a theme from the configured palette selection.
func NewTheme() *Theme {
	return NewThemeWithName(configuredPalette())
}

// NewThemeWithName builds a theme from a specific palette name. Unknown
// names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	return build(paletteFor(name))
}

func paletteFor(name string) Colors {
	key := normalizeName(name)
	if target, ok := paletteAliases[key]; ok {
		key = target
	}
	builder, ok := palettes[key]
	if !ok {
		builder = palettes[defaultPalette]
	}
	return builder()
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	return strings.ReplaceAll(n, "_", "-")
}

// configuredPalette resolves the palette name: WORKBENCH_THEME wins, then
// the tui.theme config key.
func configuredPalette() string {
	if name := normalizeName(os.Getenv("WORKBENCH_THEME")); name != "" {
		return name
	}
	cfg, err := config.LoadDefault()
	if err == nil && cfg != nil && cfg.TUI != nil {
		if name := normalizeName(cfg.TUI.Theme); name != "" {
			return name
		}
	}
	return defaultPalette
}

func build(c Colors) *Theme {
	s := lipgloss.NewStyle()
	return &Theme{
		Colors: c,

		Header:  s.Bold(true).MarginTop(1).MarginBottom(1),
		Title:   s.Bold(true).Underline(true),
		Success: s.Foreground(c.Green).Bold(true),
		Error:   s.Foreground(c.Red).Bold(true),
		Warning: s.Foreground(c.Yellow).Bold(true),
		Info:    s.Foreground(c.Cyan).Bold(true),

		Bold:      s.Bold(true),
		Muted:     s.Faint(true),
		Highlight: s.Foreground(c.Orange).Bold(true),
		Accent:    s.Foreground(c.Violet).Bold(true),

		SidebarButton:       s.Foreground(c.MutedText),
		SidebarButtonHover:  s.Foreground(c.LightText).Background(c.SelectedBackground),
		SidebarButtonActive: s.Foreground(c.Orange).Bold(true),
		SidebarDivider:      s.Foreground(c.Border),

		Tooltip:      s.Foreground(c.LightText).Background(c.SelectedBackground).Padding(0, 1),
		Menu:         s.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(c.Border),
		MenuEntry:    s.Foreground(c.LightText).Padding(0, 1),
		MenuSelected: s.Foreground(c.LightText).Background(c.SelectedBackground).Bold(true).Padding(0, 1),

		DockBorder:        s.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(c.Border),
		DockBorderFocused: s.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(c.Violet),
		DockTitle:         s.Foreground(c.Cyan).Bold(true),
		StatusBar:         s.Foreground(c.MutedText).Background(c.SubtleBackground),
		StatusKey:         s.Foreground(c.Yellow).Bold(true),
	}
}
