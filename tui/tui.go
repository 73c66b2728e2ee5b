package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment before a bubbletea program
// starts. When `CLICOLOR_FORCE` or `COLORTERM` request color, the lipgloss
// color profile is pinned to true color so styling survives non-interactive
// runs (piped output, CI, 'tend' scenarios). In a normal terminal session the
// call has no effect.
//
// Call it at the top of a TUI command, before constructing any styles.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// NewProgram builds a bubbletea program with the options every workbench TUI
// uses: the alternate screen, and cell-motion mouse tracking so sidebar
// buttons and menus receive hover and click events.
func NewProgram(model tea.Model, opts ...tea.ProgramOption) *tea.Program {
	base := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	return tea.NewProgram(model, append(base, opts...)...)
}
