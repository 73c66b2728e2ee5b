package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/grovetools/workbench/tui/theme"
)

// Help output stays narrow enough to read in a split pane.
const (
	helpMaxWidth = 60
	helpMinWidth = 40
)

// SetStyledHelp replaces cmd's help output with the workbench renderer.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(renderHelp)
}

// ApplyStyledHelpRecursive installs the styled renderer on cmd and every
// subcommand. Call it after the command tree is assembled, before Execute.
// Usage-on-error is suppressed; the error handler prints the hint instead.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	cmd.SetHelpFunc(renderHelp)
	cmd.SetUsageFunc(func(*cobra.Command) error { return nil })
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

// helpStyles are rebuilt per render so a theme switch takes effect.
type helpStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	short   lipgloss.Style
	muted   lipgloss.Style
}

func newHelpStyles(t *theme.Theme) helpStyles {
	return helpStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange),
		section: lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange),
		command: lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue),
		flag:    lipgloss.NewStyle().Foreground(t.Colors.Violet),
		short:   lipgloss.NewStyle().Italic(true),
		muted:   t.Muted,
	}
}

// helpWriter renders one help page with a one-space left margin.
type helpWriter struct {
	out    io.Writer
	styles helpStyles
	width  int
}

func (h *helpWriter) line(s string) { fmt.Fprintln(h.out, " "+s) }
func (h *helpWriter) blank()        { fmt.Fprintln(h.out) }

func (h *helpWriter) section(name string) {
	h.blank()
	h.line(h.styles.section.Render(name))
}

func renderHelp(cmd *cobra.Command, _ []string) {
	h := &helpWriter{
		out:    cmd.OutOrStdout(),
		styles: newHelpStyles(theme.DefaultTheme),
		width:  helpWidth() - 2,
	}

	h.line(h.styles.title.Render(strings.ToUpper(cmd.CommandPath())))

	var desc, examples string
	if cmd.Long != "" {
		desc, examples = splitExamples(cmd.Long)
	}
	if cmd.Short != "" {
		for _, l := range wrap(cmd.Short, h.width) {
			h.line(h.styles.short.Render(l))
		}
	}
	if desc != "" && desc != cmd.Short {
		h.blank()
		for _, l := range wrap(desc, h.width) {
			h.line(l)
		}
	}

	if cmd.Runnable() || cmd.HasSubCommands() {
		h.section("USAGE")
		if cmd.Runnable() {
			h.line(cmd.UseLine())
		}
		if cmd.HasSubCommands() {
			h.line(cmd.CommandPath() + " [command]")
		}
	}

	h.commands(cmd)
	h.flags(cmd)
	if examples != "" {
		h.examples(examples, cmd.CommandPath())
	}

	if cmd.HasSubCommands() {
		h.blank()
		h.line(fmt.Sprintf("Use %q for more information.", cmd.CommandPath()+" [command] --help"))
	}
}

func (h *helpWriter) commands(cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	w := 0
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() && len(sub.Name()) > w {
			w = len(sub.Name())
		}
	}
	h.section("COMMANDS")
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		pad := strings.Repeat(" ", w-len(sub.Name()))
		h.line(h.styles.command.Render(sub.Name()) + pad + "  " + sub.Short)
	}
}

// flags renders local flags. Leaf commands get a full FLAGS section; parent
// commands get a compact inline list, since the leaf help has the detail.
func (h *helpWriter) flags(cmd *cobra.Command) {
	var visible []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visible = append(visible, f)
		}
	})
	if len(visible) == 0 {
		return
	}

	if cmd.HasAvailableSubCommands() {
		names := make([]string, len(visible))
		for i, f := range visible {
			if f.Shorthand != "" {
				names[i] = "-" + f.Shorthand + "/--" + f.Name
			} else {
				names[i] = "--" + f.Name
			}
		}
		h.blank()
		h.line(h.styles.muted.Render("Flags: " + strings.Join(names, ", ")))
		return
	}

	type row struct{ name, usage string }
	rows := make([]row, len(visible))
	w := 0
	for i, f := range visible {
		name := "    --" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", --" + f.Name
		}
		usage := f.Usage
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
			usage += h.styles.muted.Render(" (default: " + f.DefValue + ")")
		}
		rows[i] = row{name, usage}
		if len(name) > w {
			w = len(name)
		}
	}
	h.section("FLAGS")
	for _, r := range rows {
		pad := strings.Repeat(" ", w-len(r.name))
		h.line(h.styles.flag.Render(r.name) + pad + "  " + r.usage)
	}
}

// examples renders the example block: comment lines muted, command lines
// with the binary, subcommand, and flags colored individually.
func (h *helpWriter) examples(raw, cmdPath string) {
	h.section("EXAMPLES")
	root := strings.Fields(cmdPath)[0]
	for _, line := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(line)
		switch {
		case text == "":
			h.blank()
		case strings.HasPrefix(text, "#"):
			h.line(h.styles.muted.Render(text))
		default:
			h.line("  " + h.exampleCommand(text, root))
		}
	}
}

func (h *helpWriter) exampleCommand(line, root string) string {
	words := strings.Fields(line)
	for i, word := range words {
		switch {
		case strings.HasPrefix(word, "-"):
			words[i] = h.styles.muted.Render(word)
		case i == 0 && word == root:
			words[i] = h.styles.command.Render(word)
		case i == 1:
			words[i] = h.styles.flag.Render(word)
		}
	}
	return strings.Join(words, " ")
}

// splitExamples separates a Long description from the example block that
// workbench commands embed after an "Examples:" line.
func splitExamples(long string) (desc, examples string) {
	for _, marker := range []string{"\nExamples:\n", "\nExample:\n"} {
		if i := strings.Index(long, marker); i >= 0 {
			return strings.TrimSpace(long[:i]), strings.TrimSpace(long[i+len(marker):])
		}
	}
	return strings.TrimSpace(long), ""
}

// wrap greedily word-wraps text, keeping existing line breaks.
func wrap(text string, width int) []string {
	if width <= 0 {
		width = helpMaxWidth
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if len(para) <= width {
			lines = append(lines, para)
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func helpWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < helpMinWidth {
		return helpMaxWidth
	}
	return min(w, helpMaxWidth)
}
