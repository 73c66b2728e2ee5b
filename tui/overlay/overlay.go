// Package overlay composites one rendered view on top of another at a
// terminal cell position. The sidebar uses it to float tooltips and the
// relocate menu over the workspace without re-rendering the layers below.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place composites over on top of base at column x, row y. Both strings are
// treated as line grids; coordinates are zero-based terminal cells. ANSI
// escape sequences on either side of the overlay are preserved. Overlay rows
// that fall outside the base are dropped, and the result always has the base's
// dimensions.
func Place(base, over string, x, y int) string {
	baseLines := splitLines(base)
	width := maxLineWidth(baseLines)
	overLines := splitLines(over)
	overWidth := maxLineWidth(overLines)

	if x < 0 {
		x = 0
	}
	if x >= width {
		return base
	}

	for i, line := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overLine := padRight(line, overWidth)
		if x+overWidth > width {
			overLine = ansi.Truncate(overLine, width-x, "")
		}
		pos := x + ansi.StringWidth(overLine)
		right := ansi.TruncateLeft(target, pos, "")
		gap := width - pos - ansi.StringWidth(right)
		if gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		baseLines[row] = left + overLine + right
	}
	return strings.Join(baseLines, "\n")
}

// PlaceClamped is Place with the position shifted, when possible, so the
// whole overlay stays inside the base. An overlay larger than the base is
// pinned to the top-left edge.
func PlaceClamped(base, over string, x, y int) string {
	baseLines := splitLines(base)
	baseWidth := maxLineWidth(baseLines)
	baseHeight := len(baseLines)

	overLines := splitLines(over)
	overWidth := maxLineWidth(overLines)
	overHeight := len(overLines)

	if x+overWidth > baseWidth {
		x = baseWidth - overWidth
	}
	if y+overHeight > baseHeight {
		y = baseHeight - overHeight
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Place(base, over, x, y)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
