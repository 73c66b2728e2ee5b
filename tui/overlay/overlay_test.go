package overlay

import (
	"strings"
	"testing"
)

func grid(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestPlace(t *testing.T) {
	base := grid(
		"aaaaaa",
		"aaaaaa",
		"aaaaaa",
		"aaaaaa",
	)

	got := Place(base, grid("XX", "XX"), 2, 1)
	want := grid(
		"aaaaaa",
		"aaXXaa",
		"aaXXaa",
		"aaaaaa",
	)
	if got != want {
		t.Errorf("Place:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlaceClipsBottomRows(t *testing.T) {
	base := grid(
		"....",
		"....",
	)

	got := Place(base, grid("XX", "XX", "XX"), 0, 1)
	want := grid(
		"....",
		"XX..",
	)
	if got != want {
		t.Errorf("Place:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlaceRightEdge(t *testing.T) {
	base := grid(
		"abcdef",
		"abcdef",
	)

	// Overlay reaching past the right edge is truncated to the base width.
	got := Place(base, "XXX", 4, 0)
	lines := strings.Split(got, "\n")
	if lines[0] != "abcdXX" {
		t.Errorf("row 0 = %q, want %q", lines[0], "abcdXX")
	}
	if lines[1] != "abcdef" {
		t.Errorf("row 1 = %q, want untouched base", lines[1])
	}
}

func TestPlacePreservesStyling(t *testing.T) {
	styled := "\x1b[31mrr\x1b[0m"
	base := grid("abcd", "abcd")

	got := Place(base, styled, 1, 0)
	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[0], "\x1b[31m") {
		t.Error("overlay styling was stripped")
	}
	if !strings.HasPrefix(lines[0], "a") {
		t.Errorf("left of overlay lost: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "d") {
		t.Errorf("right of overlay lost: %q", lines[0])
	}
}

func TestPlaceClamped(t *testing.T) {
	base := grid(
		"aaaaaa",
		"aaaaaa",
		"aaaaaa",
	)

	// Anchor past the bottom-right corner is pulled back inside.
	got := PlaceClamped(base, grid("XX", "XX"), 5, 2)
	want := grid(
		"aaaaaa",
		"aaaaXX",
		"aaaaXX",
	)
	if got != want {
		t.Errorf("PlaceClamped:\n%s\nwant:\n%s", got, want)
	}

	// Negative anchors pin to the top-left.
	got = PlaceClamped(base, "XX", -3, -1)
	want = grid(
		"XXaaaa",
		"aaaaaa",
		"aaaaaa",
	)
	if got != want {
		t.Errorf("PlaceClamped:\n%s\nwant:\n%s", got, want)
	}
}
