package panels

import (
	"testing"

	"github.com/grovetools/workbench/dock"
)

func TestDefinitionsCoverEveryKind(t *testing.T) {
	if len(All()) != 9 {
		t.Fatalf("expected 9 panels, got %d", len(All()))
	}
	for _, p := range All() {
		if p.Name() != p.Kind().String() {
			t.Errorf("panel %s: name should match kind", p.Name())
		}
		if p.IconTooltip() == "" {
			t.Errorf("panel %s: missing tooltip", p.Name())
		}
		if !p.PositionValid(p.Position()) {
			t.Errorf("panel %s: default position %s not valid", p.Name(), p.Position())
		}
	}
}

func TestCollabHasNoIcon(t *testing.T) {
	collab := New(dock.KindCollab)
	if collab.Icon() != "" {
		t.Error("collab panel should have no icon")
	}
	if collab.IconTooltip() == "" {
		t.Error("collab panel still has a tooltip; only the icon is missing")
	}
}

func TestPositionValidity(t *testing.T) {
	tests := []struct {
		kind  dock.PanelKind
		pos   dock.Position
		valid bool
	}{
		{dock.KindTerminal, dock.PositionLeft, true},
		{dock.KindTerminal, dock.PositionRight, true},
		{dock.KindTerminal, dock.PositionBottom, true},
		{dock.KindGit, dock.PositionBottom, false},
		{dock.KindGit, dock.PositionRight, true},
		{dock.KindNotification, dock.PositionLeft, false},
		{dock.KindNotification, dock.PositionBottom, false},
		{dock.KindNotification, dock.PositionRight, true},
	}
	for _, tt := range tests {
		p := New(tt.kind)
		if got := p.PositionValid(tt.pos); got != tt.valid {
			t.Errorf("%s.PositionValid(%s) = %v, want %v", tt.kind, tt.pos, got, tt.valid)
		}
	}
}

func TestNewAtFallsBackOnInvalidPosition(t *testing.T) {
	p := NewAt(dock.KindGit, dock.PositionBottom)
	if p.Position() != dock.PositionLeft {
		t.Errorf("git at bottom should fall back to left, got %s", p.Position())
	}

	p = NewAt(dock.KindTerminal, dock.PositionRight)
	if p.Position() != dock.PositionRight {
		t.Errorf("terminal accepts right, got %s", p.Position())
	}
}

func TestSetPositionRunsHook(t *testing.T) {
	p := New(dock.KindTerminal)

	var gotFrom, gotTo dock.Position
	var calls int
	p.OnRelocate = func(moved *Panel, from dock.Position) {
		calls++
		gotFrom = from
		gotTo = moved.Position()
	}

	p.SetPosition(dock.PositionLeft)
	if calls != 1 || gotFrom != dock.PositionBottom || gotTo != dock.PositionLeft {
		t.Errorf("hook saw %s -> %s (%d calls), want bottom -> left once", gotFrom, gotTo, calls)
	}

	// Same position and invalid positions do not fire the hook.
	p.SetPosition(dock.PositionLeft)
	git := New(dock.KindGit)
	git.OnRelocate = func(*Panel, dock.Position) { calls++ }
	git.SetPosition(dock.PositionBottom)
	if calls != 1 {
		t.Errorf("hook fired %d times, want 1", calls)
	}
}

func TestToggleActionNamesKind(t *testing.T) {
	p := New(dock.KindOutline)
	if got := p.ToggleAction().ActionName(); got != "panel.toggle.outline" {
		t.Errorf("ToggleAction().ActionName() = %q", got)
	}
}
