package dock

import (
	"testing"

	"github.com/grovetools/workbench/errors"
)

type stubPanel struct {
	kind     PanelKind
	name     string
	position Position
	rejects  map[Position]bool
}

func (p *stubPanel) Kind() PanelKind    { return p.kind }
func (p *stubPanel) Name() string       { return p.name }
func (p *stubPanel) Icon() string       { return "#" }
func (p *stubPanel) IconTooltip() string { return p.name }
func (p *stubPanel) ToggleAction() Action {
	return TogglePanel{Kind: p.kind}
}
func (p *stubPanel) PositionValid(pos Position) bool { return !p.rejects[pos] }
func (p *stubPanel) SetPosition(pos Position)        { p.position = pos }

func TestPositionLabels(t *testing.T) {
	tests := []struct {
		position Position
		label    string
		str      string
	}{
		{PositionLeft, "Left", "left"},
		{PositionRight, "Right", "right"},
		{PositionBottom, "Bottom", "bottom"},
	}

	for _, tt := range tests {
		if got := tt.position.Label(); got != tt.label {
			t.Errorf("Label() for %v = %q, want %q", tt.position, got, tt.label)
		}
		if got := tt.position.String(); got != tt.str {
			t.Errorf("String() for %v = %q, want %q", tt.position, got, tt.str)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		want    Position
		wantErr bool
	}{
		{"left", PositionLeft, false},
		{"Right", PositionRight, false},
		{" bottom ", PositionBottom, false},
		{"top", PositionLeft, true},
		{"", PositionLeft, true},
	}

	for _, tt := range tests {
		got, err := ParsePosition(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePosition(%q): expected error", tt.input)
			} else if errors.GetCode(err) != errors.ErrCodeInvalidPosition {
				t.Errorf("ParsePosition(%q): wrong error code %s", tt.input, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePosition(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOpenCloseNotifications(t *testing.T) {
	d := New(PositionLeft)

	notified := 0
	d.Subscribe(func() { notified++ })

	if d.IsOpen() {
		t.Fatal("new dock should be closed")
	}

	d.SetOpen(true)
	if !d.IsOpen() {
		t.Error("dock should be open after SetOpen(true)")
	}
	if notified != 1 {
		t.Errorf("expected 1 notification, got %d", notified)
	}

	// Setting the same state again must not notify.
	d.SetOpen(true)
	if notified != 1 {
		t.Errorf("expected no notification for unchanged state, got %d", notified)
	}

	d.Toggle()
	if d.IsOpen() {
		t.Error("dock should be closed after Toggle")
	}
	if notified != 2 {
		t.Errorf("expected 2 notifications, got %d", notified)
	}
}

func TestSubscriptionCancel(t *testing.T) {
	d := New(PositionBottom)

	first, second := 0, 0
	sub := d.Subscribe(func() { first++ })
	d.Subscribe(func() { second++ })

	d.Toggle()
	if first != 1 || second != 1 {
		t.Fatalf("expected both subscribers notified, got %d and %d", first, second)
	}

	sub.Cancel()
	sub.Cancel() // idempotent

	d.Toggle()
	if first != 1 {
		t.Errorf("cancelled subscriber was notified, count %d", first)
	}
	if second != 2 {
		t.Errorf("remaining subscriber missed a notification, count %d", second)
	}

	var zero Subscription
	zero.Cancel() // no-op
}

func TestAddRemovePanels(t *testing.T) {
	d := New(PositionRight)
	a := &stubPanel{kind: KindAgent, name: "Agent"}
	b := &stubPanel{kind: KindAgents, name: "Agents"}
	c := &stubPanel{kind: KindNotification, name: "Notifications"}

	if d.ActivePanelIndex() != -1 {
		t.Fatalf("empty dock active index = %d, want -1", d.ActivePanelIndex())
	}
	if d.ActivePanel() != nil {
		t.Fatal("empty dock should have no active panel")
	}

	d.AddPanel(a)
	if d.ActivePanelIndex() != 0 {
		t.Errorf("first panel should become active, index = %d", d.ActivePanelIndex())
	}

	d.AddPanel(b)
	d.AddPanel(c)
	d.SetActivePanelIndex(2)

	// Removing a panel before the active one shifts the index down.
	d.RemovePanel(a)
	if d.ActivePanelIndex() != 1 {
		t.Errorf("active index after removing earlier panel = %d, want 1", d.ActivePanelIndex())
	}
	if d.ActivePanel() != Panel(c) {
		t.Error("active panel should still be the notification panel")
	}

	// Removing the active last panel clamps the index.
	d.RemovePanel(c)
	if d.ActivePanelIndex() != 0 {
		t.Errorf("active index after removing active panel = %d, want 0", d.ActivePanelIndex())
	}

	d.RemovePanel(b)
	if d.ActivePanelIndex() != -1 {
		t.Errorf("active index of emptied dock = %d, want -1", d.ActivePanelIndex())
	}

	// Removing an absent panel is a no-op.
	notified := 0
	d.Subscribe(func() { notified++ })
	d.RemovePanel(a)
	if notified != 0 {
		t.Error("removing absent panel should not notify")
	}
}

func TestActivatePanel(t *testing.T) {
	d := New(PositionLeft)
	a := &stubPanel{kind: KindProject, name: "Project"}
	b := &stubPanel{kind: KindGit, name: "Git"}
	d.AddPanel(a)
	d.AddPanel(b)

	if !d.ActivatePanel(b) {
		t.Fatal("ActivatePanel should find the git panel")
	}
	if d.ActivePanelIndex() != 1 {
		t.Errorf("active index = %d, want 1", d.ActivePanelIndex())
	}

	stranger := &stubPanel{kind: KindTerminal, name: "Terminal"}
	if d.ActivatePanel(stranger) {
		t.Error("ActivatePanel should report false for a panel not in the dock")
	}
}

func TestMove(t *testing.T) {
	left := New(PositionLeft)
	bottom := New(PositionBottom)
	p := &stubPanel{kind: KindTerminal, name: "Terminal"}
	left.AddPanel(p)

	leftNotified, bottomNotified := 0, 0
	left.Subscribe(func() { leftNotified++ })
	bottom.Subscribe(func() { bottomNotified++ })

	Move(p, left, bottom)

	if left.PanelIndex(p) != -1 {
		t.Error("panel should have left the source dock")
	}
	if bottom.PanelIndex(p) != 0 {
		t.Error("panel should be appended to the destination dock")
	}
	if leftNotified != 1 || bottomNotified != 1 {
		t.Errorf("expected one notification per dock, got %d and %d", leftNotified, bottomNotified)
	}

	// Moving within the same dock or moving an absent panel changes nothing.
	Move(p, bottom, bottom)
	Move(p, left, bottom)
	if leftNotified != 1 || bottomNotified != 1 {
		t.Errorf("no-op moves must not notify, got %d and %d", leftNotified, bottomNotified)
	}
}

func TestActions(t *testing.T) {
	d := New(PositionBottom)

	if got := d.ToggleAction().ActionName(); got != "dock.toggle.bottom" {
		t.Errorf("dock toggle action name = %q", got)
	}
	if got := (TogglePanel{Kind: KindGit}).ActionName(); got != "panel.toggle.git" {
		t.Errorf("panel toggle action name = %q", got)
	}

	// Actions compare by value so hosts can switch on them.
	if d.ToggleAction() != (ToggleDock{Position: PositionBottom}) {
		t.Error("toggle actions for the same dock should be equal")
	}

	if d.FocusHandle() != (FocusHandle{ID: "dock:bottom"}) {
		t.Errorf("focus handle = %+v", d.FocusHandle())
	}
}
