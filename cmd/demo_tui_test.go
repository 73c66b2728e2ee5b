package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/pkg/settings"
)

func testStore(t *testing.T, yml string) *settings.Store {
	t.Helper()
	// Session state and logs must not leak into the real state directory.
	t.Setenv("WORKBENCH_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "workbench.yml")
	if yml == "" {
		cfg := &config.Config{}
		cfg.SetDefaults()
		return settings.NewStore(cfg, path)
	}
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	return settings.NewStore(cfg, path)
}

func TestWorkspacePanelDistribution(t *testing.T) {
	ws := newWorkspace(testStore(t, ""), nil)
	defer ws.close()

	if got := len(ws.left.Panels()); got != 4 {
		t.Errorf("left dock has %d panels, want 4", got)
	}
	if got := len(ws.bottom.Panels()); got != 2 {
		t.Errorf("bottom dock has %d panels, want 2", got)
	}
	if got := len(ws.right.Panels()); got != 3 {
		t.Errorf("right dock has %d panels, want 3", got)
	}
	for _, d := range []*dock.Dock{ws.left, ws.bottom, ws.right} {
		if d.IsOpen() {
			t.Errorf("%s dock open at startup without open_docks", d.Position())
		}
	}
}

func TestWorkspacePlacementOverride(t *testing.T) {
	store := testStore(t, `version: "1.0"
workbench:
  placement:
    terminal: left
`)
	ws := newWorkspace(store, nil)
	defer ws.close()

	p := ws.panelByKind(dock.KindTerminal)
	if p == nil {
		t.Fatal("no terminal panel")
	}
	if p.Position() != dock.PositionLeft {
		t.Fatalf("terminal position = %v, want left", p.Position())
	}
	if ws.left.PanelIndex(p) < 0 {
		t.Error("terminal panel not in left dock")
	}
	if ws.bottom.PanelIndex(p) >= 0 {
		t.Error("terminal panel still in bottom dock")
	}
}

func TestWorkspaceOpenDocks(t *testing.T) {
	store := testStore(t, `version: "1.0"
workbench:
  open_docks: [left, bottom]
`)

	ws := newWorkspace(store, nil)
	defer ws.close()
	if !ws.left.IsOpen() || !ws.bottom.IsOpen() || ws.right.IsOpen() {
		t.Errorf("open docks = %v/%v/%v, want left and bottom only",
			ws.left.IsOpen(), ws.bottom.IsOpen(), ws.right.IsOpen())
	}

	// Docks named on the command line replace the configured set.
	ws2 := newWorkspace(store, []dock.Position{dock.PositionRight})
	defer ws2.close()
	if ws2.left.IsOpen() || ws2.bottom.IsOpen() || !ws2.right.IsOpen() {
		t.Errorf("open docks = %v/%v/%v, want right only",
			ws2.left.IsOpen(), ws2.bottom.IsOpen(), ws2.right.IsOpen())
	}
}

func TestTogglePanel(t *testing.T) {
	ws := newWorkspace(testStore(t, ""), nil)
	defer ws.close()

	// Toggling a closed dock's panel opens the dock with that panel active.
	ws.Dispatch(dock.TogglePanel{Kind: dock.KindGit})
	if !ws.left.IsOpen() {
		t.Fatal("left dock should open")
	}
	if ap := ws.left.ActivePanel(); ap == nil || ap.Kind() != dock.KindGit {
		t.Fatalf("active panel = %v, want git", ap)
	}

	// Toggling the active panel of an open dock closes the dock.
	ws.Dispatch(dock.TogglePanel{Kind: dock.KindGit})
	if ws.left.IsOpen() {
		t.Fatal("left dock should close")
	}

	// A different panel reopens the dock and takes over.
	ws.Dispatch(dock.TogglePanel{Kind: dock.KindProject})
	if !ws.left.IsOpen() {
		t.Fatal("left dock should reopen")
	}
	if ap := ws.left.ActivePanel(); ap == nil || ap.Kind() != dock.KindProject {
		t.Fatalf("active panel = %v, want project", ap)
	}
}

func TestRelocatePersistsPlacement(t *testing.T) {
	store := testStore(t, "")
	ws := newWorkspace(store, nil)
	defer ws.close()

	p := ws.panelByKind(dock.KindTerminal)
	p.SetPosition(dock.PositionRight)

	if ws.bottom.PanelIndex(p) >= 0 {
		t.Error("terminal still in bottom dock")
	}
	if ws.right.PanelIndex(p) < 0 {
		t.Error("terminal not moved to right dock")
	}

	if pos, ok := store.Placement("terminal"); !ok || pos != dock.PositionRight {
		t.Errorf("Placement(terminal) = %v, %v; want right, true", pos, ok)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "terminal: right") {
		t.Errorf("config file missing persisted placement:\n%s", data)
	}
}

func TestToggleDockKeyFocus(t *testing.T) {
	ws := newWorkspace(testStore(t, ""), nil)
	defer ws.close()

	ws.toggleDockKey(dock.PositionLeft)
	if !ws.left.IsOpen() {
		t.Fatal("left dock should open")
	}
	if ws.focused != ws.left.FocusHandle() {
		t.Errorf("focus = %v, want left dock", ws.focused)
	}

	ws.toggleDockKey(dock.PositionLeft)
	if ws.left.IsOpen() {
		t.Fatal("left dock should close")
	}
	if ws.focused != editorFocus {
		t.Errorf("focus = %v, want editor", ws.focused)
	}
}

func TestCyclePanel(t *testing.T) {
	ws := newWorkspace(testStore(t, ""), nil)
	defer ws.close()

	// No open dock: cycling is a no-op.
	ws.cyclePanel(1)

	ws.toggleDockKey(dock.PositionLeft)
	if ws.left.ActivePanelIndex() != 0 {
		t.Fatalf("active index = %d, want 0", ws.left.ActivePanelIndex())
	}

	ws.cyclePanel(1)
	if ws.left.ActivePanelIndex() != 1 {
		t.Errorf("active index = %d, want 1", ws.left.ActivePanelIndex())
	}
	ws.cyclePanel(-1)
	if ws.left.ActivePanelIndex() != 0 {
		t.Errorf("active index = %d, want 0", ws.left.ActivePanelIndex())
	}
	ws.cyclePanel(-1)
	if got, want := ws.left.ActivePanelIndex(), len(ws.left.Panels())-1; got != want {
		t.Errorf("cycle backwards from 0 = %d, want wrap to %d", got, want)
	}
}

func TestSessionStateRestore(t *testing.T) {
	store := testStore(t, "")

	ws := newWorkspace(store, nil)
	ws.Dispatch(dock.TogglePanel{Kind: dock.KindOutline})
	ws.close()

	// A fresh workspace resumes on the panel the last one showed.
	ws2 := newWorkspace(store, nil)
	defer ws2.close()
	if ap := ws2.left.ActivePanel(); ap == nil || ap.Kind() != dock.KindOutline {
		t.Fatalf("restored active panel = %v, want outline", ap)
	}
}

func TestStatusLine(t *testing.T) {
	ws := newWorkspace(testStore(t, ""), nil)
	defer ws.close()
	ws.width = 80

	if s := ws.statusView(); !strings.Contains(s, "Docks: none") {
		t.Errorf("status = %q, want Docks: none", s)
	}

	ws.left.SetOpen(true)
	ws.bottom.SetOpen(true)
	if s := ws.statusView(); !strings.Contains(s, "left,bottom") {
		t.Errorf("status = %q, want left,bottom", s)
	}
}
