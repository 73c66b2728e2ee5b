package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("WORKBENCH_HOME", t.TempDir())

	st, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st == nil {
		t.Fatal("Load() returned nil session")
	}
	if len(st.ActivePanels) != 0 || st.FocusedDock != "" {
		t.Errorf("Load() on empty state dir = %+v, want empty session", st)
	}
}

func TestSaveAndReload(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORKBENCH_HOME", home)

	st := &Session{FocusedDock: "left"}
	st.SetActivePanel("left", "git")
	st.SetActivePanel("bottom", "terminal")
	if err := st.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The file lands under the portable state root.
	path := filepath.Join(home, "state", "workbench", "session.yml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("session file not found at %s: %v", path, err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ActivePanel("left") != "git" {
		t.Errorf("ActivePanel(left) = %q, want %q", got.ActivePanel("left"), "git")
	}
	if got.ActivePanel("bottom") != "terminal" {
		t.Errorf("ActivePanel(bottom) = %q, want %q", got.ActivePanel("bottom"), "terminal")
	}
	if got.FocusedDock != "left" {
		t.Errorf("FocusedDock = %q, want %q", got.FocusedDock, "left")
	}
}

func TestSetActivePanel(t *testing.T) {
	var st Session

	if got := st.ActivePanel("left"); got != "" {
		t.Errorf("ActivePanel on zero session = %q, want empty", got)
	}

	st.SetActivePanel("left", "project")
	if got := st.ActivePanel("left"); got != "project" {
		t.Errorf("ActivePanel(left) = %q, want %q", got, "project")
	}

	// Empty name clears the entry.
	st.SetActivePanel("left", "")
	if _, ok := st.ActivePanels["left"]; ok {
		t.Error("SetActivePanel with empty name left the entry in place")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORKBENCH_HOME", home)

	dir := filepath.Join(home, "state", "workbench")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "session.yml"), []byte("[not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() on malformed file succeeded, want error")
	}
}
