// Package state persists the demo workspace's session between runs: the
// panel each dock was showing and where focus was when the session ended.
// The file is small YAML under the workbench state directory, kept apart
// from configuration so a running workspace never rewrites workbench.yml
// implicitly.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/workbench/pkg/paths"
)

const fileName = "session.yml"

// Session is the saved workspace state. The zero value is a valid empty
// session.
type Session struct {
	// ActivePanels maps a dock position name to the panel it resumes on.
	ActivePanels map[string]string `yaml:"active_panels,omitempty"`
	// FocusedDock names the dock that held focus, or "" for the editor.
	FocusedDock string `yaml:"focused_dock,omitempty"`
}

func filePath() (string, error) {
	dir := paths.StateDir()
	if dir == "" {
		return "", fmt.Errorf("no state directory available")
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the saved session. A missing file yields an empty session.
func Load() (*Session, error) {
	path, err := filePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session state: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session state: %w", err)
	}
	return &s, nil
}

// Save writes the session under the state directory, creating it if
// needed.
func (s *Session) Save() error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

// ActivePanel returns the panel name saved for a dock, or "".
func (s *Session) ActivePanel(dock string) string {
	return s.ActivePanels[dock]
}

// SetActivePanel records the panel a dock is showing. An empty name clears
// the entry.
func (s *Session) SetActivePanel(dock, panel string) {
	if panel == "" {
		delete(s.ActivePanels, dock)
		return
	}
	if s.ActivePanels == nil {
		s.ActivePanels = make(map[string]string)
	}
	s.ActivePanels[dock] = panel
}
