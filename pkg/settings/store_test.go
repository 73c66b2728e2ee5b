package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/errors"
)

func storeWith(wb *config.WorkbenchConfig) *Store {
	cfg := &config.Config{Workbench: wb}
	cfg.SetDefaults()
	return NewStore(cfg, "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbench.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHiddenPatterns(t *testing.T) {
	s := storeWith(&config.WorkbenchConfig{
		HiddenButtons: []string{"debug*", "!debugger", "notification"},
	})

	tests := []struct {
		name   string
		hidden bool
	}{
		{"debug", true},
		{"debugging", true},
		{"debugger", false}, // excluded by the ! pattern
		{"notification", true},
		{"git", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.hidden, s.IsHidden(tt.name), "IsHidden(%q)", tt.name)
	}
}

func TestHiddenPatternsEmptyAndInvalid(t *testing.T) {
	assert.False(t, storeWith(nil).IsHidden("anything"), "store without patterns should hide nothing")

	// A bare exclusion is rejected by the matcher; the store falls back to
	// hiding nothing rather than failing construction.
	s := storeWith(&config.WorkbenchConfig{HiddenButtons: []string{"!"}})
	assert.False(t, s.IsHidden("anything"), "invalid pattern list should hide nothing")
}

func TestPlacementLookup(t *testing.T) {
	s := storeWith(&config.WorkbenchConfig{
		Placement: map[string]string{
			"terminal": "right",
			"broken":   "ceiling",
		},
	})

	pos, ok := s.Placement("terminal")
	require.True(t, ok)
	assert.Equal(t, dock.PositionRight, pos)

	_, ok = s.Placement("git")
	assert.False(t, ok, "Placement for unconfigured panel should report false")

	_, ok = s.Placement("broken")
	assert.False(t, ok, "unparseable position should report false")
}

func TestDockOpen(t *testing.T) {
	s := storeWith(&config.WorkbenchConfig{OpenDocks: []string{"left", "bottom"}})

	assert.True(t, s.DockOpen(dock.PositionLeft))
	assert.True(t, s.DockOpen(dock.PositionBottom))
	assert.False(t, s.DockOpen(dock.PositionRight), "right dock is not configured open")
	assert.False(t, storeWith(nil).DockOpen(dock.PositionLeft), "store without a workbench section should report no open docks")
}

func TestSetPlacementPersistsAndNotifies(t *testing.T) {
	path := writeConfig(t, `name: demo
version: "1.0"
tui:
  theme: kanagawa
`)
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	s := NewStore(cfg, path)

	var calls int
	sub := s.Subscribe(func() { calls++ })
	defer sub.Cancel()

	require.NoError(t, s.SetPlacement("terminal", dock.PositionBottom))
	assert.Equal(t, 1, calls, "expected one notification")

	pos, ok := s.Placement("terminal")
	require.True(t, ok)
	assert.Equal(t, dock.PositionBottom, pos)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "demo", doc["name"], "save should leave unrelated keys in place")
	assert.NotNil(t, doc["tui"], "save should leave the tui section in place")

	wb, ok := doc["workbench"].(map[string]interface{})
	require.True(t, ok, "workbench section missing after save: %v", doc)
	placement, ok := wb["placement"].(map[string]interface{})
	require.True(t, ok, "placement not persisted: %v", wb)
	assert.Equal(t, "bottom", placement["terminal"])
}

func TestSetPlacementCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workbench.yml")
	s := NewStore(&config.Config{}, path)

	require.NoError(t, s.SetPlacement("outline", dock.PositionRight))

	data, err := os.ReadFile(path)
	require.NoError(t, err, "config file not created")
	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.NotNil(t, doc["workbench"], "created file missing workbench section: %s", data)
}

func TestReloadPicksUpChanges(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
workbench:
  hidden_buttons: ["git"]
`)
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	s := NewStore(cfg, path)
	require.True(t, s.IsHidden("git"), "initial pattern should hide git")

	var calls int
	sub := s.Subscribe(func() { calls++ })
	defer sub.Cancel()

	next := `version: "1.0"
workbench:
  hidden_buttons: ["outline"]
`
	require.NoError(t, os.WriteFile(path, []byte(next), 0o644))
	require.NoError(t, s.Reload())

	assert.Equal(t, 1, calls, "expected one notification after reload")
	assert.False(t, s.IsHidden("git"), "old pattern should be gone after reload")
	assert.True(t, s.IsHidden("outline"), "new pattern should apply after reload")
}

func TestSubscribeCancelStopsNotifications(t *testing.T) {
	s := storeWith(nil)

	var calls int
	sub := s.Subscribe(func() { calls++ })
	sub.Cancel()
	sub.Cancel() // idempotent

	require.NoError(t, s.SetPlacement("terminal", dock.PositionLeft))
	assert.Equal(t, 0, calls, "cancelled subscriber should not run")
}

func TestInMemoryStoreCannotReloadOrWatch(t *testing.T) {
	s := NewStore(nil, "")

	assert.True(t, errors.Is(s.Reload(), errors.ErrCodeSettingsLoad), "Reload should fail with SETTINGS_LOAD")
	assert.True(t, errors.Is(s.Watch(context.Background()), errors.ErrCodeSettingsWatch), "Watch should fail with SETTINGS_WATCH")
}
