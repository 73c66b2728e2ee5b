// Package settings exposes the workbench section of the configuration as a
// live store: hidden-button patterns, panel placement overrides, and which
// docks start open. A store can watch its backing file and notify
// subscribers when it changes, with the same subscription semantics as
// dock.Subscribe. Unlike docks, a store is also touched from the watcher
// goroutine, so access is mutex-guarded.
package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/errors"
	"github.com/grovetools/workbench/logging"
)

const defaultDebounce = 100 * time.Millisecond

// Store holds the loaded configuration and answers the workbench-section
// queries the demo and sidebar need.
type Store struct {
	mu         sync.Mutex
	path       string
	cfg        *config.Config
	hidden     *patternmatcher.PatternMatcher
	lastChange time.Time
	debounce   time.Duration

	nextSubID   int
	subscribers map[int]func()

	logger *logrus.Entry
}

// NewStore wraps an already-loaded configuration. path is the file
// SetPlacement writes back to and Watch observes; an empty path disables
// both.
func NewStore(cfg *config.Config, path string) *Store {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.SetDefaults()
	}
	logger := logging.NewLogger("settings")
	return &Store{
		path:        path,
		cfg:         cfg,
		hidden:      buildMatcher(hiddenPatterns(cfg), logger),
		debounce:    defaultDebounce,
		subscribers: make(map[int]func()),
		logger:      logger,
	}
}

// Load builds a store from the workbench configuration on disk. When no
// config file exists the store starts from defaults, with persistence and
// watching disabled.
func Load() (*Store, error) {
	path, err := config.FindConfigFile()
	if err != nil {
		cfg := &config.Config{}
		cfg.SetDefaults()
		return NewStore(cfg, ""), nil
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	return NewStore(cfg, path), nil
}

// Config returns the currently loaded configuration. The returned value is
// shared; treat it as read-only.
func (s *Store) Config() *config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Path returns the config file backing this store, or "" for an in-memory
// store.
func (s *Store) Path() string {
	return s.path
}

// IsHidden reports whether a panel name matches the hidden_buttons patterns.
// Patterns follow dockerignore syntax, including ! exclusions.
func (s *Store) IsHidden(name string) bool {
	s.mu.Lock()
	pm := s.hidden
	s.mu.Unlock()
	if pm == nil {
		return false
	}
	hidden, err := pm.MatchesOrParentMatches(name)
	if err != nil {
		return false
	}
	return hidden
}

// Placement returns the configured dock position override for a panel name.
func (s *Store) Placement(panel string) (dock.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.Workbench == nil {
		return 0, false
	}
	raw, ok := s.cfg.Workbench.Placement[panel]
	if !ok {
		return 0, false
	}
	pos, err := dock.ParsePosition(raw)
	if err != nil {
		return 0, false
	}
	return pos, true
}

// DockOpen reports whether the configuration lists pos under open_docks.
func (s *Store) DockOpen(pos dock.Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.Workbench == nil {
		return false
	}
	for _, name := range s.cfg.Workbench.OpenDocks {
		if name == pos.String() {
			return true
		}
	}
	return false
}

// SetPlacement records a panel's dock position override and saves the
// workbench section back to the config file. Subscribers are notified even
// when the save fails; the in-memory override still took effect.
func (s *Store) SetPlacement(panel string, pos dock.Position) error {
	s.mu.Lock()
	if s.cfg.Workbench == nil {
		s.cfg.Workbench = &config.WorkbenchConfig{}
	}
	if s.cfg.Workbench.Placement == nil {
		s.cfg.Workbench.Placement = make(map[string]string)
	}
	s.cfg.Workbench.Placement[panel] = pos.String()

	var saveErr error
	if s.path != "" {
		saveErr = s.save()
	}
	s.mu.Unlock()

	s.notify()

	if saveErr != nil {
		return errors.SettingsSaveFailed(saveErr, s.path)
	}
	return nil
}

// save writes the workbench section back into the config file, leaving the
// rest of the document untouched. Callers hold s.mu.
func (s *Store) save() error {
	var doc yaml.Node
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
	case os.IsNotExist(err):
	default:
		return err
	}

	// Empty or absent file starts a fresh document.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("config root is not a mapping")
	}

	var section yaml.Node
	if err := section.Encode(s.cfg.Workbench); err != nil {
		return err
	}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "workbench" {
			root.Content[i+1] = &section
			replaced = true
			break
		}
	}
	if !replaced {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "workbench"},
			&section)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, out, 0o644)
}

// Subscribe registers fn to run after every settings change. The returned
// subscription stops the notifications when cancelled.
func (s *Store) Subscribe(fn func()) dock.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return dock.NewSubscription(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	})
}

// notify runs the subscriber callbacks outside the store lock; a callback
// may call back into the store.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Reload re-reads the backing file, swaps the configuration, and notifies
// subscribers.
func (s *Store) Reload() error {
	if s.path == "" {
		return errors.New(errors.ErrCodeSettingsLoad, "settings store has no backing file")
	}
	cfg, err := config.LoadFrom(s.path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSettingsLoad, "failed to reload settings")
	}

	s.mu.Lock()
	s.cfg = cfg
	s.hidden = buildMatcher(hiddenPatterns(cfg), s.logger)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Watch starts watching the config directory for changes to the backing
// file, its override file, and keybindings.toml, reloading on each change.
// Watching stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return errors.New(errors.ErrCodeSettingsWatch, "settings store has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSettingsWatch, "failed to create file watcher")
	}
	// Watch the directory, not the file: editors that write via rename would
	// otherwise drop the watch on first save.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return errors.Wrap(err, errors.ErrCodeSettingsWatch, "failed to watch config directory")
	}

	go s.watchLoop(ctx, watcher)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	watched := map[string]bool{
		filepath.Base(s.path):   true,
		config.OverrideFileName: true,
		"keybindings.toml":      true,
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !watched[filepath.Base(event.Name)] {
				continue
			}
			if !s.debounced() {
				continue
			}
			s.logger.Infof("Config changed: %s", filepath.Base(event.Name))
			if err := s.Reload(); err != nil {
				s.logger.WithError(err).Warn("Failed to reload settings")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			watcher.Close()
			return
		}
	}
}

// debounced reports whether enough time has passed since the last processed
// change. Rapid successive writes collapse into the first one.
func (s *Store) debounced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Since(s.lastChange) < s.debounce {
		return false
	}
	s.lastChange = time.Now()
	return true
}

func hiddenPatterns(cfg *config.Config) []string {
	if cfg == nil || cfg.Workbench == nil {
		return nil
	}
	return cfg.Workbench.HiddenButtons
}

func buildMatcher(patterns []string, logger *logrus.Entry) *patternmatcher.PatternMatcher {
	if len(patterns) == 0 {
		return nil
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		logger.WithError(err).Warn("Ignoring invalid hidden_buttons patterns")
		return nil
	}
	return pm
}
