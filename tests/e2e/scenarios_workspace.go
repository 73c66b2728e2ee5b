package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/tui"
)

// WorkspaceTUIScenario drives the demo workspace end to end: startup layout,
// panel cycling, the relocate menu, and the help overlay.
func WorkspaceTUIScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-workspace-tui",
		Description: "Verifies the demo workspace TUI renders docks, cycles panels and opens menus.",
		Tags:        []string{"workbench", "tui", "workspace"},
		LocalOnly:   true, // TUI tests require tmux
		Steps: []harness.Step{
			harness.NewStep("Write config and start the workspace", func(ctx *harness.Context) error {
				// StartTUI runs in ctx.RootDir, so the config goes there.
				configYAML := `version: "1.0"
workbench:
  open_docks: [left]
`
				if err := fs.WriteString(filepath.Join(ctx.RootDir, "workbench.yml"), configYAML); err != nil {
					return err
				}

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				session, err := ctx.StartTUI(bin, []string{"demo", "--no-bridge"})
				if err != nil {
					return fmt.Errorf("failed to start TUI: %w", err)
				}
				ctx.Set("tui_session", session)
				return nil
			}),
			harness.NewStep("Verify the initial layout", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)

				// The status line appearing means the workspace finished loading.
				if err := session.WaitForText("Docks: left", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("TUI did not load within timeout: %w\nContent: %s", err, content)
				}
				if err := session.WaitStable(); err != nil {
					return fmt.Errorf("UI did not stabilize: %w", err)
				}

				if err := session.AssertContains("Left Dock"); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the left dock to be open: %w\nContent: %s", err, content)
				}
				// The left dock starts on its first panel.
				if err := session.AssertContains("Project Panel"); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the project panel to be active: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Cycle to the next panel", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)

				if err := session.SendKeys("]"); err != nil {
					return err
				}
				if err := session.WaitForText("Git Panel", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the git panel after cycling: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Open and dismiss the relocate menu", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)

				if err := session.SendKeys("m"); err != nil {
					return err
				}
				// The git panel sits in the left dock and is side-only, so the
				// menu offers exactly the right dock.
				if err := session.WaitForText("Dock Right", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the relocate menu to open: %w\nContent: %s", err, content)
				}

				if err := session.SendKeys("Escape"); err != nil {
					return err
				}
				if err := session.WaitStable(); err != nil {
					return fmt.Errorf("UI did not stabilize after closing the menu: %w", err)
				}
				if err := session.AssertNotContains("Dock Right"); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the relocate menu to close: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Toggle the help overlay", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)

				if err := session.SendKeys("?"); err != nil {
					return err
				}
				if err := session.WaitForText("Workspace Keys", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the help overlay: %w\nContent: %s", err, content)
				}

				if err := session.SendKeys("Escape"); err != nil {
					return err
				}
				if err := session.WaitStable(); err != nil {
					return fmt.Errorf("UI did not stabilize after closing help: %w", err)
				}
				if err := session.AssertNotContains("Workspace Keys"); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected help to close: %w\nContent: %s", err, content)
				}
				// The workspace is back.
				if err := session.AssertContains("Docks: left"); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expected the workspace after closing help: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Quit the workspace", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				return session.SendKeys("q")
			}),
		},
	}
}
