package main

import (
	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-version",
		Description: "Verifies version output in text and JSON form.",
		Tags:        []string{"workbench", "basic"},
		Steps: []harness.Step{
			harness.NewStep("Run 'workbench version'", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "version")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "version should exit successfully"); err != nil {
					return err
				}
				for _, field := range []string{"Version:", "Commit:", "Build Date:", "Go Version:", "Platform:"} {
					if err := assert.Contains(result.Stdout, field, "output should contain "+field); err != nil {
						return err
					}
				}
				return nil
			}),
			harness.NewStep("Run 'workbench version --json'", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "version", "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "version --json should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, `"version"`, "JSON output should have a version key"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `"platform"`, "JSON output should have a platform key")
			}),
		},
	}
}

// PathsScenario tests the 'paths' command and its sandbox isolation.
func PathsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-paths",
		Description: "Verifies the XDG paths listing points into the sandboxed home.",
		Tags:        []string{"workbench", "basic"},
		Steps: []harness.Step{
			harness.NewStep("Run 'workbench paths'", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "paths")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "paths should exit successfully"); err != nil {
					return err
				}
				for _, key := range []string{`"config_dir"`, `"state_dir"`, `"logs_dir"`} {
					if err := assert.Contains(result.Stdout, key, "output should contain "+key); err != nil {
						return err
					}
				}
				// ctx.Command sandboxes HOME, so the reported paths must live
				// under it rather than the real user directories.
				return assert.Contains(result.Stdout, ctx.HomeDir(), "paths should resolve inside the sandboxed home")
			}),
		},
	}
}

// KeysScenario tests the 'keys' command.
func KeysScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-keys",
		Description: "Verifies the keybinding listing, including workbench.yml overrides.",
		Tags:        []string{"workbench", "keymap"},
		Steps: []harness.Step{
			harness.NewStep("Run 'workbench keys'", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "keys")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "keys should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Docks", "output should contain the Docks section"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "move panel", "output should list the relocate binding"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "toggle left dock", "output should list the dock toggles")
			}),
			harness.NewStep("Run 'workbench keys --json'", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "keys", "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "keys --json should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, `"demo"`, "JSON output should name the demo keymap"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `"config_key"`, "bindings should carry their override keys")
			}),
		},
	}
}
