package main

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ConfigInitScenario tests the init / show / validate flow on a fresh project.
func ConfigInitScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-config-init",
		Description: "Verifies config init writes a valid starter file that show and validate accept.",
		Tags:        []string{"workbench", "config"},
		Steps: []harness.Step{
			harness.NewStep("Create a starter config", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "init")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "config init should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Created", "init should report the created file")
			}),
			harness.NewStep("Show the effective config", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "show")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "config show should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "theme: kanagawa", "starter theme should be shown"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "open_docks", "starter workbench section should be shown")
			}),
			harness.NewStep("Validate the starter config", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "validate")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "config validate should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "is valid", "validate should report success")
			}),
			harness.NewStep("Refuse to overwrite an existing config", func(ctx *harness.Context) error {
				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "init")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("second config init should fail, but exited 0")
				}
				return assert.Contains(result.Stderr, "already exists", "init should refuse to clobber the config")
			}),
		},
	}
}

// ConfigOverrideScenario tests that .workbench.override.yml wins over the
// main config file.
func ConfigOverrideScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-config-override",
		Description: "Verifies the local override file takes precedence over workbench.yml.",
		Tags:        []string{"workbench", "config", "override"},
		Steps: []harness.Step{
			harness.NewStep("Write layered configs and verify the merge", func(ctx *harness.Context) error {
				projectDir := ctx.NewDir("override-test")

				mainYAML := `version: "1.0"
tui:
  theme: kanagawa
workbench:
  open_docks: [left]
`
				if err := fs.WriteString(filepath.Join(projectDir, "workbench.yml"), mainYAML); err != nil {
					return err
				}

				overrideYAML := `tui:
  theme: gruvbox
`
				if err := fs.WriteString(filepath.Join(projectDir, ".workbench.override.yml"), overrideYAML); err != nil {
					return err
				}

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "show").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "config show should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "theme: gruvbox", "override theme should win"); err != nil {
					return err
				}
				// Keys the override does not touch survive from the main file.
				return assert.Contains(result.Stdout, "open_docks", "main config sections should survive the merge")
			}),
			harness.NewStep("Verify the merge in JSON output", func(ctx *harness.Context) error {
				projectDir := filepath.Join(ctx.RootDir, "override-test")

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "show", "--json").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "config show --json should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `"theme": "gruvbox"`, "JSON output should reflect the override")
			}),
		},
	}
}

// ConfigMissingScenario tests the guidance printed when no config exists.
func ConfigMissingScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-config-missing",
		Description: "Verifies config show fails with guidance when no workbench.yml exists.",
		Tags:        []string{"workbench", "config", "edge-cases"},
		Steps: []harness.Step{
			harness.NewStep("Run config show with no config file", func(ctx *harness.Context) error {
				projectDir := ctx.NewDir("no-config-test")

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "show").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("config show should fail without a config file, but exited 0")
				}
				return assert.Contains(result.Stderr, "workbench config init", "error should point at config init")
			}),
		},
	}
}

// ConfigInvalidScenario tests that a broken config is rejected.
func ConfigInvalidScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-config-invalid",
		Description: "Verifies validate rejects a config that does not match the schema.",
		Tags:        []string{"workbench", "config", "edge-cases"},
		Steps: []harness.Step{
			harness.NewStep("Validate a config with a mistyped section", func(ctx *harness.Context) error {
				projectDir := ctx.NewDir("invalid-config-test")

				badYAML := `version: "1.0"
tui: [not, a, mapping]
`
				if err := fs.WriteString(filepath.Join(projectDir, "workbench.yml"), badYAML); err != nil {
					return err
				}

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "config", "validate").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("validate should fail for a mistyped section, but exited 0")
				}
				return assert.Contains(result.Stderr, "invalid config file", "error should name the broken file")
			}),
		},
	}
}
