package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// sampleLogLines is a small structured log with one unparsable line mixed in.
const sampleLogLines = `{"time":"2024-03-01T10:00:01Z","level":"info","msg":"composer started","component":"composer"}
{"time":"2024-03-01T10:00:02Z","level":"warning","msg":"dropped hidden button","component":"composer","pattern":"debug*"}
plain text line from another tool
{"time":"2024-03-01T10:00:03Z","level":"info","msg":"relocated panel","component":"workspace","panel":"terminal"}
`

// writeLogsProject writes a project config whose logging section points at a
// pre-populated log file, and returns the project directory.
func writeLogsProject(ctx *harness.Context, name, extraLogging string) (string, error) {
	projectDir := ctx.NewDir(name)

	logPath := filepath.Join(projectDir, "workbench.log")
	if err := fs.WriteString(logPath, sampleLogLines); err != nil {
		return "", err
	}

	configYAML := fmt.Sprintf(`version: "1.0"
logging:
  file:
    enabled: true
    path: %s
%s`, logPath, extraLogging)
	if err := fs.WriteString(filepath.Join(projectDir, "workbench.yml"), configYAML); err != nil {
		return "", err
	}

	return projectDir, nil
}

// LogsScenario tests the logs command's pretty, JSON and tail output against
// a configured file sink.
func LogsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-logs",
		Description: "Verifies the logs command renders the configured log file in text and JSON form.",
		Tags:        []string{"workbench", "logs"},
		Steps: []harness.Step{
			harness.NewStep("Pretty-print the configured log file", func(ctx *harness.Context) error {
				projectDir, err := writeLogsProject(ctx, "logs-test", "")
				if err != nil {
					return err
				}

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "logs").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "logs should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "10:00:01", "timestamps should be rendered as clock time"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "INFO", "levels should be upper-cased"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "composer started", "messages should be printed"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "[composer]", "the component should be printed in brackets"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "pattern=debug*", "extra fields should be printed as key=value"); err != nil {
					return err
				}
				// Unparsable lines pass through untouched.
				return assert.Contains(result.Stdout, "plain text line from another tool", "raw lines should pass through")
			}),
			harness.NewStep("Emit JSON lines with --json", func(ctx *harness.Context) error {
				projectDir := filepath.Join(ctx.RootDir, "logs-test")

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "logs", "--json").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "logs --json should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, `"msg":"composer started"`, "structured lines should stay JSON"); err != nil {
					return err
				}
				// Unparsable lines are wrapped so the stream stays valid JSON Lines.
				return assert.Contains(result.Stdout, `"raw_line":"plain text line from another tool"`, "raw lines should be wrapped")
			}),
			harness.NewStep("Trim to the last line with --tail", func(ctx *harness.Context) error {
				projectDir := filepath.Join(ctx.RootDir, "logs-test")

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "logs", "--tail", "1").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "logs --tail should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "relocated panel", "the last line should be printed"); err != nil {
					return err
				}
				if strings.Contains(result.Stdout, "composer started") {
					return fmt.Errorf("--tail 1 should drop earlier lines, but found the first message")
				}
				return nil
			}),
		},
	}
}

// LogsFilteringScenario tests component visibility filters from the logging
// config section.
func LogsFilteringScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "workbench-logs-filtering",
		Description: "Verifies show/hide component filters are applied to logs output.",
		Tags:        []string{"workbench", "logs"},
		Steps: []harness.Step{
			harness.NewStep("Hide a component via the hide list", func(ctx *harness.Context) error {
				projectDir, err := writeLogsProject(ctx, "logs-hide-test", "  hide: [composer]\n")
				if err != nil {
					return err
				}

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "logs").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "logs should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "relocated panel", "other components should remain visible"); err != nil {
					return err
				}
				if strings.Contains(result.Stdout, "composer started") {
					return fmt.Errorf("hide list should suppress composer lines")
				}
				return nil
			}),
			harness.NewStep("Restrict to a component via the show list", func(ctx *harness.Context) error {
				projectDir, err := writeLogsProject(ctx, "logs-show-test", "  show: [composer]\n")
				if err != nil {
					return err
				}

				bin, err := findWorkbenchBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "logs").Dir(projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "logs should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "composer started", "listed components should be visible"); err != nil {
					return err
				}
				if strings.Contains(result.Stdout, "relocated panel") {
					return fmt.Errorf("show list should suppress components it does not name")
				}
				return nil
			}),
		},
	}
}
