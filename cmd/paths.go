package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/workbench/pkg/paths"
)

// NewPathsCmd creates the `paths` command. Output is always JSON so shell
// scripts and editor integrations can locate workbench files without
// reimplementing the XDG fallback chain.
func NewPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the directories workbench reads and writes",
		Long: `Print the directories workbench reads and writes, as JSON.

The layout follows the XDG base directory spec, with WORKBENCH_HOME
relocating everything under one root:
  config_dir  workbench.yml and keybindings.toml
  state_dir   session state
  logs_dir    log files, under state_dir`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := map[string]string{
				"config_dir": paths.ConfigDir(),
				"state_dir":  paths.StateDir(),
				"logs_dir":   paths.LogsDir(),
			}
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
