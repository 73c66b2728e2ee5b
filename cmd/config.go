package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/workbench/cli"
	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/pkg/paths"
	"github.com/grovetools/workbench/tui/theme"
)

// NewConfigCmd creates the `config` command with its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the workbench configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// resolveConfigPath returns the explicit --config path when given, otherwise
// searches for a workbench.yml the way every other command does.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if file := cli.GetOptions(cmd).ConfigFile; file != "" {
		return file, nil
	}
	return config.FindConfigFile()
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration after merging the override file and
modular keybinding files.

Examples:
  # Print the merged configuration as YAML
  workbench config show

  # Print as JSON for scripting
  workbench config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			if cli.GetOptions(cmd).JSONOutput {
				// Round-trip through a map so JSON output uses the YAML key
				// names rather than Go field names.
				var m map[string]interface{}
				if err := yaml.Unmarshal(data, &m); err != nil {
					return fmt.Errorf("failed to render config: %w", err)
				}
				jsonData, err := json.MarshalIndent(m, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Println(string(jsonData))
				return nil
			}

			fmt.Println(theme.DefaultTheme.Muted.Render("# " + path))
			fmt.Print(string(data))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the workbench configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			if _, err := config.LoadFrom(path); err != nil {
				return err
			}

			t := theme.DefaultTheme
			fmt.Printf("%s %s is valid\n", t.Success.Render(theme.IconSuccess), path)
			return nil
		},
	}
}

// configTemplate is the starter file written by `config init`. It must stay
// valid against the generated schema.
const configTemplate = `# workbench.yml - workbench configuration
version: "1.0"

tui:
  # Color theme: kanagawa, gruvbox or terminal
  theme: kanagawa

workbench:
  # Docks that start open
  open_docks: [left]

  # Override where a panel docks
  # placement:
  #   terminal: right

  # Hide sidebar buttons by panel name glob
  # hidden_buttons: ["debug*"]

bridge:
  enabled: true
  listen: "127.0.0.1:7599"
`

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter workbench.yml",
		Long: `Create a starter workbench.yml in the current directory.

Examples:
  # Create ./workbench.yml
  workbench config init

  # Create the user-wide config instead
  workbench config init --global`,
		RunE: func(cmd *cobra.Command, args []string) error {
			global, _ := cmd.Flags().GetBool("global")

			dir := "."
			if global {
				dir = paths.ConfigDir()
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
			}
			path := filepath.Join(dir, config.ConfigFileName)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s", path)
			}

			if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			t := theme.DefaultTheme
			fmt.Printf("%s Created %s\n", t.Success.Render(theme.IconSuccess), path)
			return nil
		},
	}

	cmd.Flags().Bool("global", false, "Create the config in the user config directory instead of the current directory")

	return cmd
}
