package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/workbench/cli"
	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/tui/keymap"
	"github.com/grovetools/workbench/tui/theme"
)

// DemoKeymapInfo exports the demo workspace's keybindings with workbench.yml
// overrides applied. This provides a stable entry point for tooling.
func DemoKeymapInfo(cfg *config.Config) keymap.TUIInfo {
	km := keymap.Load(cfg, "demo")
	return keymap.Describe("demo", "Dockable panel workspace", km)
}

// NewKeysCmd creates the `keys` command.
func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the workspace keybindings",
		Long: `Lists the demo workspace's keybindings after applying any overrides from
workbench.yml or keybindings.toml.

Examples:
  # Show the effective keybindings
  workbench keys

  # Machine-readable listing
  workbench keys --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if file := cli.GetOptions(cmd).ConfigFile; file != "" {
				loaded, err := config.LoadFrom(file)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				loaded, err := config.LoadDefault()
				if err != nil {
					return err
				}
				cfg = loaded
			}

			info := DemoKeymapInfo(cfg)

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal keymap info: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			t := theme.DefaultTheme
			fmt.Printf("%s %s\n", t.Title.Render(info.Name), t.Muted.Render(info.Description))
			for _, section := range info.Sections {
				fmt.Println()
				fmt.Println(t.Header.Render(section.Name))
				for _, b := range section.Bindings {
					if !b.Enabled {
						continue
					}
					keys := t.StatusKey.Width(20).Render(strings.Join(b.Keys, ", "))
					fmt.Printf("  %s %s\n", keys, b.Description)
				}
			}
			return nil
		},
	}
}
