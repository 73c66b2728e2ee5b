package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/workbench/cli"
	"github.com/grovetools/workbench/version"
)

// NewVersionCmd creates the `version` command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(info.String())
			return nil
		},
	}
}
