package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo is the build metadata stamped into the workbench binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	Platform  string
}

// SetVersionTemplate enables --version on the root command and formats its
// output as the binary name plus indented build metadata.
func SetVersionTemplate(cmd *cobra.Command, info BuildInfo) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} {{.Version}}\n  commit:   %s\n  built:    %s\n  platform: %s\n",
		info.Commit, info.BuildDate, info.Platform))
}
