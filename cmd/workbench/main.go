package main

import (
	"os"

	"github.com/grovetools/workbench/cli"
	"github.com/grovetools/workbench/cmd"
	"github.com/grovetools/workbench/pkg/profiling"
	"github.com/grovetools/workbench/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"workbench",
		"A dockable panel workspace for the terminal",
	)

	profiler := profiling.NewCobraProfiler()
	profiler.AddFlags(rootCmd)
	rootCmd.PersistentPreRunE = profiler.PreRun
	rootCmd.PersistentPostRun = profiler.PostRun

	info := version.GetInfo()
	cli.SetVersionTemplate(rootCmd, cli.BuildInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		BuildDate: info.BuildDate,
		Platform:  info.Platform,
	})

	// The error handler owns error output, so cobra stays quiet.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	// Add subcommands
	rootCmd.AddCommand(cmd.NewDemoCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewLogsCmd())
	rootCmd.AddCommand(cmd.NewKeysCmd())
	rootCmd.AddCommand(cmd.NewPathsCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
