package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

// CobraProfiler hangs profiling flags off a root command and drives the
// pprof lifecycle from its persistent hooks.
type CobraProfiler struct {
	cpuPath string
	memPath string
	timing  bool
	cpuFile *os.File
}

// NewCobraProfiler creates a profiler ready to attach to a command.
func NewCobraProfiler() *CobraProfiler {
	return &CobraProfiler{}
}

// AddFlags registers the profiling flags on the command's persistent flag set.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&p.cpuPath, "cpu-profile", "", "Write a CPU profile to the given file")
	flags.StringVar(&p.memPath, "mem-profile", "", "Write a heap profile to the given file")
	flags.BoolVar(&p.timing, "timing", false, "Print a hierarchical timing summary on exit")
}

// PreRun starts profiling according to the parsed flags. Install it as the
// command's PersistentPreRunE.
func (p *CobraProfiler) PreRun(cmd *cobra.Command, args []string) error {
	if p.timing {
		Enable()
	}
	if p.cpuPath == "" {
		return nil
	}

	f, err := os.Create(p.cpuPath)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpuFile = f
	return nil
}

// PostRun finalizes profiling, writing profile files and the timing summary.
// Install it as the command's PersistentPostRun.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, args []string) {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "CPU profile written to %s\n", p.cpuPath)
	}
	if p.memPath != "" {
		p.writeHeapProfile(cmd)
	}
	if p.timing {
		Summarize(cmd.ErrOrStderr())
	}
}

func (p *CobraProfiler) writeHeapProfile(cmd *cobra.Command) {
	f, err := os.Create(p.memPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "could not create memory profile: %v\n", err)
		return
	}
	defer f.Close()

	runtime.GC() // heap profile should reflect live objects only
	if err := pprof.WriteHeapProfile(f); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "could not write memory profile: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Memory profile written to %s\n", p.memPath)
}
