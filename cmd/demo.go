package cmd

import (
	"context"
	"fmt"

	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/grovetools/workbench/cli"
	"github.com/grovetools/workbench/config"
	"github.com/grovetools/workbench/dock"
	"github.com/grovetools/workbench/logging"
	"github.com/grovetools/workbench/pkg/bridge"
	"github.com/grovetools/workbench/pkg/profiling"
	"github.com/grovetools/workbench/pkg/settings"
	"github.com/grovetools/workbench/tui"
)

// NewDemoCmd creates the `demo` command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the dockable panel workspace",
		Long: `Runs the workspace TUI: three docks (left, bottom, right), a set of stub
panels, and a sidebar launcher column on each side. Sidebar buttons toggle
their panels, right-click (or the move-panel key) opens a relocate menu,
and placement changes persist to the workbench section of workbench.yml.

Examples:
  # Run with the nearest workbench.yml
  workbench demo

  # Open the left and bottom docks at startup
  workbench demo --open left,bottom

  # Run without the websocket event bridge
  workbench demo --no-bridge`,
		RunE: runDemoE,
	}

	cmd.Flags().StringSlice("open", nil, "Docks to open at startup: left, right, bottom")
	cmd.Flags().Bool("no-bridge", false, "Disable the websocket event bridge")
	cmd.Flags().Bool("no-watch", false, "Disable live reload of workbench.yml")

	return cmd
}

func runDemoE(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("demo")
	opts := cli.GetOptions(cmd)

	store, err := resolveStore(opts.ConfigFile)
	if err != nil {
		return err
	}

	openFlags, _ := cmd.Flags().GetStringSlice("open")
	noBridge, _ := cmd.Flags().GetBool("no-bridge")
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	// Docks named on the command line override the configured open_docks.
	var openDocks []dock.Position
	for _, name := range openFlags {
		pos, err := dock.ParsePosition(name)
		if err != nil {
			return err
		}
		openDocks = append(openDocks, pos)
	}

	ws := newWorkspace(store, openDocks)
	defer ws.close()

	cfg := store.Config()
	bridgeEnabled := !noBridge
	listen := ""
	if cfg.Bridge != nil {
		if cfg.Bridge.Enabled != nil && !*cfg.Bridge.Enabled {
			bridgeEnabled = false
		}
		listen = cfg.Bridge.Listen
	}
	if bridgeEnabled {
		br := bridge.New(listen)
		if err := br.Start(); err != nil {
			// The workspace is fully usable without the bridge; don't fail the
			// whole session over a busy port.
			logger.Warnf("Event bridge disabled: %v", err)
		} else {
			ws.bridge = br
			defer br.Close()
		}
	}

	if !noWatch && store.Path() != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := store.Watch(ctx); err != nil {
			logger.Warnf("Config watching disabled: %v", err)
		}
	}

	zone.NewGlobal()
	defer zone.Close()

	tui.InitializeTUI()
	p := tui.NewProgram(ws)
	ws.send = p.Send
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// resolveStore loads the settings store from an explicit config path, or from
// the usual search when none is given.
func resolveStore(configFile string) (*settings.Store, error) {
	defer profiling.Start("demo.load-settings").Stop()

	if configFile != "" {
		cfg, err := config.LoadFrom(configFile)
		if err != nil {
			return nil, err
		}
		return settings.NewStore(cfg, configFile), nil
	}
	return settings.Load()
}
