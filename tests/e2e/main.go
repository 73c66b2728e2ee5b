package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/tend/pkg/app"
	"github.com/grovetools/tend/pkg/harness"
)

func scenarios() []*harness.Scenario {
	return []*harness.Scenario{
		VersionScenario(),
		PathsScenario(),
		KeysScenario(),
		ConfigInitScenario(),
		ConfigOverrideScenario(),
		ConfigMissingScenario(),
		ConfigInvalidScenario(),
		LogsScenario(),
		LogsFilteringScenario(),
		WorkspaceTUIScenario(),
	}
}

func main() {
	// Interrupts tear down half-run TUI sessions before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Execute(ctx, scenarios()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
