// Package main implements niri-layout, a command-line harness around the
// scrollable-tiling layout engine: a TOML scenario runner/watcher for
// exercising it headlessly, and a terminal visualizer that paints the
// layout as keys add windows and drive a handful of operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "niri-layout",
		Short: "Headless harness for the scrollable-tiling layout engine",
		Long: `niri-layout exercises the layout engine core without a compositor
attached to it: scenario files script a sequence of operations against a
freshly built Layout, and the demo visualizer paints a live layout in a
terminal as keys add windows and drive a few operations.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newScenarioCmd())
	rootCmd.AddCommand(newDemoCmd())

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
