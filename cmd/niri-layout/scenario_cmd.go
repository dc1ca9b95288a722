package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/niri-layout/internal/scenario"
)

// defaultScenarioDir mirrors config.Path's XDG-based default
// resolution, but under the cache dir since scenario files here are
// disposable fixtures rather than user configuration.
func defaultScenarioDir() string {
	return filepath.Join(xdg.CacheHome, "niri-layout", "scenarios")
}

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run or watch TOML scenario files against the layout engine",
	}
	cmd.AddCommand(newScenarioRunCmd())
	cmd.AddCommand(newScenarioWatchCmd())
	return cmd
}

func newScenarioRunCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run one or more scenario files and report pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Default()

			paths := args
			if len(paths) == 0 {
				if dir == "" {
					dir = defaultScenarioDir()
				}
				found, err := scenario.DiscoverScenarios(dir)
				if err != nil {
					return fmt.Errorf("discovering scenarios in %s: %w", dir, err)
				}
				if len(found) == 0 {
					logger.Warn("no scenario files found", "dir", dir)
					return nil
				}
				paths = found
			}

			results, err := scenario.RunAll(context.Background(), paths)
			if err != nil {
				logger.Error("one or more scenarios failed to load", "err", err)
			}

			failCount := 0
			for _, r := range results {
				if r == nil {
					continue
				}
				if r.Err != nil {
					failCount++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", r.Path, r.Err)
					continue
				}
				if !r.Passed {
					failCount++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: snapshot mismatch\n%s\n", r.Path, r.Snapshot)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", r.Path)
			}

			if failCount > 0 {
				return fmt.Errorf("%d of %d scenario(s) failed", failCount, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to discover *.toml scenarios from when no files are given")
	return cmd
}

func newScenarioWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run a scenario file every time it changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Default()
			path := args[0]

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			return scenario.Watch(ctx, path, func(r *scenario.Result) {
				if r.Err != nil {
					logger.Error("scenario error", "path", r.Path, "err", r.Err)
					return
				}
				if !r.Passed {
					logger.Warn("scenario snapshot mismatch", "path", r.Path)
					fmt.Fprintln(os.Stdout, r.Snapshot)
					return
				}
				logger.Info("scenario passed", "path", r.Path)
			})
		},
	}
	return cmd
}
