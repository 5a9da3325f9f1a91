package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/becca-rl/beccatest/worlds"
)

// TestCommand selects a world by name or index and runs it, or runs
// the whole suite when "all" (index 0) is requested.
func TestCommand() *cobra.Command {
	var worldKey string
	var profile bool

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test a brain on one world, or on all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile && cpuprofile == "" {
				cpuprofile = "beccatest.pprof"
			}
			if worldKey == "all" || worldKey == "0" {
				stopProfiling := startProfiling()
				defer stopProfiling()
				return runSuite(cmd.Context())
			}
			entry, ok := worlds.Lookup(worldKey)
			if !ok {
				return fmt.Errorf("unknown world %q, see the worlds command for the list", worldKey)
			}
			return runSingleWorld(cmd.Context(), entry)
		},
	}
	cmd.Flags().StringVarP(&worldKey, "world", "w", "all", "The world to test, by name or index (all runs the suite)")
	cmd.Flags().BoolVarP(&profile, "profile", "p", false, "Profile the run")
	return cmd
}
