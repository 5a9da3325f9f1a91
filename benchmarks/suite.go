package benchmarks

import (
	"github.com/spf13/cobra"
)

// SuiteCommand runs the full decathlon of benchmark worlds
func SuiteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suite",
		Short: "Run the full benchmark suite and report a weighted score",
		RunE: func(cmd *cobra.Command, args []string) error {
			stopProfiling := startProfiling()
			defer stopProfiling()
			return runSuite(cmd.Context())
		},
	}
}
