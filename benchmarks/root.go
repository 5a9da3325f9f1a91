package benchmarks

import (
	"github.com/spf13/cobra"

	"github.com/becca-rl/beccatest/logging"
	"github.com/becca-rl/beccatest/worlds"
)

var (
	lifespanK   int
	saveDir     string
	runs        int
	brainName   string
	seed        int64
	restore     bool
	monitorAddr string
	redisAddr   string
	cpuprofile  string
	memprofile  string
	logLevel    string
	visualize   int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "beccatest",
		Short: "Run the suite of benchmark worlds against a brain",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Configure(logLevel)
		},
	}
	rootCommand.PersistentFlags().IntVarP(&lifespanK, "lifespan", "t", 10, "Number of time steps (in thousands) to run each world")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of suite runs")
	rootCommand.PersistentFlags().StringVar(&brainName, "brain", "q", "Brain to drive the worlds (q, softmax, random)")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for the world random sources (0 leaves them unseeded)")
	rootCommand.PersistentFlags().BoolVar(&restore, "restore", false, "Restore the brain from its last checkpoint before running")
	rootCommand.PersistentFlags().StringVar(&monitorAddr, "monitor", "", "Serve live run status on the given address")
	rootCommand.PersistentFlags().StringVar(&redisAddr, "redis", "", "Keep brain checkpoints in redis at the given address instead of on disk")
	rootCommand.PersistentFlags().StringVar(&cpuprofile, "cpuprofile", "", "Write a CPU profile to the specified file in the save folder")
	rootCommand.PersistentFlags().StringVar(&memprofile, "memprofile", "", "Write a memory profile to the specified file in the save folder")
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")
	rootCommand.PersistentFlags().IntVar(&visualize, "visualize", 0, "Print the world state every N time steps (0 disables)")

	// adding the subcommands here
	rootCommand.AddCommand(SuiteCommand())
	rootCommand.AddCommand(TestCommand())
	rootCommand.AddCommand(WorldsCommand())
	for _, e := range worlds.Registry() {
		rootCommand.AddCommand(worldCommand(e))
	}
	return rootCommand
}

func lifespan() int {
	return lifespanK * 1000
}
