package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/becca-rl/beccatest/worlds"
)

// WorldsCommand lists the registered worlds
func WorldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "worlds",
		Short: "List the available test worlds",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Index  World            Weight  Suite")
			for _, e := range worlds.Registry() {
				suite := ""
				if e.Decathlon {
					suite = "decathlon"
				}
				fmt.Printf("%5d  %-16s %6.0f  %s\n", e.Index, e.Name, e.Weight, suite)
			}
		},
	}
}

// worldCommand builds the subcommand that runs a single world
func worldCommand(entry worlds.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   entry.Name,
		Short: fmt.Sprintf("Run the %s world", entry.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingleWorld(cmd.Context(), entry)
		},
	}
}
