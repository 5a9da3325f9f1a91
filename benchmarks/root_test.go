package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandWiresWorldSubcommands(t *testing.T) {
	root := GetRootCommand()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"suite", "test", "worlds", "grid_1D", "image_2D", "fruit", "vacuum"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestLifespanFlagIsInThousands(t *testing.T) {
	lifespanK = 8
	defer func() { lifespanK = 10 }()
	require.Equal(t, 8000, lifespan())
}
