package benchmarks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/becca-rl/beccatest/store"
	"github.com/becca-rl/beccatest/worlds"
)

func withFlags(t *testing.T, dir string) {
	t.Helper()
	saveDir = dir
	brainName = "q"
	lifespanK = 1
	restore = false
	redisAddr = ""
	monitorAddr = ""
	seed = 7
	t.Cleanup(func() {
		saveDir = "results"
		brainName = "q"
		lifespanK = 10
		restore = false
		seed = 0
	})
}

func TestNewBrainRestoresCheckpoint(t *testing.T) {
	withFlags(t, t.TempDir())
	restore = true

	st, err := openStore()
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	world := worlds.NewVacuum(10)

	// Without a checkpoint a fresh brain is handed out.
	brain, err := newBrain(ctx, st, world)
	require.NoError(t, err)
	require.NotNil(t, brain)

	// Teach a brain, checkpoint it, and restore it into a new one.
	reward := float64(0)
	for i := 0; i < 20; i++ {
		action := brain.Step([]float64{1, 0}, reward)
		reward = action[1] - action[0]
	}
	checkpoint(ctx, st, world.Name(), brain)

	data, err := st.Load(ctx, store.Key(brainName, world.Name()))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	restored, err := newBrain(ctx, st, world)
	require.NoError(t, err)
	require.NotNil(t, restored)
}

func TestSuiteCheckpointsEveryWorld(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the full decathlon")
	}
	withFlags(t, t.TempDir())

	require.NoError(t, runSuite(context.Background()))

	st, err := openStore()
	require.NoError(t, err)
	defer st.Close()

	for _, e := range worlds.Decathlon() {
		data, err := st.Load(context.Background(), store.Key(brainName, e.Name))
		require.NoError(t, err, "no checkpoint for %s", e.Name)
		require.NotEmpty(t, data)
	}
}
