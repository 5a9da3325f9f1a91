package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/becca-rl/beccatest/brains"
	"github.com/becca-rl/beccatest/logging"
	"github.com/becca-rl/beccatest/monitor"
	"github.com/becca-rl/beccatest/store"
	"github.com/becca-rl/beccatest/types"
	"github.com/becca-rl/beccatest/worlds"
)

// openStore picks the checkpoint backend from the flags
func openStore() (store.Store, error) {
	if redisAddr != "" {
		return store.NewRedisStore(redisAddr), nil
	}
	return store.NewFileStore(saveDir)
}

// newBrain builds the configured brain for a world, restoring its
// last checkpoint when asked to
func newBrain(ctx context.Context, st store.Store, world types.World) (types.Brain, error) {
	logger := logging.With("store")
	brain, err := brains.New(brainName, world.ActionCount())
	if err != nil {
		return nil, err
	}
	if restore {
		data, err := st.Load(ctx, store.Key(brainName, world.Name()))
		if errors.Is(err, store.ErrNotFound) {
			logger.Debug().Str("world", world.Name()).Msg("no checkpoint to restore")
			return brain, nil
		}
		if err != nil {
			return nil, err
		}
		if err := brain.Restore(data); err != nil {
			return nil, err
		}
		logger.Info().Str("world", world.Name()).Msg("restored brain checkpoint")
	}
	return brain, nil
}

// checkpoint saves the brain state after a run
func checkpoint(ctx context.Context, st store.Store, world string, brain types.Brain) {
	data, err := brain.Snapshot()
	if err != nil || data == nil {
		return
	}
	if err := st.Save(ctx, store.Key(brainName, world), data); err != nil {
		logger := logging.With("store")
		logger.Error().Err(err).Str("world", world).Msg("saving brain checkpoint")
	}
}

// startMonitor starts the live status server when configured and
// returns its progress hook
func startMonitor(ctx context.Context) types.ProgressFunc {
	if monitorAddr == "" {
		return nil
	}
	m := monitor.New(monitorAddr)
	m.Start(ctx)
	return m.Update
}

// runSingleWorld runs one world for the configured lifespan and
// reports its performance the way the original runner does.
func runSingleWorld(ctx context.Context, entry worlds.Entry) error {
	stopProfiling := startProfiling()
	defer stopProfiling()

	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating save folder: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	world := entry.New(lifespan())
	if seed != 0 {
		if sw, ok := world.(interface{ Reseed(int64) }); ok {
			sw.Reseed(seed)
		}
	}
	fmt.Println("Entering", world.Name())

	brain, err := newBrain(ctx, st, world)
	if err != nil {
		return err
	}

	analyzer := types.NewRewardAnalyzer(100)
	result := types.RunWorld(world, brain, &types.RunConfig{
		Context:        ctx,
		Analyzers:      []types.Analyzer{analyzer},
		RecordTrace:    true,
		SavePath:       saveDir,
		VisualizeEvery: visualize,
		OnProgress:     startMonitor(ctx),
	})
	if result.Err != nil {
		return result.Err
	}

	checkpoint(ctx, st, world.Name(), brain)
	types.RewardPlotter(path.Join(saveDir, "plots"))(0,
		[]string{world.Name()}, []types.DataSet{analyzer.DataSet()})

	seconds := result.Duration.Seconds()
	fmt.Printf("Performance is: %.3f\n", result.Performance)
	fmt.Printf("%s ran in %.2f seconds (%.2f minutes),\n", world.Name(), seconds, seconds/60)
	if result.Timesteps > 0 {
		perStep := seconds / float64(result.Timesteps)
		fmt.Printf("an average of %.2g seconds (%.2g ms) per time step.\n", perStep, 1000*perStep)
	}
	return nil
}

// runSuite runs the full decathlon and tabulates the results
func runSuite(ctx context.Context) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	suite := types.NewSuite(&types.SuiteConfig{
		Runs:         runs,
		SavePath:     saveDir,
		RecordTraces: true,
		OnProgress:   startMonitor(ctx),
	})
	suite.AddAnalysis("Reward", types.NewRewardAnalyzer(100),
		types.RewardPlotter(path.Join(saveDir, "plots")))

	for _, e := range worlds.Decathlon() {
		entry := e
		suite.AddEntry(types.SuiteEntry{
			Name:   entry.Name,
			Weight: entry.Weight,
			NewWorld: func() types.World {
				w := entry.New(lifespan())
				if seed != 0 {
					if sw, ok := w.(interface{ Reseed(int64) }); ok {
						sw.Reseed(seed)
					}
				}
				return w
			},
		})
	}

	logger := logging.With("suite")
	// The brains of the latest suite run, kept so they can be
	// checkpointed once their worlds finish.
	suiteBrains := make(map[string]types.Brain)
	suite.Run(ctx, func(w types.World) types.Brain {
		brain, err := newBrain(ctx, st, w)
		if err != nil {
			logger.Fatal().Err(err).Msg("building brain")
		}
		suiteBrains[w.Name()] = brain
		return brain
	})
	for world, brain := range suiteBrains {
		checkpoint(ctx, st, world, brain)
	}
	return nil
}
