package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/becca-rl/beccatest/util"
)

// RunConfig contains the parameters to connect a brain to a world
type RunConfig struct {
	// execution configuration
	Timeout time.Duration
	Context context.Context

	// learning period as a fraction of the lifespan. The performance
	// of a run is the mean reward of the time steps after it.
	LearnFraction float64

	Analyzers []Analyzer

	// record flags
	RecordTrace bool
	SavePath    string

	// terminal display
	ProgressEvery  int
	VisualizeEvery int

	// OnProgress is invoked periodically with the live state of the run
	OnProgress ProgressFunc
}

// ProgressFunc receives the live state of a run
type ProgressFunc func(world string, timestep, lifespan int, meanReward float64)

// Result of running a brain on a world
type Result struct {
	World       string        `json:"world"`
	Performance float64       `json:"performance"`
	Timesteps   int           `json:"timesteps"`
	Duration    time.Duration `json:"duration"`
	TimedOut    bool          `json:"timed_out"`
	Err         error         `json:"-"`
}

// Passed reports whether the run completed without error or timeout
func (r *Result) Passed() bool {
	return r.Err == nil && !r.TimedOut
}

func defaultRunConfig(config *RunConfig) *RunConfig {
	if config == nil {
		config = &RunConfig{}
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	if config.LearnFraction <= 0 || config.LearnFraction >= 1 {
		config.LearnFraction = 0.5
	}
	if config.ProgressEvery == 0 {
		config.ProgressEvery = 1000
	}
	return config
}

// RunWorld connects the brain to the world and steps them together
// until the world's lifespan runs out. The returned performance is
// the mean reward per time step of the testing period, the part of
// the lifespan after the learning period.
func RunWorld(world World, brain Brain, config *RunConfig) *Result {
	config = defaultRunConfig(config)

	ctx := config.Context
	cancel := context.CancelFunc(func() {})
	if config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
	}
	defer cancel()

	result := &Result{World: world.Name()}
	trace := NewTrace()

	start := time.Now()
	done := make(chan struct{})

	go func(result *Result, trace *Trace) {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("world %s panicked: %v", world.Name(), r)
			}
		}()

		sensors := world.Reset()
		reward := float64(0)
		var err error

		for world.Alive() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			action := brain.Step(sensors, reward)
			sensors, reward, err = world.Step(action)
			if err != nil {
				result.Err = fmt.Errorf("stepping world %s: %w", world.Name(), err)
				return
			}
			trace.Append(reward)

			timestep := world.Timestep()
			if config.VisualizeEvery > 0 && timestep%config.VisualizeEvery == 0 {
				world.Visualize(os.Stdout)
			}
			if timestep%config.ProgressEvery == 0 {
				lifespan := timestep + remainingLifespan(world)
				fmt.Printf("\rWorld:%-16s TStep:%7d  Reward(avg):%8.4f",
					world.Name(), timestep, trace.Mean(0, trace.Len()))
				if config.OnProgress != nil {
					config.OnProgress(world.Name(), timestep, lifespan, trace.Mean(0, trace.Len()))
				}
			}
		}
	}(result, trace)

	select {
	case <-ctx.Done():
		if deadline, ok := ctx.Deadline(); ok && time.Now().After(deadline) {
			result.TimedOut = true
		}
		<-done
	case <-done:
	}
	fmt.Println("")

	result.Duration = time.Since(start)
	result.Timesteps = trace.Len()
	learnSteps := int(float64(trace.Len()) * config.LearnFraction)
	result.Performance = trace.Mean(learnSteps, trace.Len())

	for _, a := range config.Analyzers {
		a.Analyze(0, world.Name(), trace)
	}
	if config.RecordTrace && config.SavePath != "" {
		recordTrace(config.SavePath, world.Name(), trace)
	}
	return result
}

// remainingLifespan estimates the number of steps left in the world.
// Worlds only expose liveness, so the estimate is refined as the run
// progresses via the Alive check granularity.
func remainingLifespan(world World) int {
	if !world.Alive() {
		return 0
	}
	if lw, ok := world.(interface{ Lifespan() int }); ok {
		return lw.Lifespan() - world.Timestep()
	}
	return 0
}

func recordTrace(savePath, worldName string, trace *Trace) {
	tracesFolder := path.Join(savePath, "traces")
	if _, err := os.Stat(tracesFolder); err != nil {
		os.MkdirAll(tracesFolder, os.ModePerm)
	}
	bs, err := json.Marshal(trace.Curve(100))
	if err != nil {
		panic(err)
	}
	util.AppendToFile(path.Join(tracesFolder, worldName+".jsonl"), string(bs))
}
