package benchmarks

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"runtime/pprof"

	"github.com/becca-rl/beccatest/logging"
)

func startProfiling() func() {
	logger := logging.With("profiling")
	stopCPU := func() {}

	// Profiles land in the save folder, which may not exist yet.
	if cpuprofile != "" || memprofile != "" {
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			logger.Fatal().Err(err).Msg("could not create save folder")
		}
	}

	if cpuprofile != "" {
		cpuProfPath := path.Join(saveDir, cpuprofile)
		fmt.Println("Profiling CPU to ", cpuProfPath)
		f, err := os.Create(cpuProfPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		stopCPU = func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("View at the command line with")
			fmt.Println(" > go tool pprof", cpuProfPath)
		}
	}

	return func() {
		stopCPU()
		if memprofile != "" {
			memProfPath := path.Join(saveDir, memprofile)
			fmt.Println("Profiling Memory to ", memProfPath)
			f, err := os.Create(memProfPath)
			if err != nil {
				logger.Fatal().Err(err).Msg("could not create memory profile")
			}
			defer f.Close()
			runtime.GC() // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				logger.Fatal().Err(err).Msg("could not write memory profile")
			}
		}
	}
}
