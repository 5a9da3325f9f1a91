package benchmarks

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfilingCreatesSaveFolder(t *testing.T) {
	// The save folder does not exist until a run creates it, and
	// profiling must not depend on that having happened yet.
	saveDir = path.Join(t.TempDir(), "fresh", "results")
	cpuprofile = "cpu.pprof"
	memprofile = "mem.pprof"
	t.Cleanup(func() {
		saveDir = "results"
		cpuprofile = ""
		memprofile = ""
	})

	stop := startProfiling()
	stop()

	for _, name := range []string{"cpu.pprof", "mem.pprof"} {
		info, err := os.Stat(path.Join(saveDir, name))
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}
