package types

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

// constantWorld pays the same reward every step
type constantWorld struct {
	name     string
	lifespan int
	reward   float64
	timestep int
}

var _ World = &constantWorld{}

func (w *constantWorld) Name() string          { return w.name }
func (w *constantWorld) SensorCount() int      { return 1 }
func (w *constantWorld) ActionCount() int      { return 1 }
func (w *constantWorld) Timestep() int         { return w.timestep }
func (w *constantWorld) Alive() bool           { return w.timestep < w.lifespan }
func (w *constantWorld) Visualize(_ io.Writer) {}

func (w *constantWorld) Reset() []float64 {
	w.timestep = -1
	return []float64{0}
}

func (w *constantWorld) Step(_ []float64) ([]float64, float64, error) {
	w.timestep++
	return []float64{0}, w.reward, nil
}

func TestSuiteWeightedScore(t *testing.T) {
	suite := NewSuite(&SuiteConfig{})
	suite.AddEntry(SuiteEntry{
		Name:   "easy",
		Weight: 1,
		NewWorld: func() World {
			return &constantWorld{name: "easy", lifespan: 50, reward: 0.5}
		},
	})
	suite.AddEntry(SuiteEntry{
		Name:   "hard",
		Weight: 3,
		NewWorld: func() World {
			return &constantWorld{name: "hard", lifespan: 50, reward: 1}
		},
	})

	results := suite.Run(context.Background(), func(_ World) Brain {
		return &nullBrain{}
	})
	require.Len(t, results, 1)
	require.Len(t, results[0].Results, 2)
	// (0.5*1 + 1*3) / 4
	require.InDelta(t, 0.875, results[0].Score, 1e-9)
}

func TestSuiteRepeatsRuns(t *testing.T) {
	suite := NewSuite(&SuiteConfig{Runs: 3})
	suite.AddEntry(SuiteEntry{
		Name:   "w",
		Weight: 1,
		NewWorld: func() World {
			return &constantWorld{name: "w", lifespan: 10, reward: 1}
		},
	})

	results := suite.Run(context.Background(), func(_ World) Brain {
		return &nullBrain{}
	})
	require.Len(t, results, 3)
}

func TestSuiteRecordsResults(t *testing.T) {
	dir := t.TempDir()
	suite := NewSuite(&SuiteConfig{SavePath: dir})
	suite.AddEntry(SuiteEntry{
		Name:   "w",
		Weight: 1,
		NewWorld: func() World {
			return &constantWorld{name: "w", lifespan: 10, reward: 1}
		},
	})

	suite.Run(context.Background(), func(_ World) Brain {
		return &nullBrain{}
	})

	data, err := os.ReadFile(path.Join(dir, "suite_results_0.json"))
	require.NoError(t, err)

	var recorded SuiteResult
	require.NoError(t, json.Unmarshal(data, &recorded))
	require.Len(t, recorded.Results, 1)
	require.Equal(t, "w", recorded.Results[0].World)
	require.InDelta(t, 1, recorded.Score, 1e-9)
}

func TestSuiteComparatorsSeeEveryWorld(t *testing.T) {
	suite := NewSuite(&SuiteConfig{})
	suite.AddAnalysis("Reward", NewRewardAnalyzer(10), func(_ int, names []string, ds []DataSet) {
		require.Equal(t, []string{"a", "b"}, names)
		require.Len(t, ds, 2)
	})
	for _, name := range []string{"a", "b"} {
		n := name
		suite.AddEntry(SuiteEntry{
			Name:   n,
			Weight: 1,
			NewWorld: func() World {
				return &constantWorld{name: n, lifespan: 20, reward: 1}
			},
		})
	}

	suite.Run(context.Background(), func(_ World) Brain {
		return &nullBrain{}
	})
}
