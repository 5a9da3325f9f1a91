package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Generic DataSet that contains information after processing a trace
type DataSet interface{}

// Analyzer compresses the information in a trace to a DataSet
type Analyzer interface {
	// Run number, world name, trace
	Analyze(int, string, *Trace)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer
	Reset()
}

// Comparator differentiates between datasets with associated names
// run, world names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(int, []string, []DataSet) {}
}

// RewardAnalyzer bins the reward trace into fixed windows and keeps
// the mean reward of each window as a learning curve
type RewardAnalyzer struct {
	window int
	curve  []float64
}

var _ Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer(window int) *RewardAnalyzer {
	if window <= 0 {
		window = 100
	}
	return &RewardAnalyzer{window: window}
}

func (r *RewardAnalyzer) Analyze(_ int, _ string, trace *Trace) {
	r.curve = trace.Curve(r.window)
}

func (r *RewardAnalyzer) DataSet() DataSet {
	return r.curve
}

func (r *RewardAnalyzer) Reset() {
	r.curve = nil
}

// RewardPlotter plots the learning curves of the compared worlds
// to a png file under plotPath
func RewardPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Reward per time step"
		p.X.Label.Text = "Window"
		p.Y.Label.Text = "Mean reward"
		for i := 0; i < len(names); i++ {
			curve, ok := ds[i].([]float64)
			if !ok || len(curve) == 0 {
				continue
			}
			points := make(plotter.XYs, len(curve))
			for j, v := range curve {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			fmt.Printf("Final mean reward: %.3f for world: %s\n", curve[len(curve)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_reward.png"))
	}
}
