package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/becca-rl/beccatest/util"
)

// SuiteEntry is one world of the benchmark suite. Some worlds are
// harder than others, so each carries a weight for the overall score.
type SuiteEntry struct {
	Name     string
	Weight   float64
	NewWorld func() World
}

// SuiteConfig contains the configuration for a suite run
type SuiteConfig struct {
	Runs int // number of suite repetitions

	SavePath string        // path to store the results
	Timeout  time.Duration // timeout for each world

	RecordTraces bool

	// OnProgress is handed to every run for live monitoring
	OnProgress ProgressFunc
}

// SuiteResult is the outcome of one suite run
type SuiteResult struct {
	Results  []*Result `json:"results"`
	Score    float64   `json:"score"`
	Duration float64   `json:"duration_seconds"`
}

// Suite runs the full set of benchmark worlds against a brain and
// tabulates their performance. The traces of each world are analyzed
// and the resulting datasets compared.
type Suite struct {
	entries     []SuiteEntry
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	config      *SuiteConfig
}

// NewSuite creates a suite instance
func NewSuite(config *SuiteConfig) *Suite {
	if config.Runs == 0 {
		config.Runs = 1
	}
	if config.SavePath != "" {
		os.MkdirAll(config.SavePath, os.ModePerm)
	}
	return &Suite{
		entries:     make([]SuiteEntry, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		config:      config,
	}
}

// AddAnalysis adds an analyzer and comparator to the suite
func (s *Suite) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	s.analyzers[name] = analyzer
	s.comparators[name] = comparator
}

// AddEntry adds a world to the suite
func (s *Suite) AddEntry(e SuiteEntry) {
	s.entries = append(s.entries, e)
}

// Run the suite. The newBrain function supplies a fresh brain for
// each world.
func (s *Suite) Run(ctx context.Context, newBrain func(World) Brain) []*SuiteResult {
	suiteResults := make([]*SuiteResult, 0, s.config.Runs)

	for run := 0; run < s.config.Runs; run++ {
		fmt.Printf("Suite run %d\n", run+1)
		start := time.Now()

		datasets := make(map[string][]DataSet)
		for name := range s.analyzers {
			datasets[name] = make([]DataSet, len(s.entries))
		}

		names := make([]string, len(s.entries))
		results := make([]*Result, len(s.entries))

		for i, e := range s.entries {
			select {
			case <-ctx.Done():
				return suiteResults
			default:
			}

			rConfig := &RunConfig{
				Context:     ctx,
				Timeout:     s.config.Timeout,
				RecordTrace: s.config.RecordTraces,
				SavePath:    s.config.SavePath,
				OnProgress:  s.config.OnProgress,
			}
			for _, a := range s.analyzers {
				rConfig.Analyzers = append(rConfig.Analyzers, a)
			}

			world := e.NewWorld()
			results[i] = RunWorld(world, newBrain(world), rConfig)
			names[i] = e.Name

			for name, a := range s.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
		}

		for name, comp := range s.comparators {
			comp(run, names, datasets[name])
		}

		suiteResult := &SuiteResult{
			Results:  results,
			Score:    s.Score(results),
			Duration: time.Since(start).Seconds(),
		}
		suiteResults = append(suiteResults, suiteResult)

		s.printScores(suiteResult)
		if s.config.SavePath != "" {
			s.recordResult(run, suiteResult)
		}
	}
	return suiteResults
}

// Score computes the weighted mean performance over the suite
func (s *Suite) Score(results []*Result) float64 {
	scores := make([]float64, len(results))
	weights := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Performance
		weights[i] = s.entries[i].Weight
	}
	return stat.Mean(scores, weights)
}

func (s *Suite) printScores(sr *SuiteResult) {
	fmt.Println("Individual test world scores:")
	for _, r := range sr.Results {
		status := "pass"
		if !r.Passed() {
			status = "FAIL"
		}
		fmt.Printf("    %8.3f  %-16s [%s]\n", r.Performance, r.World, status)
	}
	fmt.Printf("Weighted test suite score: %.3f\n", sr.Score)
	fmt.Printf("Test suite completed in %.2f seconds (%.2f minutes)\n",
		sr.Duration, sr.Duration/60)
}

func (s *Suite) recordResult(run int, sr *SuiteResult) {
	bs, err := json.MarshalIndent(sr, "", "  ")
	if err != nil {
		panic(err)
	}
	resultsPath := path.Join(s.config.SavePath, fmt.Sprintf("suite_results_%d.json", run))
	if err := util.WriteToFile(resultsPath, string(bs)); err != nil {
		panic(err)
	}
}
