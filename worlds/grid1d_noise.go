package worlds

import (
	"io"
	"math"

	"github.com/becca-rl/beccatest/types"
)

// Grid1DNoise is the one dimensional grid world with noise.
//
// The brain steps forward and backward along three positions on a
// line. The middle position is rewarded and the rest are punished.
// The world can also expose sensors that are pure noise distractors,
// breaking learners that implicitly assume every sensor is
// informative.
// Optimal performance is a reward of about 0.70 per time step.
type Grid1DNoise struct {
	BaseWorld

	// NumRealSensors is the number of sensors that represent position
	NumRealSensors int
	// NumNoiseSensors is the number of sensors that are pure noise
	NumNoiseSensors int
	// EnergyCost is the punishment per position step taken
	EnergyCost float64
	// JumpFraction is the fraction of time steps on which the
	// agent jumps to a random position
	JumpFraction float64

	worldState  float64
	simpleState int
	action      []float64
}

var _ types.World = &Grid1DNoise{}

func NewGrid1DNoise(lifespan int) *Grid1DNoise {
	numReal := 3
	numNoise := 0
	return &Grid1DNoise{
		BaseWorld: newBaseWorld("grid_1D_noise", "noisy one dimensional grid world",
			lifespan, numReal+numNoise, 2),
		NumRealSensors:  numReal,
		NumNoiseSensors: numNoise,
		EnergyCost:      0.01,
		JumpFraction:    0.1,
	}
}

func (g *Grid1DNoise) Reset() []float64 {
	g.resetBase()
	g.numSensors = g.NumRealSensors + g.NumNoiseSensors
	g.worldState = 0
	g.simpleState = 0
	g.action = make([]float64, g.numActions)
	return make([]float64, g.numSensors)
}

func (g *Grid1DNoise) Step(action []float64) ([]float64, float64, error) {
	if err := g.checkAction(action); err != nil {
		return nil, 0, err
	}
	g.action = binarizeActions(action)
	g.timestep++

	stepSize := g.action[0] - g.action[1]
	// An approximation of metabolic energy.
	energy := g.action[0] + g.action[1]
	g.worldState += stepSize

	// At random intervals, jump to a random position in the world.
	if g.Rand.Float64() < g.JumpFraction {
		g.worldState = float64(g.NumRealSensors) * g.Rand.Float64()
	}

	g.worldState = wrap(g.worldState, float64(g.NumRealSensors))
	g.simpleState = int(math.Floor(g.worldState))

	// Real sensors signal the presence of the current position in
	// the bin, noise sensors flip at random.
	sensors := make([]float64, g.numSensors)
	sensors[g.simpleState] = 1
	for i := g.NumRealSensors; i < g.numSensors; i++ {
		sensors[i] = math.Round(g.Rand.Float64())
	}

	reward := float64(-1)
	if g.simpleState == 1 {
		reward = 1
	}
	reward -= energy * g.EnergyCost
	return sensors, reward, nil
}

func (g *Grid1DNoise) Visualize(w io.Writer) {
	stateImage(w, g.NumRealSensors, g.simpleState, g.action, "")
}
