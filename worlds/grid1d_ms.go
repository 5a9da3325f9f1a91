package worlds

import (
	"io"
	"math"

	"github.com/becca-rl/beccatest/types"
)

// Grid1DMS is the multi-step variation of the one dimensional grid
// world. It is as similar as possible to grid_1D but only allows
// single-position steps, so reaching the reward requires multi-step
// planning or time-delayed reward assignment.
// Optimal performance is a reward of about 0.85 per time step.
type Grid1DMS struct {
	BaseWorld

	// EnergyCost is the punishment per position step taken
	EnergyCost float64
	// JumpFraction is the fraction of time steps on which the
	// agent jumps to a random position
	JumpFraction float64

	worldState  float64
	simpleState int
	energy      float64
	action      []float64
}

var _ types.World = &Grid1DMS{}

func NewGrid1DMS(lifespan int) *Grid1DMS {
	return &Grid1DMS{
		BaseWorld:    newBaseWorld("grid_1D_ms", "multi-step one dimensional grid world", lifespan, 9, 2),
		EnergyCost:   0.01,
		JumpFraction: 0.1,
	}
}

func (g *Grid1DMS) Reset() []float64 {
	g.resetBase()
	g.worldState = 0
	g.simpleState = 1
	g.energy = 0
	g.action = make([]float64, g.numActions)
	return make([]float64, g.numSensors)
}

func (g *Grid1DMS) Step(action []float64) ([]float64, float64, error) {
	if err := g.checkAction(action); err != nil {
		return nil, 0, err
	}
	g.action = roundActions(action)
	g.timestep++

	g.energy = g.action[0] + g.action[1]
	g.worldState += g.action[0] - g.action[1]

	// Occasionally knock the agent into a different state.
	if g.Rand.Float64() < g.JumpFraction {
		g.worldState = float64(g.numSensors) * g.Rand.Float64()
	}

	g.worldState = wrap(g.worldState, float64(g.numSensors))
	g.simpleState = int(math.Floor(g.worldState))
	if g.simpleState == 9 {
		g.simpleState = 0
	}

	sensors := make([]float64, g.numSensors)
	sensors[g.simpleState] = 1
	return sensors, g.assignReward(), nil
}

func (g *Grid1DMS) assignReward() float64 {
	reward := float64(0)
	if int(g.worldState) == 3 {
		reward += 1
	}
	if int(g.worldState) == 8 {
		reward -= 1
	}
	// Punish actions just a little
	reward -= g.energy * g.EnergyCost
	return math.Max(reward, -1)
}

func (g *Grid1DMS) Visualize(w io.Writer) {
	stateImage(w, g.numSensors, int(g.worldState), g.action, "")
}
