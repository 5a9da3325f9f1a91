package worlds

import (
	"io"
	"math"

	"github.com/becca-rl/beccatest/types"
)

// Grid1D is the one dimensional grid world.
//
// The brain steps forward and backward along a nine-position line.
// The fourth position is rewarded and the ninth position is punished.
// There is also a slight punishment for effort expended in taking
// actions. Occasionally the brain gets involuntarily bumped to a
// random position on the line. This is intended to be a
// simple-as-possible task for troubleshooting.
// Optimal performance is a reward of about 0.90 per time step.
type Grid1D struct {
	BaseWorld

	// EnergyCost is the punishment per position step taken
	EnergyCost float64
	// JumpFraction is the fraction of time steps on which the
	// agent jumps to a random position
	JumpFraction float64

	// worldState is the actual position of the agent in the world.
	// This can be fractional.
	worldState float64
	// simpleState is the nearest integer position of the agent.
	simpleState int
	energy      float64
	action      []float64
}

var _ types.World = &Grid1D{}

func NewGrid1D(lifespan int) *Grid1D {
	return &Grid1D{
		BaseWorld:    newBaseWorld("grid_1D", "one dimensional grid world", lifespan, 9, 8),
		EnergyCost:   1.0 / 100.0,
		JumpFraction: 0.1,
	}
}

func (g *Grid1D) Reset() []float64 {
	g.resetBase()
	g.worldState = 0
	g.simpleState = 0
	g.energy = 0
	g.action = make([]float64, g.numActions)
	return make([]float64, g.numSensors)
}

func (g *Grid1D) Step(action []float64) ([]float64, float64, error) {
	if err := g.checkAction(action); err != nil {
		return nil, 0, err
	}
	g.action = roundActions(action)
	g.timestep++

	// The step size is a combination of the action commands:
	// actions 0-3 step 1 to 4 positions to the right and
	// actions 4-7 step 1 to 4 positions to the left.
	stepSize := g.action[0] +
		g.action[1]*2 +
		g.action[2]*3 +
		g.action[3]*4 -
		g.action[4] -
		g.action[5]*2 -
		g.action[6]*3 -
		g.action[7]*4
	// Action cost is an approximation of metabolic energy,
	// proportional to the number of steps attempted.
	g.energy = g.action[0] +
		g.action[1]*2 +
		g.action[2]*3 +
		g.action[3]*4 +
		g.action[4] +
		g.action[5]*2 +
		g.action[6]*3 +
		g.action[7]*4

	g.worldState += stepSize

	// At random intervals, jump to a random position in the world.
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
	return sensors, g.assignReward(sensors), nil
}

func (g *Grid1D) assignReward(sensors []float64) float64 {
	reward := float64(0)
	reward -= sensors[8]
	reward += sensors[3]
	// Punish actions just a little
	reward -= g.energy * g.EnergyCost
	return math.Max(reward, -1)
}

func (g *Grid1D) Visualize(w io.Writer) {
	stateImage(w, g.numSensors, g.simpleState, g.action, "")
}
