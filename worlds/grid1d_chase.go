package worlds

import (
	"fmt"
	"io"

	"github.com/becca-rl/beccatest/types"
)

// Grid1DChase is the one dimensional grid world with a moving target.
//
// The brain steps forward and backward along a line. Only the target
// position is rewarded, and each time the brain reaches it, the
// target jumps elsewhere. Doing well requires responding to sensory
// information rather than memorizing a fixed goal.
type Grid1DChase struct {
	BaseWorld

	// Size is the number of positions in the one dimensional grid
	Size int
	// EnergyCost is the punishment per position step taken
	EnergyCost float64

	position       int
	targetPosition int
	energy         float64
	reward         float64
	action         []float64
}

var _ types.World = &Grid1DChase{}

func NewGrid1DChase(lifespan int) *Grid1DChase {
	size := 7
	return &Grid1DChase{
		BaseWorld: newBaseWorld("grid_1D_chase", "one dimensional chase grid world",
			lifespan, size+2*(size-1), 2*(size-1)),
		Size:       size,
		EnergyCost: 1e-2,
	}
}

func (g *Grid1DChase) Reset() []float64 {
	g.resetBase()
	g.position = 2
	g.targetPosition = 1
	g.energy = 0
	g.reward = 0
	g.action = make([]float64, g.numActions)
	return make([]float64, g.numSensors)
}

func (g *Grid1DChase) Step(action []float64) ([]float64, float64, error) {
	if err := g.checkAction(action); err != nil {
		return nil, 0, err
	}
	g.action = roundActions(action)
	g.timestep++

	// Actions 0 through size-2 step 1 to size-1 positions to the
	// right, the rest step 1 to size-1 positions to the left.
	stepSize := float64(0)
	g.energy = 0
	for i := 0; i < g.Size-1; i++ {
		scale := float64(i + 1)
		stepSize += g.action[i] * scale
		stepSize -= g.action[g.Size-1+i] * scale
		g.energy += g.action[i] * scale
		g.energy += g.action[g.Size-1+i] * scale
	}

	g.position += int(stepSize)
	if g.position > g.Size-1 {
		g.position = g.Size - 1
	}
	if g.position < 0 {
		g.position = 0
	}

	g.assignReward()
	g.moveTarget()

	sensors := make([]float64, g.numSensors)
	// Sense the agent's presence in each bin.
	sensors[g.position] = 1
	// Sense the relative distance to the target.
	distance := g.position - g.targetPosition
	if distance < 0 {
		sensors[g.Size-1-distance] = 1
	} else {
		sensors[2*(g.Size-1)+distance] = 1
	}
	return sensors, g.reward, nil
}

// moveTarget moves the target to a position not already occupied
func (g *Grid1DChase) moveTarget() {
	for g.targetPosition == g.position {
		g.targetPosition = g.Rand.Intn(g.Size)
	}
}

func (g *Grid1DChase) assignReward() {
	g.reward = 0
	if g.position == g.targetPosition {
		g.reward += 1
	}
	// Punish actions just a little
	g.reward -= g.energy * g.EnergyCost
}

func (g *Grid1DChase) Visualize(w io.Writer) {
	image := make([]byte, g.Size+2+g.numActions)
	for i := range image {
		image[i] = '.'
	}
	image[g.position] = 'O'
	image[g.targetPosition] = '+'
	image[g.Size] = '|'
	image[g.Size+1] = '|'
	for i, a := range g.action {
		if a > 0.1 {
			image[g.Size+2+i] = 'x'
		}
	}
	fmt.Fprintf(w, "%s   %d time steps\n", string(image), g.timestep)
}
