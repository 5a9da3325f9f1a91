package worlds

import (
	"fmt"
	"io"

	"github.com/becca-rl/beccatest/types"
)

// gridPoint is a (row, column) pair on the 2D grid
type gridPoint struct {
	Row int
	Col int
}

// Grid2D is the two dimensional grid world, a 2D extension of
// grid_1D. The agent steps around a 5 x 5 torus in which two
// positions are rewarded and two are punished, with a lesser penalty
// for each step taken. Reaching a reward can take two actions.
// Optimal performance is a reward of about 0.90 per time step.
type Grid2D struct {
	BaseWorld

	// WorldSize is the extent of the square grid
	WorldSize int
	// Targets are rewarded positions
	Targets []gridPoint
	// Obstacles are punished positions
	Obstacles []gridPoint
	// EnergyCost is the punishment per position step taken
	EnergyCost float64
	// JumpFraction is the fraction of time steps on which the
	// agent jumps to a random position
	JumpFraction float64

	row    int
	col    int
	action []float64
	// decoupled selects the grid_2D_dc sensor layout, in which rows
	// and columns are sensed separately
	decoupled bool
}

var _ types.World = &Grid2D{}

func NewGrid2D(lifespan int) *Grid2D {
	size := 5
	return &Grid2D{
		BaseWorld: newBaseWorld("grid_2D", "two dimensional grid world",
			lifespan, size*size, 8),
		WorldSize:    size,
		Targets:      []gridPoint{{1, 1}, {3, 3}},
		Obstacles:    []gridPoint{{1, 3}, {3, 1}},
		EnergyCost:   0.05,
		JumpFraction: 0.1,
	}
}

// NewGrid2DDC creates the decoupled two dimensional grid world. It is
// just like grid_2D except that the sensor array represents the row
// and the column separately rather than coupled together, which
// requires building basic sensory data into more complex features.
func NewGrid2DDC(lifespan int) *Grid2D {
	g := NewGrid2D(lifespan)
	g.name = "grid_2D_dc"
	g.nameLong = "decoupled two dimensional grid world"
	g.numSensors = g.WorldSize * 2
	g.decoupled = true
	return g
}

func (g *Grid2D) Reset() []float64 {
	g.resetBase()
	g.row = 1
	g.col = 1
	g.action = make([]float64, g.numActions)
	return make([]float64, g.numSensors)
}

func (g *Grid2D) Step(action []float64) ([]float64, float64, error) {
	if err := g.checkAction(action); err != nil {
		return nil, 0, err
	}
	g.action = binarizeActions(action)
	g.timestep++

	// Actions 0 and 1 step down and right, 2 and 3 step two
	// positions down and right, 4 through 7 mirror them in the
	// opposite direction.
	rowStep := g.action[0] - g.action[4] + 2*g.action[2] - 2*g.action[6]
	colStep := g.action[1] - g.action[5] + 2*g.action[3] - 2*g.action[7]
	energy := g.action[0] + g.action[1] +
		g.action[4] + g.action[5] +
		2*(g.action[2]+g.action[3]) +
		2*(g.action[6]+g.action[7])

	g.row += int(rowStep)
	g.col += int(colStep)

	// At random intervals, jump to a random position in the world.
	if g.Rand.Float64() < g.JumpFraction {
		g.row = g.Rand.Intn(g.WorldSize)
		g.col = g.Rand.Intn(g.WorldSize)
	}

	// Enforce the limits of the grid by looping it around.
	g.row = ((g.row % g.WorldSize) + g.WorldSize) % g.WorldSize
	g.col = ((g.col % g.WorldSize) + g.WorldSize) % g.WorldSize

	reward := float64(0)
	for _, obstacle := range g.Obstacles {
		if g.row == obstacle.Row && g.col == obstacle.Col {
			reward = -1
		}
	}
	for _, target := range g.Targets {
		if g.row == target.Row && g.col == target.Col {
			reward = 1
		}
	}
	reward -= g.EnergyCost * energy

	return g.assignSensors(), reward, nil
}

// assignSensors constructs the sensor array from the position
func (g *Grid2D) assignSensors() []float64 {
	sensors := make([]float64, g.numSensors)
	if g.decoupled {
		sensors[g.row] = 1
		sensors[g.col+g.WorldSize] = 1
	} else {
		sensors[g.row+g.col*g.WorldSize] = 1
	}
	return sensors
}

func (g *Grid2D) Visualize(w io.Writer) {
	fmt.Fprintf(w, "state (%d, %d)  action %v\n", g.row, g.col, g.action)
}
