package worlds

import (
	"github.com/becca-rl/beccatest/types"
)

// Grid1DDelay is the one dimensional grid world with delayed reward.
//
// Identical to the grid_1D task except that the reward is randomly
// delayed a few time steps, which tests the brain's ability to
// ascribe reward to the correct cause.
type Grid1DDelay struct {
	*Grid1D

	// MaxDelay is the maximum number of time steps that the reward
	// may be delayed
	MaxDelay int
	// futureReward holds reward that has been earned but not yet
	// delivered. The index indicates how many time steps remain
	// before delivery.
	futureReward []float64
}

var _ types.World = &Grid1DDelay{}

func NewGrid1DDelay(lifespan int) *Grid1DDelay {
	inner := NewGrid1D(lifespan)
	inner.name = "grid_1D_delay"
	inner.nameLong = "one dimensional grid world with delay"
	return &Grid1DDelay{
		Grid1D:   inner,
		MaxDelay: 1,
	}
}

func (g *Grid1DDelay) Reset() []float64 {
	sensors := g.Grid1D.Reset()
	g.futureReward = make([]float64, g.MaxDelay)
	return sensors
}

func (g *Grid1DDelay) Step(action []float64) ([]float64, float64, error) {
	sensors, _, err := g.Grid1D.Step(action)
	if err != nil {
		return nil, 0, err
	}

	// The undelayed reward, without the floor the base world applies
	newReward := sensors[3] - sensors[8] - g.energy*g.EnergyCost

	delay := 0
	if g.MaxDelay > 1 {
		delay = g.Rand.Intn(g.MaxDelay)
	}
	g.futureReward[delay] += newReward

	// Advance the reward future by one time step
	g.futureReward = append(g.futureReward, 0)
	reward := g.futureReward[0]
	g.futureReward = g.futureReward[1:]
	return sensors, reward, nil
}
