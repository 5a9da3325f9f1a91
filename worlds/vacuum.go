package worlds

import (
	"io"
	"math"

	"github.com/becca-rl/beccatest/types"
)

// Vacuum is the vacuum cleaner world, inspired by Russell and
// Norvig's two-room house. Room A is on the left and room B on the
// right. Moving into the other room earns a reward of 1 (as soon as
// one leaves a clean room, it becomes instantly dirty again) and
// running into a wall earns a stiff -1. The optimal policy is to
// alternate Left and Right, which makes this world a
// simple-as-possible debugging target.
type Vacuum struct {
	BaseWorld

	state  int
	action []float64
}

var _ types.World = &Vacuum{}

func NewVacuum(lifespan int) *Vacuum {
	return &Vacuum{
		BaseWorld: newBaseWorld("vacuum", "vacuum cleaner world", lifespan, 2, 2),
	}
}

func (v *Vacuum) Reset() []float64 {
	v.resetBase()
	v.state = 0
	v.action = make([]float64, v.numActions)
	return make([]float64, v.numSensors)
}

func (v *Vacuum) Step(action []float64) ([]float64, float64, error) {
	if err := v.checkAction(action); err != nil {
		return nil, 0, err
	}
	v.action = roundActions(action)
	v.timestep++

	reward := float64(0)
	oldState := v.state
	if v.action[0] != 0 {
		v.state--
	}
	if v.action[1] != 0 {
		v.state++
	}
	// Check for collisions.
	if v.state == -1 {
		reward = -1
		v.state = 0
	}
	if v.state == 2 {
		reward = -1
		v.state = 1
	}
	// Check for a room change.
	if math.Abs(float64(v.state-oldState)) == 1 {
		reward = 1
	}

	sensors := make([]float64, v.numSensors)
	sensors[v.state] = 1
	return sensors, reward, nil
}

func (v *Vacuum) Visualize(w io.Writer) {
	stateImage(w, v.numSensors, v.state, v.action, "")
}
