package worlds

import (
	"fmt"
	"io"

	"github.com/becca-rl/beccatest/types"
)

// Fruit is the fruit selection world.
//
// The robot's sensors tell it whether a piece of fruit is small or
// large and yellow or purple. A small yellow fruit is an unripe plum
// and a large purple fruit is a rotten peach; neither is good to eat.
// A small purple fruit is a ripe plum and a large yellow fruit is a
// ripe peach; both are good to eat. Succeeding requires considering
// the combination of sensors rather than each one individually,
// which is mathematically related to the XOR task.
type Fruit struct {
	BaseWorld

	// Size of the current fruit: 0 large, 1 small
	Size int
	// Color of the current fruit: 0 yellow, 1 purple
	Color int
	// Edible reports whether the current fruit is good to eat
	Edible bool

	sensors []float64
	actions []float64
	reward  float64
}

var _ types.World = &Fruit{}

func NewFruit(lifespan int) *Fruit {
	return &Fruit{
		BaseWorld: newBaseWorld("fruit", "fruit selection world", lifespan, 4, 2),
	}
}

func (f *Fruit) Reset() []float64 {
	f.resetBase()
	f.actions = make([]float64, f.numActions)
	f.reward = 0
	f.grabFruit()
	return make([]float64, f.numSensors)
}

// grabFruit draws a new piece of fruit with random attributes
func (f *Fruit) grabFruit() {
	f.Size = f.Rand.Intn(2)
	f.Color = f.Rand.Intn(2)
	f.Edible = (f.Size == 0 && f.Color == 0) || (f.Size == 1 && f.Color == 1)

	f.sensors = make([]float64, f.numSensors)
	if f.Size == 0 {
		f.sensors[0] = 1
	} else {
		f.sensors[1] = 1
	}
	if f.Color == 0 {
		f.sensors[2] = 1
	} else {
		f.sensors[3] = 1
	}
}

func (f *Fruit) Step(action []float64) ([]float64, float64, error) {
	if err := f.checkAction(action); err != nil {
		return nil, 0, err
	}
	f.timestep++
	f.actions = action

	// Figure out which action was taken.
	acted := false
	eat := false
	discard := false
	if action[0] > 0.5 {
		eat = true
		acted = true
	} else if action[1] > 0.5 {
		discard = true
		acted = true
	}

	// Check whether the appropriate action was taken. There is a
	// small punishment for doing nothing.
	f.reward = -0.1
	if (eat && f.Edible) || (discard && !f.Edible) {
		f.reward = 1
	} else if (eat && !f.Edible) || (discard && f.Edible) {
		f.reward = -0.9
	}

	if acted {
		f.grabFruit()
	}
	return f.sensors, f.reward, nil
}

func (f *Fruit) Visualize(w io.Writer) {
	// The reward shown is for the action taken on the previous fruit;
	// the sensors have already moved on to the next one.
	fmt.Fprintf(w, "%v || %v || %.2f || %d || %d || %d\n",
		f.sensors, f.actions, f.reward, f.Size, f.Color, f.timestep)
}
