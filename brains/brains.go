// Package brains provides the baseline brains that drive the test
// worlds: a non-learning random brain and two tabular Q-learning
// brains. They set the bar that any full learning engine run against
// the suite should clear.
package brains

import (
	"fmt"

	"github.com/becca-rl/beccatest/types"
)

// New constructs a brain by name for a world with the given number
// of action commands. Known names are "q", "softmax" and "random".
func New(name string, numActions int) (types.Brain, error) {
	switch name {
	case "q", "":
		return NewQLearner(numActions), nil
	case "softmax":
		return NewSoftmax(numActions), nil
	case "random":
		return NewRandom(numActions), nil
	}
	return nil, fmt.Errorf("unknown brain %q", name)
}
