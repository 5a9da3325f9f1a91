package brains

import (
	"math/rand"
	"time"

	"github.com/becca-rl/beccatest/types"
)

// Random picks a primitive action uniformly at random every step.
// It learns nothing and serves as the floor that learning brains
// are compared against.
type Random struct {
	numActions int
	rand       *rand.Rand
}

var _ types.Brain = &Random{}

func NewRandom(numActions int) *Random {
	return &Random{
		numActions: numActions,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *Random) Step(_ []float64, _ float64) []float64 {
	return oneHot(r.numActions, r.rand.Intn(r.numActions))
}

func (r *Random) Reset() {}

func (r *Random) Snapshot() ([]byte, error) {
	return nil, nil
}

func (r *Random) Restore(_ []byte) error {
	return nil
}
