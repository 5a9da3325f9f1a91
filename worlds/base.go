package worlds

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"
)

// DefaultLifespan is the number of time steps a world remains active
// when no lifespan is given.
const DefaultLifespan = 10000

// BaseWorld carries the state common to all the test worlds.
// Individual worlds embed it and implement Reset and Step.
type BaseWorld struct {
	name     string
	nameLong string
	lifespan int
	// Starting at -1 allows for an initialization pass.
	timestep   int
	numSensors int
	numActions int

	Rand *rand.Rand
}

func newBaseWorld(name, nameLong string, lifespan, numSensors, numActions int) BaseWorld {
	if lifespan <= 0 {
		lifespan = DefaultLifespan
	}
	return BaseWorld{
		name:       name,
		nameLong:   nameLong,
		lifespan:   lifespan,
		timestep:   -1,
		numSensors: numSensors,
		numActions: numActions,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *BaseWorld) Name() string {
	return b.name
}

func (b *BaseWorld) LongName() string {
	return b.nameLong
}

func (b *BaseWorld) SensorCount() int {
	return b.numSensors
}

func (b *BaseWorld) ActionCount() int {
	return b.numActions
}

func (b *BaseWorld) Timestep() int {
	return b.timestep
}

func (b *BaseWorld) Lifespan() int {
	return b.lifespan
}

// Alive reports whether the world has come to an end
func (b *BaseWorld) Alive() bool {
	return b.timestep < b.lifespan
}

// Reseed replaces the world's random source, for reproducible runs
func (b *BaseWorld) Reseed(seed int64) {
	b.Rand = rand.New(rand.NewSource(seed))
}

func (b *BaseWorld) resetBase() {
	b.timestep = -1
}

// checkAction verifies the length of an incoming action vector
func (b *BaseWorld) checkAction(action []float64) error {
	if len(action) != b.numActions {
		return fmt.Errorf("world %s expects %d action commands, got %d",
			b.name, b.numActions, len(action))
	}
	return nil
}

// roundActions rounds each action command to the nearest integer
func roundActions(action []float64) []float64 {
	rounded := make([]float64, len(action))
	for i, a := range action {
		rounded[i] = math.Round(a)
	}
	return rounded
}

// binarizeActions maps every nonzero action command to one
func binarizeActions(action []float64) []float64 {
	binary := make([]float64, len(action))
	for i, a := range action {
		if a != 0 {
			binary[i] = 1
		}
	}
	return binary
}

// wrap folds v into [0, size) the way the original worlds do,
// including negative values
func wrap(v float64, size float64) float64 {
	return v - size*math.Floor(v/size)
}

// stateImage renders a one dimensional world state as an ASCII strip:
// position marker, separator, then the attempted actions
func stateImage(w io.Writer, positions int, position int, action []float64, extra string) {
	image := make([]byte, positions+2+len(action))
	for i := range image {
		image[i] = '.'
	}
	if position >= 0 && position < positions {
		image[position] = 'O'
	}
	image[positions] = '|'
	image[positions+1] = '|'
	for i, a := range action {
		if a > 0.1 {
			image[positions+2+i] = 'x'
		}
	}
	fmt.Fprintln(w, string(image)+extra)
}
