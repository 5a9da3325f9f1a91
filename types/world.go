package types

import "io"

// World is a benchmark environment that a brain interacts with.
// Worlds exchange flat float vectors: the brain receives sensor
// values and a reward, and answers with action commands.
type World interface {
	// Name of the world, used for registry lookup and reports
	Name() string
	// Number of sensor values returned by Step
	SensorCount() int
	// Number of action commands expected by Step
	ActionCount() int
	// Reset returns the world to its initial state and
	// returns the initial sensor values
	Reset() []float64
	// Step advances the world by one time step
	Step(action []float64) (sensors []float64, reward float64, err error)
	// Number of time steps the world has been through
	Timestep() int
	// Alive reports whether the world has reached the end of its lifespan
	Alive() bool
	// Visualize writes an ASCII rendering of the world state
	Visualize(w io.Writer)
}

// Brain drives a world. It observes sensors and reward and decides
// on the next action.
type Brain interface {
	// Step consumes the sensor values and the reward of the previous
	// action and returns the next action command vector
	Step(sensors []float64, reward float64) []float64
	// Reset discards everything the brain has learned
	Reset()
	// Snapshot serializes the learned state for checkpointing.
	// Brains with nothing to persist return (nil, nil).
	Snapshot() ([]byte, error)
	// Restore loads a previously taken snapshot
	Restore(data []byte) error
}
