package worlds

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid1DChaseCatchesTarget(t *testing.T) {
	w := NewGrid1DChase(100)
	w.Reseed(42)
	sensors := w.Reset()
	require.Len(t, sensors, 19)
	require.Equal(t, 12, w.ActionCount())

	// The agent starts one position to the right of the target, so
	// a single step left catches it. The target then jumps away.
	sensors, reward, err := w.Step(action(12, w.Size-1))
	require.NoError(t, err)
	require.InDelta(t, 1-w.EnergyCost, reward, 1e-9)
	require.Equal(t, float64(1), sensors[1])
	require.NotEqual(t, w.position, w.targetPosition)
}

func TestGrid1DChaseDistanceSensors(t *testing.T) {
	w := NewGrid1DChase(100)
	w.Reseed(42)
	w.Reset()

	sensors, _, err := w.Step(action(12))
	require.NoError(t, err)

	// Exactly one position sensor and one distance sensor are on.
	on := 0
	for _, v := range sensors {
		if v == 1 {
			on++
		}
	}
	require.Equal(t, 2, on)

	distance := w.position - w.targetPosition
	if distance < 0 {
		require.Equal(t, float64(1), sensors[w.Size-1-distance])
	} else {
		require.Equal(t, float64(1), sensors[2*(w.Size-1)+distance])
	}
}

func TestFruitRewardsAppropriateAction(t *testing.T) {
	w := NewFruit(100)
	w.Reseed(42)
	require.Len(t, w.Reset(), 4)

	eat := action(2, 0)
	discard := action(2, 1)

	for i := 0; i < 20; i++ {
		right := discard
		if w.Edible {
			right = eat
		}
		_, reward, err := w.Step(right)
		require.NoError(t, err)
		require.Equal(t, float64(1), reward)
	}
}

func TestFruitPunishesWrongAction(t *testing.T) {
	w := NewFruit(100)
	w.Reseed(42)
	w.Reset()

	wrong := action(2, 0)
	if w.Edible {
		wrong = action(2, 1)
	}
	_, reward, err := w.Step(wrong)
	require.NoError(t, err)
	require.Equal(t, float64(-0.9), reward)
}

func TestFruitPunishesInaction(t *testing.T) {
	w := NewFruit(100)
	w.Reseed(42)
	w.Reset()

	before := []int{w.Size, w.Color}
	_, reward, err := w.Step(action(2))
	require.NoError(t, err)
	require.Equal(t, float64(-0.1), reward)
	// Doing nothing leaves the same fruit on offer.
	require.Equal(t, before, []int{w.Size, w.Color})
}

func TestFruitSensorsMatchAttributes(t *testing.T) {
	w := NewFruit(100)
	w.Reseed(42)
	w.Reset()

	sensors, _, err := w.Step(action(2, 0))
	require.NoError(t, err)
	// The returned sensors describe the next fruit to act on.
	require.Equal(t, float64(1), sensors[w.Size])
	require.Equal(t, float64(1), sensors[2+w.Color])
}

func TestVacuumAlternationIsOptimal(t *testing.T) {
	w := NewVacuum(100)
	w.Reseed(42)
	require.Len(t, w.Reset(), 2)

	right := action(2, 1)
	left := action(2, 0)

	sensors, reward, err := w.Step(right)
	require.NoError(t, err)
	require.Equal(t, float64(1), reward)
	require.Equal(t, float64(1), sensors[1])

	sensors, reward, err = w.Step(left)
	require.NoError(t, err)
	require.Equal(t, float64(1), reward)
	require.Equal(t, float64(1), sensors[0])
}

func TestVacuumPunishesWallCollisions(t *testing.T) {
	w := NewVacuum(100)
	w.Reseed(42)
	w.Reset()

	// Moving left from room A is a wall.
	sensors, reward, err := w.Step(action(2, 0))
	require.NoError(t, err)
	require.Equal(t, float64(-1), reward)
	require.Equal(t, float64(1), sensors[0])

	w.Step(action(2, 1))
	// Moving right from room B is the other wall.
	sensors, reward, err = w.Step(action(2, 1))
	require.NoError(t, err)
	require.Equal(t, float64(-1), reward)
	require.Equal(t, float64(1), sensors[1])
}

func TestWorldLifespan(t *testing.T) {
	w := NewVacuum(3)
	w.Reset()
	require.True(t, w.Alive())
	for i := 0; w.Alive(); i++ {
		_, _, err := w.Step(action(2, i%2))
		require.NoError(t, err)
	}
	require.Equal(t, 3, w.Timestep())
}

func TestVisualizeWritesSomething(t *testing.T) {
	for _, e := range Registry() {
		w := e.New(10)
		w.Reset()
		var buf bytes.Buffer
		w.Visualize(&buf)
		require.NotEmpty(t, buf.String(), "world %s", e.Name)
	}
}
