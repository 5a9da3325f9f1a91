package brains

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireOneHot(t *testing.T, action []float64, n int) {
	t.Helper()
	require.Len(t, action, n)
	sum := float64(0)
	for _, v := range action {
		require.Contains(t, []float64{0, 1}, v)
		sum += v
	}
	require.Equal(t, float64(1), sum)
}

func TestNewBrain(t *testing.T) {
	for _, name := range []string{"q", "softmax", "random", ""} {
		brain, err := New(name, 4)
		require.NoError(t, err)
		requireOneHot(t, brain.Step([]float64{1, 0}, 0), 4)
	}

	_, err := New("clairvoyant", 4)
	require.Error(t, err)
}

func TestQLearnerPrefersRewardedAction(t *testing.T) {
	brain := NewQLearner(2)
	sensors := []float64{1}

	// A two-armed bandit: action 0 pays off, action 1 does not.
	reward := float64(0)
	for i := 0; i < 500; i++ {
		action := brain.Step(sensors, reward)
		if action[0] == 1 {
			reward = 1
		} else {
			reward = -1
		}
	}

	brain.epsilon = 0
	action := brain.Step(sensors, reward)
	require.Equal(t, float64(1), action[0])
}

func TestQLearnerSnapshotRoundTrip(t *testing.T) {
	brain := NewQLearner(2)
	sensors := []float64{1}
	reward := float64(0)
	for i := 0; i < 50; i++ {
		action := brain.Step(sensors, reward)
		reward = action[0] - action[1]
	}

	data, err := brain.Snapshot()
	require.NoError(t, err)

	restored := NewQLearner(2)
	require.NoError(t, restored.Restore(data))
	state := stateKey(sensors)
	for _, a := range actionKeys(2) {
		require.Equal(t, brain.qTable.Get(state, a, 0), restored.qTable.Get(state, a, 0))
		require.Equal(t, brain.visits.Get(state, a, 0), restored.visits.Get(state, a, 0))
	}
}

func TestQLearnerResetForgets(t *testing.T) {
	brain := NewQLearner(2)
	sensors := []float64{1}
	for i := 0; i < 10; i++ {
		brain.Step(sensors, 1)
	}
	brain.Reset()
	require.False(t, brain.qTable.HasState(stateKey(sensors)))
}

func TestSoftmaxProducesValidActions(t *testing.T) {
	brain := NewSoftmax(6)
	sensors := []float64{0, 1, 0}
	reward := float64(0)
	for i := 0; i < 100; i++ {
		requireOneHot(t, brain.Step(sensors, reward), 6)
		reward = 0.5
	}
}

func TestSoftmaxSnapshotRoundTrip(t *testing.T) {
	brain := NewSoftmax(3)
	sensors := []float64{1, 0}
	for i := 0; i < 20; i++ {
		brain.Step(sensors, 1)
	}

	data, err := brain.Snapshot()
	require.NoError(t, err)

	restored := NewSoftmax(3)
	require.NoError(t, restored.Restore(data))
	state := stateKey(sensors)
	for _, a := range actionKeys(3) {
		require.Equal(t, brain.qTable.Get(state, a, 0), restored.qTable.Get(state, a, 0))
	}
}

func TestRandomBrain(t *testing.T) {
	brain := NewRandom(5)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		action := brain.Step(nil, 0)
		requireOneHot(t, action, 5)
		for j, v := range action {
			if v == 1 {
				seen[j] = true
			}
		}
	}
	// Uniform selection visits every arm over 200 draws.
	require.Len(t, seen, 5)

	data, err := brain.Snapshot()
	require.NoError(t, err)
	require.Nil(t, data)
}
