package brains

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateKey(t *testing.T) {
	require.Equal(t, "1", stateKey([]float64{0, 1, 0}))
	require.Equal(t, "0,2", stateKey([]float64{1, 0, 1}))
	require.Equal(t, "-", stateKey([]float64{0, 0, 0}))
	// Weak sensor readings do not register.
	require.Equal(t, "-", stateKey([]float64{0.2, 0.4}))
}

func TestOneHot(t *testing.T) {
	a := oneHot(4, 2)
	require.Equal(t, []float64{0, 0, 1, 0}, a)
	// Out of range indices produce a null action.
	require.Equal(t, []float64{0, 0}, oneHot(2, 5))
}

func TestQTableGetSetMax(t *testing.T) {
	q := NewQTable()
	require.Equal(t, float64(0.5), q.Get("s", "0", 0.5))
	q.Set("s", "1", 2)
	q.Set("s", "0", 1)

	action, val := q.Max("s", 0)
	require.Equal(t, "1", action)
	require.Equal(t, float64(2), val)

	_, val = q.Max("unseen", -3)
	require.Equal(t, float64(-3), val)
}

func TestQTableMaxAmong(t *testing.T) {
	q := NewQTable()
	q.Set("s", "0", -1)
	action, val := q.MaxAmong("s", actionKeys(3), 0)
	// Unvisited actions are initialized with the default and beat
	// the punished one.
	require.NotEqual(t, "0", action)
	require.Equal(t, float64(0), val)
}

func TestQTableJSONRoundTrip(t *testing.T) {
	q := NewQTable()
	q.Set("s", "0", 1.5)
	q.Set("t", "1", -0.5)

	bs, err := json.Marshal(q)
	require.NoError(t, err)

	restored := NewQTable()
	require.NoError(t, json.Unmarshal(bs, restored))
	require.Equal(t, float64(1.5), restored.Get("s", "0", 0))
	require.Equal(t, float64(-0.5), restored.Get("t", "1", 0))
}
