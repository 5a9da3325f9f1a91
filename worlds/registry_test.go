package worlds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	e, ok := Lookup("grid_1D")
	require.True(t, ok)
	require.Equal(t, 1, e.Index)

	// Loose matching ignores case and underscores.
	e, ok = Lookup("Grid1d")
	require.True(t, ok)
	require.Equal(t, "grid_1D", e.Name)

	// Numeric indices resolve too.
	e, ok = Lookup("8")
	require.True(t, ok)
	require.Equal(t, "image_1D", e.Name)

	_, ok = Lookup("does_not_exist")
	require.False(t, ok)
	_, ok = Lookup("99")
	require.False(t, ok)
}

func TestDecathlonMembership(t *testing.T) {
	decathlon := Decathlon()
	require.Len(t, decathlon, 10)
	for _, e := range decathlon {
		require.True(t, e.Decathlon)
		require.NotEqual(t, "vacuum", e.Name)
	}
}

func TestRegistryWeights(t *testing.T) {
	// The visual worlds are the hardest and weigh the most.
	e, _ := Lookup("image_2D")
	require.Equal(t, float64(10), e.Weight)
	e, _ = Lookup("image_1D")
	require.Equal(t, float64(5), e.Weight)
	e, _ = Lookup("grid_1D")
	require.Equal(t, float64(1), e.Weight)
}

func TestRegistryConstructorsMatchNames(t *testing.T) {
	for _, e := range Registry() {
		w := e.New(100)
		require.Equal(t, e.Name, w.Name())
		require.Greater(t, w.SensorCount(), 0)
		require.Greater(t, w.ActionCount(), 0)
		require.Len(t, w.Reset(), w.SensorCount())
	}
}
