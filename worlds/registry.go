package worlds

import (
	"strconv"
	"strings"

	"github.com/becca-rl/beccatest/types"
)

// Entry describes one registered world: its canonical name, its
// numeric index for command line selection, its weight in the
// benchmark suite, and a constructor.
type Entry struct {
	Index  int
	Name   string
	Weight float64
	// Decathlon marks the worlds that make up the full benchmark suite
	Decathlon bool
	New       func(lifespan int) types.World
}

// Some tests are harder than others, so the suite weights them
// accordingly. Indices follow the original world numbering, with 0
// reserved for running all of them.
var registry = []Entry{
	{1, "grid_1D", 1, true, func(l int) types.World { return NewGrid1D(l) }},
	{2, "grid_1D_chase", 1, true, func(l int) types.World { return NewGrid1DChase(l) }},
	{3, "grid_1D_delay", 1, true, func(l int) types.World { return NewGrid1DDelay(l) }},
	{4, "grid_1D_ms", 1, true, func(l int) types.World { return NewGrid1DMS(l) }},
	{5, "grid_1D_noise", 1, true, func(l int) types.World { return NewGrid1DNoise(l) }},
	{6, "grid_2D", 3, true, func(l int) types.World { return NewGrid2D(l) }},
	{7, "grid_2D_dc", 4, true, func(l int) types.World { return NewGrid2DDC(l) }},
	{8, "image_1D", 5, true, func(l int) types.World { return NewImage1D(l) }},
	{9, "image_2D", 10, true, func(l int) types.World { return NewImage2D(l) }},
	{10, "fruit", 3, true, func(l int) types.World { return NewFruit(l) }},
	{11, "vacuum", 1, false, func(l int) types.World { return NewVacuum(l) }},
}

// Registry returns all registered worlds in index order
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Decathlon returns the worlds of the full benchmark suite
func Decathlon() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		if e.Decathlon {
			out = append(out, e)
		}
	}
	return out
}

// Lookup resolves a world by canonical name, loose name (case and
// underscores ignored, so grid1D matches grid_1D) or numeric index.
func Lookup(key string) (Entry, bool) {
	if idx, err := strconv.Atoi(key); err == nil {
		for _, e := range registry {
			if e.Index == idx {
				return e, true
			}
		}
		return Entry{}, false
	}
	loose := normalizeName(key)
	for _, e := range registry {
		if e.Name == key || normalizeName(e.Name) == loose {
			return e, true
		}
	}
	return Entry{}, false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}
