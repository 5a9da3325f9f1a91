package types

// Trace of a run as the sequence of rewards received per time step
type Trace struct {
	rewards []float64
}

func NewTrace() *Trace {
	return &Trace{
		rewards: make([]float64, 0),
	}
}

func (t *Trace) Append(reward float64) {
	t.rewards = append(t.rewards, reward)
}

func (t *Trace) Len() int {
	return len(t.rewards)
}

func (t *Trace) Get(i int) (float64, bool) {
	if i >= len(t.rewards) {
		return 0, false
	}
	return t.rewards[i], true
}

// Mean reward over the half open interval [from, to)
func (t *Trace) Mean(from, to int) float64 {
	if from < 0 {
		from = 0
	}
	if to > len(t.rewards) {
		to = len(t.rewards)
	}
	if to <= from {
		return 0
	}
	sum := float64(0)
	for _, r := range t.rewards[from:to] {
		sum += r
	}
	return sum / float64(to-from)
}

// MeanTail is the mean reward over the last n time steps
func (t *Trace) MeanTail(n int) float64 {
	return t.Mean(len(t.rewards)-n, len(t.rewards))
}

// Curve bins the rewards into windows of the given size and returns
// the mean reward of each window
func (t *Trace) Curve(window int) []float64 {
	if window <= 0 {
		window = 1
	}
	curve := make([]float64, 0, len(t.rewards)/window+1)
	for from := 0; from < len(t.rewards); from += window {
		to := from + window
		if to > len(t.rewards) {
			to = len(t.rewards)
		}
		curve = append(curve, t.Mean(from, to))
	}
	return curve
}
