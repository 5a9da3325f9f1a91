package brains

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/becca-rl/beccatest/types"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Softmax is a tabular Q-learning brain with Boltzmann action
// selection: actions are sampled with probability proportional to
// the exponential of their value.
type Softmax struct {
	numActions int
	alpha      float64
	discount   float64

	qTable *QTable
	rand   *rand.Rand

	prevState  string
	prevAction int
	started    bool
}

var _ types.Brain = &Softmax{}

func NewSoftmax(numActions int) *Softmax {
	return &Softmax{
		numActions: numActions,
		alpha:      0.3,
		discount:   0.9,
		qTable:     NewQTable(),
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Softmax) Step(sensors []float64, reward float64) []float64 {
	state := stateKey(sensors)
	if s.started {
		s.update(s.prevState, s.prevAction, reward, state)
	}

	actionIndex := s.nextAction(state)
	s.prevState = state
	s.prevAction = actionIndex
	s.started = true
	return oneHot(s.numActions, actionIndex)
}

func (s *Softmax) nextAction(state string) int {
	sum := float64(0)
	vals := make([]float64, s.numActions)
	for i := 0; i < s.numActions; i++ {
		exp := math.Exp(s.qTable.Get(state, actionKey(i), 0))
		vals[i] = exp
		sum += exp
	}

	weights := make([]float64, s.numActions)
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, nil).Take()
	if !ok {
		return s.rand.Intn(s.numActions)
	}
	return i
}

func (s *Softmax) update(state string, action int, reward float64, nextState string) {
	aKey := actionKey(action)
	_, nextVal := s.qTable.Max(nextState, 0)
	curVal := s.qTable.Get(state, aKey, 0)
	newVal := (1-s.alpha)*curVal + s.alpha*(reward+s.discount*nextVal)
	s.qTable.Set(state, aKey, newVal)
}

func (s *Softmax) Reset() {
	s.qTable = NewQTable()
	s.started = false
}

func (s *Softmax) Snapshot() ([]byte, error) {
	bs, err := json.Marshal(s.qTable)
	if err != nil {
		return nil, fmt.Errorf("snapshotting softmax brain: %w", err)
	}
	return bs, nil
}

func (s *Softmax) Restore(data []byte) error {
	qTable := NewQTable()
	if err := json.Unmarshal(data, qTable); err != nil {
		return fmt.Errorf("restoring softmax brain: %w", err)
	}
	s.qTable = qTable
	s.started = false
	return nil
}
