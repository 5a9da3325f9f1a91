package brains

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/becca-rl/beccatest/types"
	"golang.org/x/exp/rand"
)

// QLearner is a tabular epsilon-greedy Q-learning brain with a
// visit-count exploration bonus. Sensor vectors are discretized to
// state keys and one primitive action is taken per time step.
type QLearner struct {
	numActions int
	alpha      float64
	discount   float64
	epsilon    float64
	bonus      float64

	qTable *QTable
	visits *QTable
	rand   *rand.Rand

	prevState  string
	prevAction int
	started    bool
}

var _ types.Brain = &QLearner{}

func NewQLearner(numActions int) *QLearner {
	return &QLearner{
		numActions: numActions,
		alpha:      0.3,
		discount:   0.9,
		epsilon:    0.1,
		bonus:      1.0,
		qTable:     NewQTable(),
		visits:     NewQTable(),
		rand:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (q *QLearner) Step(sensors []float64, reward float64) []float64 {
	state := stateKey(sensors)
	if q.started {
		q.update(q.prevState, q.prevAction, reward, state)
	}

	actionIndex := q.nextAction(state)
	q.prevState = state
	q.prevAction = actionIndex
	q.started = true
	return oneHot(q.numActions, actionIndex)
}

func (q *QLearner) nextAction(state string) int {
	if q.rand.Float64() < q.epsilon {
		return q.rand.Intn(q.numActions)
	}
	maxAction, _ := q.qTable.MaxAmong(state, actionKeys(q.numActions), 0)
	if maxAction == "" {
		return q.rand.Intn(q.numActions)
	}
	i, err := parseActionKey(maxAction)
	if err != nil {
		return q.rand.Intn(q.numActions)
	}
	return i
}

func (q *QLearner) update(state string, action int, reward float64, nextState string) {
	aKey := actionKey(action)
	t := q.visits.Get(state, aKey, 0) + 1
	q.visits.Set(state, aKey, t)

	_, nextVal := q.qTable.Max(nextState, 0)
	curVal := q.qTable.Get(state, aKey, 0)
	newVal := (1-q.alpha)*curVal + q.alpha*(reward+q.bonus/t+q.discount*nextVal)
	q.qTable.Set(state, aKey, newVal)
}

func (q *QLearner) Reset() {
	q.qTable = NewQTable()
	q.visits = NewQTable()
	q.started = false
}

type qLearnerSnapshot struct {
	QTable *QTable `json:"q_table"`
	Visits *QTable `json:"visits"`
}

func (q *QLearner) Snapshot() ([]byte, error) {
	bs, err := json.Marshal(qLearnerSnapshot{QTable: q.qTable, Visits: q.visits})
	if err != nil {
		return nil, fmt.Errorf("snapshotting q-learner: %w", err)
	}
	return bs, nil
}

func (q *QLearner) Restore(data []byte) error {
	snap := qLearnerSnapshot{QTable: NewQTable(), Visits: NewQTable()}
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("restoring q-learner: %w", err)
	}
	q.qTable = snap.QTable
	q.visits = snap.Visits
	q.started = false
	return nil
}
