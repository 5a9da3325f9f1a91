package brains

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QTable maps state keys to action values
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// Max returns the best action of the state and its value
func (q *QTable) Max(state string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
		return "", def
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for a, val := range q.table[state] {
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	if maxAction == "" {
		return "", def
	}
	return maxAction, maxVal
}

// MaxAmong returns the best action of the state among the given
// actions, initializing missing entries with def
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for _, a := range actions {
		if _, ok := q.table[state][a]; !ok {
			q.table[state][a] = def
		}
		if q.table[state][a] > maxVal {
			maxAction = a
			maxVal = q.table[state][a]
		}
	}
	return maxAction, maxVal
}

func (q *QTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.table)
}

func (q *QTable) UnmarshalJSON(data []byte) error {
	q.table = make(map[string]map[string]float64)
	return json.Unmarshal(data, &q.table)
}

// stateKey discretizes a sensor vector into a hash string: the
// indices of the sensors that are clearly on. Sensor vectors in the
// test worlds are mostly one-hot, so this collapses them to compact
// state identities without assuming a fixed layout.
func stateKey(sensors []float64) string {
	active := make([]string, 0, 2)
	for i, v := range sensors {
		if v >= 0.5 {
			active = append(active, strconv.Itoa(i))
		}
	}
	if len(active) == 0 {
		return "-"
	}
	return strings.Join(active, ",")
}

// actionKey is the hash of a primitive action index
func actionKey(i int) string {
	return strconv.Itoa(i)
}

// actionKeys lists the hashes of all primitive actions
func actionKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = actionKey(i)
	}
	return keys
}

// oneHot builds the action command vector for a primitive action
func oneHot(n, i int) []float64 {
	action := make([]float64, n)
	if i >= 0 && i < n {
		action[i] = 1
	}
	return action
}

func parseActionKey(key string) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("malformed action key %q: %w", key, err)
	}
	return i, nil
}
