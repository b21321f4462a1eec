package learner

import "tictactoe/game"

type key struct {
	state  game.State
	action game.Action
}

// Table maps (state, action) pairs to Q-values. Entries are inserted lazily on
// first read and never removed. A Table belongs to a single Agent.
type Table struct {
	values       map[key]float64
	defaultValue float64
}

func NewTable(defaultValue float64) *Table {
	return &Table{
		values:       make(map[key]float64),
		defaultValue: defaultValue,
	}
}

// Get returns the value of (state, action), inserting the default value first
// if the pair has never been seen. Actions are not validated against the state.
func (t *Table) Get(state game.State, action game.Action) float64 {
	k := key{state: state, action: action}
	value, ok := t.values[k]
	if !ok {
		value = t.defaultValue
		t.values[k] = value
	}
	return value
}

func (t *Table) Set(state game.State, action game.Action, value float64) {
	t.values[key{state: state, action: action}] = value
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.values)
}
