package datefield

import "time"

// State is the mutable cell a host form layer owns for one field: the
// current value and the current validation error. The field references it
// and mutates it only through Field.SetValue (and the validation entry
// points), so hosts can share it across renders.
type State struct {
	value *time.Time
	err   error
}

// NewState returns a cell seeded with initial (which may be nil).
func NewState(initial *time.Time) *State {
	return &State{value: initial}
}

// Value returns the current value, nil when unset.
func (s *State) Value() *time.Time { return s.value }

// Err returns the current validation error, nil when the value is valid or
// validation has not run.
func (s *State) Err() error { return s.err }
