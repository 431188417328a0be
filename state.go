package tablefsm

import "fmt"

// State is the current-state token passed to and returned from Machine.Transition
type State[S comparable] struct {
	value S
}

// NewState wraps a state value
func NewState[S comparable](value S) State[S] {
	return State[S]{value: value}
}

// Value returns the wrapped state value
func (s State[S]) Value() S {
	return s.value
}

func (s State[S]) String() string {
	return fmt.Sprint(s.value)
}
