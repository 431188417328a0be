package tablefsm

// Transition names the state reached when an event occurs
type Transition[S comparable] struct {
	target S
}

// NewTransition creates a transition to target
func NewTransition[S comparable](target S) Transition[S] {
	return Transition[S]{target: target}
}

// Target returns the destination state
func (t Transition[S]) Target() S {
	return t.target
}
