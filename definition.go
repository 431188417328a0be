package tablefsm

// Table holds the event handler of every state before building a Machine
type Table[S, E comparable] struct {
	states map[S]*EventHandler[S, E]
}

// NewTable creates an empty table builder
func NewTable[S, E comparable]() *Table[S, E] {
	return &Table[S, E]{
		states: make(map[S]*EventHandler[S, E]),
	}
}

// WithState registers the event handler for state.
// Registering the same state again replaces the earlier handler. A nil
// handler registers a state that recognizes no events.
func (t *Table[S, E]) WithState(state S, handler *EventHandler[S, E]) *Table[S, E] {
	if t.states == nil {
		t.states = make(map[S]*EventHandler[S, E])
	}
	if handler == nil {
		handler = NewEventHandler[S, E]()
	}
	t.states[state] = handler
	return t
}

// Handler returns the event handler registered for state
func (t *Table[S, E]) Handler(state S) (*EventHandler[S, E], bool) {
	if t == nil {
		return nil, false
	}
	h, ok := t.states[state]
	return h, ok
}

// Len returns the number of registered states
func (t *Table[S, E]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.states)
}

// States returns the registered states in no particular order
func (t *Table[S, E]) States() []S {
	if t == nil {
		return nil
	}
	states := make([]S, 0, len(t.states))
	for s := range t.states {
		states = append(states, s)
	}
	return states
}

// Build creates a Machine from the table.
// The machine keeps its own copy, so later changes to t do not affect it.
func (t *Table[S, E]) Build(opts ...MachineOption) *Machine[S, E] {
	return NewMachine(t, opts...)
}

// clone deep-copies the table, including every handler
func (t *Table[S, E]) clone() *Table[S, E] {
	c := &Table[S, E]{
		states: make(map[S]*EventHandler[S, E], t.Len()),
	}
	if t != nil {
		for s, h := range t.states {
			c.states[s] = h.clone()
		}
	}
	return c
}
