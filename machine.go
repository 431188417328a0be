package tablefsm

import (
	"log/slog"
)

// Machine answers transition queries against a frozen Table.
// It holds no current state and is never modified after NewMachine returns,
// so a single Machine may be shared between goroutines. A nil *Machine
// behaves as a machine with an empty table.
type Machine[S, E comparable] struct {
	table  *Table[S, E]
	name   string
	logger *slog.Logger
}

type machineOptions struct {
	name   string
	logger *slog.Logger
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*machineOptions)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(o *machineOptions) {
		o.logger = logger
	}
}

// WithName labels the machine in log output and diagrams
func WithName(name string) MachineOption {
	return func(o *machineOptions) {
		o.name = name
	}
}

// NewMachine freezes a copy of table into a Machine.
// A nil table yields a machine that never transitions.
func NewMachine[S, E comparable](table *Table[S, E], opts ...MachineOption) *Machine[S, E] {
	o := machineOptions{logger: Logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger
	}

	logger := o.logger
	if o.name != "" {
		logger = logger.With("machine", o.name)
	}

	m := &Machine[S, E]{
		table:  table.clone(),
		name:   o.name,
		logger: logger,
	}

	m.logger.Debug("machine built", "states", m.table.Len())
	return m
}

// Name returns the label set with WithName
func (m *Machine[S, E]) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// handler returns the event handler of state; a nil machine has none
func (m *Machine[S, E]) handler(state S) (*EventHandler[S, E], bool) {
	if m == nil {
		return nil, false
	}
	return m.table.Handler(state)
}

// Transition returns the state reached from current on event.
// The boolean is false when current is not in the table or does not
// recognize event; the event is then ignored and the returned State is zero.
func (m *Machine[S, E]) Transition(current State[S], event E) (State[S], bool) {
	target, ok := m.Next(current.Value(), event)
	if !ok {
		return State[S]{}, false
	}
	return NewState(target), true
}

// Next is Transition on raw state values
func (m *Machine[S, E]) Next(current S, event E) (S, bool) {
	var zero S
	if m == nil {
		return zero, false
	}

	handler, ok := m.handler(current)
	if !ok {
		m.logger.Debug("no transition found (unknown state)", "state", current, "event", event)
		return zero, false
	}

	t, ok := handler.Lookup(event)
	if !ok {
		m.logger.Debug("no transition found", "state", current, "event", event)
		return zero, false
	}

	return t.Target(), true
}

// Can reports whether event leads anywhere from current
func (m *Machine[S, E]) Can(current S, event E) bool {
	handler, ok := m.handler(current)
	if !ok {
		return false
	}
	_, ok = handler.Lookup(event)
	return ok
}

// HasState reports whether state has an entry in the table
func (m *Machine[S, E]) HasState(state S) bool {
	_, ok := m.handler(state)
	return ok
}

// States returns the states in the table in no particular order
func (m *Machine[S, E]) States() []S {
	if m == nil {
		return nil
	}
	return m.table.States()
}

// Events returns the events recognized by state in no particular order
func (m *Machine[S, E]) Events(state S) []E {
	handler, _ := m.handler(state)
	return handler.Events()
}

// Table returns a copy of the machine's table.
// The copy may be extended and built into a new Machine without affecting m.
func (m *Machine[S, E]) Table() *Table[S, E] {
	if m == nil {
		return NewTable[S, E]()
	}
	return m.table.clone()
}
