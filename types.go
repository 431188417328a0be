// Package tablefsm is a table-driven finite state machine.
//
// A Table maps each state to an EventHandler, and each EventHandler maps an
// event to the Transition taken when that event arrives. A Machine freezes a
// Table and answers a single question: given the current state and an event,
// what is the next state, if any.
//
//	table := tablefsm.NewTable[StateID, EventID]().
//		WithState(Active, tablefsm.NewEventHandler[StateID, EventID]().
//			WithEvent(Toggle, tablefsm.NewTransition(Inactive))).
//		WithState(Inactive, tablefsm.NewEventHandler[StateID, EventID]().
//			WithEvent(Toggle, tablefsm.NewTransition(Active)))
//
//	m := table.Build()
//	next, ok := m.Transition(tablefsm.NewState(Active), Toggle)
//
// The Machine does not track a current state; callers carry it between calls.
// A Machine is never mutated after construction and is safe for concurrent use.
package tablefsm

import "log/slog"

// Logger is the default logger used when none is provided
var Logger = slog.Default()
