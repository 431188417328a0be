package tablefsm

// EventHandler maps the events recognized by one state to their transitions
type EventHandler[S, E comparable] struct {
	on map[E]Transition[S]
}

// NewEventHandler creates an empty event handler
func NewEventHandler[S, E comparable]() *EventHandler[S, E] {
	return &EventHandler[S, E]{
		on: make(map[E]Transition[S]),
	}
}

// WithEvent registers the transition taken on event.
// Registering the same event again replaces the earlier transition.
func (h *EventHandler[S, E]) WithEvent(event E, transition Transition[S]) *EventHandler[S, E] {
	if h.on == nil {
		h.on = make(map[E]Transition[S])
	}
	h.on[event] = transition
	return h
}

// On is shorthand for WithEvent(event, NewTransition(target))
func (h *EventHandler[S, E]) On(event E, target S) *EventHandler[S, E] {
	return h.WithEvent(event, NewTransition(target))
}

// Lookup returns the transition registered for event
func (h *EventHandler[S, E]) Lookup(event E) (Transition[S], bool) {
	if h == nil {
		return Transition[S]{}, false
	}
	t, ok := h.on[event]
	return t, ok
}

// Len returns the number of registered events
func (h *EventHandler[S, E]) Len() int {
	if h == nil {
		return 0
	}
	return len(h.on)
}

// Events returns the registered events in no particular order
func (h *EventHandler[S, E]) Events() []E {
	if h == nil {
		return nil
	}
	events := make([]E, 0, len(h.on))
	for e := range h.on {
		events = append(events, e)
	}
	return events
}

// clone returns a handler with its own copy of the event map
func (h *EventHandler[S, E]) clone() *EventHandler[S, E] {
	c := &EventHandler[S, E]{
		on: make(map[E]Transition[S], h.Len()),
	}
	if h != nil {
		for e, t := range h.on {
			c.on[e] = t
		}
	}
	return c
}
