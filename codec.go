package tablefsm

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTable is returned when an encoded table cannot be decoded
var ErrInvalidTable = errors.New("invalid table")

// A table is encoded as a mapping of state to a mapping of event to target:
//
//	active:
//	  toggle: inactive
//	inactive:
//	  toggle: active
//
// A state with no events is encoded with an empty mapping. S and E must be
// usable as map keys by the encoder (string or integer kinds, or types that
// implement the text or YAML marshaling interfaces).
//
// Repeated keys are handled by the underlying decoder: YAML rejects a state
// or event defined twice in the same mapping with ErrInvalidTable, while JSON
// keeps the last value, the same last-write-wins rule as the builders.
type encodedTable[S, E comparable] map[S]map[E]S

func (t *Table[S, E]) encode() encodedTable[S, E] {
	out := make(encodedTable[S, E], t.Len())
	if t == nil {
		return out
	}
	for s, h := range t.states {
		events := make(map[E]S, h.Len())
		if h != nil {
			for e, tr := range h.on {
				events[e] = tr.Target()
			}
		}
		out[s] = events
	}
	return out
}

// replace sets the table contents from a decoded mapping
func (t *Table[S, E]) replace(in encodedTable[S, E]) {
	t.states = make(map[S]*EventHandler[S, E], len(in))
	for s, events := range in {
		h := NewEventHandler[S, E]()
		for e, target := range events {
			h.On(e, target)
		}
		t.states[s] = h
	}
}

// MarshalYAML implements yaml.Marshaler
func (t *Table[S, E]) MarshalYAML() (any, error) {
	return t.encode(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The decoded states replace the
// current contents of t. A state or event key repeated within one mapping
// fails with ErrInvalidTable.
func (t *Table[S, E]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a mapping of states at line %d", ErrInvalidTable, value.Line)
	}

	var raw encodedTable[S, E]
	if err := value.Decode(&raw); err != nil {
		return errors.Join(ErrInvalidTable, err)
	}

	t.replace(raw)
	return nil
}

// MarshalJSON implements json.Marshaler
func (t *Table[S, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.encode())
}

// UnmarshalJSON implements json.Unmarshaler. The decoded states replace the
// current contents of t. A repeated state or event key keeps its last value.
func (t *Table[S, E]) UnmarshalJSON(data []byte) error {
	var raw encodedTable[S, E]
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Join(ErrInvalidTable, err)
	}

	t.replace(raw)
	return nil
}

// ParseYAML decodes a YAML table document
func ParseYAML[S, E comparable](data []byte) (*Table[S, E], error) {
	t := NewTable[S, E]()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse yaml table: %w", err)
	}
	return t, nil
}

// ParseJSON decodes a JSON table document
func ParseJSON[S, E comparable](data []byte) (*Table[S, E], error) {
	t := NewTable[S, E]()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse json table: %w", err)
	}
	return t, nil
}
