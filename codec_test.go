package tablefsm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type lightState string

type lightEvent string

const lightYAML = `
active:
  toggle: inactive
  stop: halted
inactive:
  toggle: active
halted:
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("decodes states and events", func(t *testing.T) {
		t.Parallel()

		table, err := ParseYAML[lightState, lightEvent]([]byte(lightYAML))
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())

		m := table.Build()
		next, ok := m.Next("active", "toggle")
		require.True(t, ok)
		assert.Equal(t, lightState("inactive"), next)

		next, ok = m.Next("active", "stop")
		require.True(t, ok)
		assert.Equal(t, lightState("halted"), next)

		assert.True(t, m.HasState("halted"))
		assert.Empty(t, m.Events("halted"))
		_, ok = m.Next("halted", "toggle")
		assert.False(t, ok)
	})

	t.Run("rejects a non-mapping document", func(t *testing.T) {
		t.Parallel()

		_, err := ParseYAML[lightState, lightEvent]([]byte("- active\n- inactive\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("rejects a state that is not a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := ParseYAML[lightState, lightEvent]([]byte("active: [toggle]\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseYAML[lightState, lightEvent]([]byte("active: {toggle: inactive"))
		require.Error(t, err)
	})

	t.Run("rejects repeated keys", func(t *testing.T) {
		t.Parallel()

		_, err := ParseYAML[lightState, lightEvent]([]byte("active:\n  toggle: inactive\nactive:\n  toggle: halted\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTable)

		_, err = ParseYAML[lightState, lightEvent]([]byte("active:\n  toggle: inactive\n  toggle: halted\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("decoding replaces existing states", func(t *testing.T) {
		t.Parallel()

		table := NewTable[lightState, lightEvent]().
			WithState("stale", NewEventHandler[lightState, lightEvent]().On("toggle", "active"))
		require.NoError(t, yaml.Unmarshal([]byte(lightYAML), table))

		_, ok := table.Handler("stale")
		assert.False(t, ok)
		assert.Equal(t, 3, table.Len())
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original, err := ParseYAML[lightState, lightEvent]([]byte(lightYAML))
	require.NoError(t, err)

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	decoded, err := ParseYAML[lightState, lightEvent](data)
	require.NoError(t, err)
	assert.Equal(t, original.encode(), decoded.encode())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes states and events", func(t *testing.T) {
		t.Parallel()

		table, err := ParseYAML[lightState, lightEvent]([]byte(lightYAML))
		require.NoError(t, err)

		data, err := json.Marshal(table)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"active":{"stop":"halted","toggle":"inactive"},"inactive":{"toggle":"active"},"halted":{}}`,
			string(data),
		)
	})

	t.Run("round trips integer keyed tables", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(newToggleTable())
		require.NoError(t, err)

		table, err := ParseJSON[testState, testEvent](data)
		require.NoError(t, err)

		m := table.Build()
		next, ok := m.Next(stateActive, evToggle)
		require.True(t, ok)
		assert.Equal(t, stateInactive, next)

		next, ok = m.Next(stateInactive, evToggle)
		require.True(t, ok)
		assert.Equal(t, stateActive, next)
	})

	t.Run("repeated keys keep the last value", func(t *testing.T) {
		t.Parallel()

		table, err := ParseJSON[lightState, lightEvent]([]byte(`{"active":{"toggle":"inactive"},"active":{"toggle":"halted"}}`))
		require.NoError(t, err)
		next, ok := table.Build().Next("active", "toggle")
		require.True(t, ok)
		assert.Equal(t, lightState("halted"), next)

		table, err = ParseJSON[lightState, lightEvent]([]byte(`{"active":{"toggle":"inactive","toggle":"halted"}}`))
		require.NoError(t, err)
		next, ok = table.Build().Next("active", "toggle")
		require.True(t, ok)
		assert.Equal(t, lightState("halted"), next)
	})

	t.Run("rejects a non-object document", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSON[lightState, lightEvent]([]byte(`["active"]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTable)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSON[lightState, lightEvent]([]byte(`{"active":`))
		require.Error(t, err)
	})
}
