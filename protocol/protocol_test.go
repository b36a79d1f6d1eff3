package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/protocol"
)

func TestEncode(t *testing.T) {
	scenarios := []struct {
		description string
		kind        protocol.Kind
		text        string
		expected    string
	}{
		{
			description: "message_line",
			kind:        protocol.Message,
			text:        "Start Card: 3 RED",
			expected:    `{"message":"Start Card: 3 RED"}` + "\n",
		},
		{
			description: "input_line_keeps_trailing_space",
			kind:        protocol.Input,
			text:        "Select your card: ",
			expected:    `{"input":"Select your card: "}` + "\n",
		},
		{
			description: "error_line",
			kind:        protocol.Error,
			text:        "You didn't send a name in time!",
			expected:    `{"error":"You didn't send a name in time!"}` + "\n",
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			line, err := protocol.Encode(scenario.kind, scenario.text)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, string(line))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("round_trips_every_kind", func(t *testing.T) {
		for _, kind := range []protocol.Kind{protocol.Message, protocol.Input, protocol.Error} {
			line, err := protocol.Encode(kind, "hello there")
			require.NoError(t, err)
			decodedKind, text, err := protocol.Decode(line)
			require.NoError(t, err)
			assert.Equal(t, kind, decodedKind)
			assert.Equal(t, "hello there", text)
		}
	})

	t.Run("rejects_two_keys", func(t *testing.T) {
		_, _, err := protocol.Decode([]byte(`{"message":"a","input":"b"}`))
		require.Error(t, err)
	})

	t.Run("rejects_zero_keys", func(t *testing.T) {
		_, _, err := protocol.Decode([]byte(`{}`))
		require.Error(t, err)
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, _, err := protocol.Decode([]byte(`DRAW`))
		require.Error(t, err)
	})
}
