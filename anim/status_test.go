package anim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusText(t *testing.T) {
	for _, s := range []Status{Idle, Running, Paused, Completed} {
		b, err := json.Marshal(s)
		require.NoError(t, err)

		var back Status
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, s, back)
	}
	assert.Equal(t, `"paused"`, mustJSON(t, Paused))
	assert.Equal(t, "status(9)", Status(9).String())

	var s Status
	assert.Error(t, s.UnmarshalText([]byte("bogus")))
}

func mustJSON(t *testing.T, v interface{}) string {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
