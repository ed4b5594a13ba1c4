package finitestate

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(slog.Default().Handler())
	require.NoError(t, err)
	assert.Equal(t, StatusNew, m.GetState())
}

func TestLifecycle(t *testing.T) {
	m, err := New(slog.Default().Handler())
	require.NoError(t, err)

	for _, next := range []string{StatusBooting, StatusRunning, StatusStopping, StatusStopped} {
		require.NoError(t, m.Transition(next), "transition to %s", next)
		assert.Equal(t, next, m.GetState())
	}
}

func TestBootFailure(t *testing.T) {
	m, err := New(slog.Default().Handler())
	require.NoError(t, err)

	require.NoError(t, m.Transition(StatusBooting))
	require.NoError(t, m.Transition(StatusError))
	assert.Equal(t, StatusError, m.GetState())
}

func TestInvalidTransition(t *testing.T) {
	m, err := New(slog.Default().Handler())
	require.NoError(t, err)

	assert.Error(t, m.Transition(StatusRunning))
	assert.Equal(t, StatusNew, m.GetState())
}
