// Package testhelpers provides testing utilities for zikkycal,
// including an isolated scene (config and log paths), a recording
// display, and custom assertions on engine state.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zikkycal.dev/zikkycal/internal/engine"
)

// ExpectDisplay asserts that the engine shows the expected value.
func ExpectDisplay(t *testing.T, eng *engine.Engine, expected string) {
	t.Helper()
	require.Equal(t, expected, eng.Display(), "Display does not match")
}

// ExpectOperands asserts the captured operand, pending operator and
// current operand in one go.
func ExpectOperands(t *testing.T, eng *engine.Engine, previous string, op engine.Operator, current string) {
	t.Helper()
	snap := eng.Snapshot()
	require.Equal(t, previous, snap.Previous, "Previous operand does not match")
	require.Equal(t, op, snap.Operator, "Pending operator does not match")
	require.Equal(t, current, snap.Current, "Current operand does not match")
}

// ExpectState asserts the engine's state machine position.
func ExpectState(t *testing.T, eng *engine.Engine, expected engine.State) {
	t.Helper()
	require.Equal(t, expected.String(), eng.State().String(), "State does not match")
}
