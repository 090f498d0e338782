// Package scenario provides a high-level test scenario that combines a Scene,
// an Engine, and a runtime Context to provide a terse API for engine tests.
package scenario

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"zikkycal.dev/zikkycal/internal/engine"
	"zikkycal.dev/zikkycal/internal/runtime"
	"zikkycal.dev/zikkycal/testhelpers"
)

// Scenario represents a high-level test scenario that combines a Scene,
// an Engine, and a runtime Context to provide a terse API for tests.
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Display *testhelpers.RecordingDisplay
	Engine  *engine.Engine
	Context *runtime.Context
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)
	ctx, err := runtime.GetContext(context.Background(), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })

	display := testhelpers.NewRecordingDisplay()
	return &Scenario{
		T:       t,
		Scene:   scene,
		Display: display,
		Engine:  ctx.NewEngine(display),
		Context: ctx,
	}
}

// NewScenarioParallel creates a new Scenario that is safe for parallel tests.
// It does NOT set environment variables or open a log file.
func NewScenarioParallel(t *testing.T) *Scenario {
	t.Helper()
	display := testhelpers.NewRecordingDisplay()
	return &Scenario{
		T:       t,
		Display: display,
		Engine:  engine.NewEngine(display),
	}
}

// Press parses tokens the way the eval command does and dispatches them.
func (s *Scenario) Press(tokens ...string) *Scenario {
	s.T.Helper()
	events, err := engine.ParseTokens(tokens)
	require.NoError(s.T, err)
	for _, ev := range events {
		require.NoError(s.T, engine.Dispatch(s.Engine, ev))
	}
	return s
}

// Reset forgets the recorded display values and clears the engine.
func (s *Scenario) Reset() *Scenario {
	s.Display.Reset()
	s.Engine.Reset()
	return s
}

// ExpectDisplay asserts the value shown by the engine and the last value
// pushed to the display.
func (s *Scenario) ExpectDisplay(expected string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectDisplay(s.T, s.Engine, expected)
	require.Equal(s.T, expected, s.Display.Last(), "Last pushed display value does not match")
	return s
}

// ExpectOperands asserts previous operand, pending operator and current operand.
func (s *Scenario) ExpectOperands(previous string, op engine.Operator, current string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectOperands(s.T, s.Engine, previous, op, current)
	return s
}

// ExpectState asserts the engine's state machine position.
func (s *Scenario) ExpectState(expected engine.State) *Scenario {
	s.T.Helper()
	testhelpers.ExpectState(s.T, s.Engine, expected)
	return s
}
