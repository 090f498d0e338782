package engine_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"zikkycal.dev/zikkycal/internal/engine"
	"zikkycal.dev/zikkycal/testhelpers"
	"zikkycal.dev/zikkycal/testhelpers/scenario"
)

func TestInputDigitOrPoint(t *testing.T) {
	t.Parallel()

	t.Run("collapses leading zeros", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("0", "0").
			ExpectDisplay("0").
			Press("7").
			ExpectDisplay("7").
			ExpectOperands("", engine.OpNone, "7")
	})

	t.Run("keeps zero before a point", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("0", ".", "5").
			ExpectDisplay("0.5")
	})

	t.Run("accepts at most one point", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("1", ".", "2", ".", "3", ".").
			ExpectDisplay("1.23")
	})

	t.Run("ignores anything but digits and points", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenarioParallel(t).Press("4")
		pushed := len(s.Display.Values)

		s.Engine.InputDigitOrPoint('x')
		s.Engine.InputDigitOrPoint('+')
		s.ExpectDisplay("4")
		require.Len(t, s.Display.Values, pushed)
	})

	t.Run("starts a new operand after a result", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("2", "+", "2", "=").
			ExpectState(engine.StateResultShown).
			Press("9").
			ExpectDisplay("9").
			ExpectState(engine.StateOperandEntered)
	})

	t.Run("a lone point evaluates to NaN", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press(".").
			ExpectDisplay(".").
			Press("+", "1", "=").
			ExpectDisplay("NaN")
	})
}

func TestInputOperator(t *testing.T) {
	t.Parallel()

	t.Run("captures the operand", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("5", "+").
			ExpectOperands("5", engine.OpAdd, "").
			ExpectDisplay("0").
			ExpectState(engine.StateOperatorPending)
	})

	t.Run("substitutes a pending operator", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("5", "+", "*").
			ExpectOperands("5", engine.OpMul, "").
			Press("3", "=").
			ExpectDisplay("15")
	})

	t.Run("does nothing without operands", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenarioParallel(t).Press("+", "/")
		s.ExpectOperands("", engine.OpNone, "").
			ExpectState(engine.StateIdle)
		require.Equal(t, []string{"0"}, s.Display.Values)
	})

	t.Run("chains left to right", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("5", "+", "3", "+").
			ExpectOperands("8", engine.OpAdd, "").
			Press("2", "=").
			ExpectDisplay("10")

		scenario.NewScenarioParallel(t).
			Press("5", "+", "3", "*", "2", "=").
			ExpectDisplay("16")
	})

	t.Run("continues from a result", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("2", "+", "3", "=", "*", "4", "=").
			ExpectDisplay("20")
	})

	t.Run("none is ignored", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenarioParallel(t).Press("5")
		s.Engine.InputOperator(engine.OpNone)
		s.ExpectOperands("", engine.OpNone, "5")
	})
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("missing operands leave state untouched", func(t *testing.T) {
		t.Parallel()
		cases := [][]string{
			{},
			{"5"},
			{"5", "+"},
		}
		for _, tokens := range cases {
			s := scenario.NewScenarioParallel(t).Press(tokens...)
			before := s.Engine.Snapshot()
			pushed := len(s.Display.Values)

			s.Engine.Evaluate()
			require.Equal(t, before, s.Engine.Snapshot(), "tokens %v", tokens)
			require.Len(t, s.Display.Values, pushed)
		}
	})

	t.Run("clears the operation and shows the result", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenarioParallel(t).Press("7", "-", "1", "0", "=")
		s.ExpectDisplay("-3").
			ExpectOperands("", engine.OpNone, "-3").
			ExpectState(engine.StateResultShown)
		require.True(t, s.Engine.Snapshot().ResetNext)
	})

	t.Run("follows floating point semantics", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			tokens   []string
			expected string
		}{
			{[]string{"0.1", "+", "0.2", "="}, "0.30000000000000004"},
			{[]string{"1", "/", "0", "="}, "Infinity"},
			{[]string{"0", "-", "1", "=", "/", "0", "="}, "-Infinity"},
			{[]string{"0", "/", "0", "="}, "NaN"},
			{[]string{"1", "/", "3", "="}, "0.3333333333333333"},
			{[]string{"1000000000000000000000", "+", "0", "="}, "1e+21"},
			{[]string{"1", "/", "1", "0", "0", "0", "0", "0", "0", "0", "="}, "1e-7"},
			{[]string{"1", "/", "0", "=", "+", "1", "="}, "Infinity"},
		}
		for _, tc := range cases {
			scenario.NewScenarioParallel(t).
				Press(tc.tokens...).
				ExpectDisplay(tc.expected)
		}
	})
}

func TestApplyUnary(t *testing.T) {
	t.Parallel()

	t.Run("square", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("3", "square").
			ExpectDisplay("9").
			ExpectState(engine.StateResultShown).
			Press("1").
			ExpectDisplay("1")
	})

	t.Run("square of nothing is zero", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("square").
			ExpectDisplay("0").
			ExpectState(engine.StateResultShown)
	})

	t.Run("sqrt", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("2", "sqrt").
			ExpectDisplay("1.4142135623730951")
	})

	t.Run("sqrt of a negative is NaN", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("0", "-", "4", "=", "sqrt").
			ExpectDisplay("NaN").
			ExpectState(engine.StateResultShown)
	})

	t.Run("borrows the captured operand", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("4", "+", "square").
			ExpectOperands("4", engine.OpAdd, "16").
			Press("=").
			ExpectDisplay("20")
	})

	t.Run("restores the operand after a result and an operator", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("9", "sqrt", "+").
			ExpectOperands("3", engine.OpAdd, "").
			Press("square").
			ExpectOperands("3", engine.OpAdd, "9").
			Press("=").
			ExpectDisplay("12")
	})

	t.Run("power arms the operator", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("2", "power").
			ExpectOperands("2", engine.OpPow, "").
			ExpectDisplay("0").
			Press("3", "=").
			ExpectDisplay("8")
	})

	t.Run("power with a typed operand evaluates the pending operation", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("2", "+", "3", "power").
			ExpectOperands("5", engine.OpPow, "").
			Press("2", "=").
			ExpectDisplay("25")
	})

	t.Run("power with a borrowed operand replaces the operator", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("5", "+", "power").
			ExpectOperands("5", engine.OpPow, "").
			Press("3", "=").
			ExpectDisplay("125")
	})

	t.Run("power on a result uses the result", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("2", "+", "3", "=", "power", "2", "=").
			ExpectDisplay("25")
	})

	t.Run("power without operands does nothing", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("power").
			ExpectOperands("", engine.OpNone, "").
			ExpectState(engine.StateIdle)
	})

	t.Run("paren cycles through three states", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("paren").
			ExpectDisplay("(").
			Press("paren").
			ExpectDisplay("()").
			Press("paren").
			ExpectDisplay("0").
			ExpectOperands("", engine.OpNone, "")
	})

	t.Run("parens around a number are cosmetic", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("paren", "5", "paren").
			ExpectDisplay("(5)").
			Press("+", "1", "=").
			ExpectDisplay("6")

		scenario.NewScenarioParallel(t).
			Press("5", "paren").
			ExpectDisplay("(5").
			Press("square").
			ExpectDisplay("25")
	})

	t.Run("unknown kinds are ignored", func(t *testing.T) {
		t.Parallel()
		s := scenario.NewScenarioParallel(t).Press("2", "+", "=")
		before := s.Engine.Snapshot()
		pushed := len(s.Display.Values)

		s.Engine.ApplyUnary(engine.Unary(99))
		require.Equal(t, before, s.Engine.Snapshot())
		require.Len(t, s.Display.Values, pushed)
	})
}

func TestBackspace(t *testing.T) {
	t.Parallel()

	t.Run("drops the last character", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("1", "2", "3", "backspace").
			ExpectDisplay("12").
			Press("backspace", "backspace").
			ExpectDisplay("0").
			ExpectOperands("", engine.OpNone, "").
			ExpectState(engine.StateIdle)
	})

	t.Run("clears a shown result", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("1", "2", "+", "3", "=").
			ExpectDisplay("15").
			Press("backspace").
			ExpectDisplay("0").
			ExpectOperands("", engine.OpNone, "").
			ExpectState(engine.StateIdle)
	})

	t.Run("keeps the pending operation", func(t *testing.T) {
		t.Parallel()
		scenario.NewScenarioParallel(t).
			Press("5", "+", "backspace").
			ExpectOperands("5", engine.OpAdd, "").
			ExpectDisplay("0")
	})
}

func TestReset(t *testing.T) {
	t.Parallel()
	scenario.NewScenarioParallel(t).
		Press("5", "+", "3").
		Press("clear").
		ExpectDisplay("0").
		ExpectOperands("", engine.OpNone, "").
		ExpectState(engine.StateIdle)
}

func TestDisplayPushes(t *testing.T) {
	t.Parallel()

	display := testhelpers.NewRecordingDisplay()
	eng := engine.NewEngine(display)
	require.Equal(t, []string{"0"}, display.Values)

	eng.InputDigitOrPoint('1')
	eng.InputOperator(engine.OpAdd)
	eng.InputDigitOrPoint('2')
	eng.Evaluate()
	require.Equal(t, []string{"0", "1", "0", "2", "3"}, display.Values)
}

func TestNilDisplay(t *testing.T) {
	t.Parallel()

	eng := engine.NewEngine(nil)
	eng.InputDigitOrPoint('6')
	eng.ApplyUnary(engine.UnarySquare)
	require.Equal(t, "36", eng.Display())
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := engine.NewEngine(nil, engine.WithLogger(logger))

	eng.InputDigitOrPoint('5')
	eng.InputOperator(engine.OpMul)

	out := buf.String()
	require.Contains(t, out, `msg="engine input 5"`)
	require.Contains(t, out, "state=operand")
	require.Contains(t, out, `msg="engine operator *"`)
	require.Contains(t, out, "previous=5")
	require.Contains(t, out, "operator=*")
	require.Contains(t, out, "state=operator-pending")
}

func TestStateNames(t *testing.T) {
	t.Parallel()
	require.Equal(t, "idle", engine.StateIdle.String())
	require.Equal(t, "operand", engine.StateOperandEntered.String())
	require.Equal(t, "operator-pending", engine.StateOperatorPending.String())
	require.Equal(t, "result", engine.StateResultShown.String())
	require.Equal(t, "none", engine.OpNone.String())
	require.Equal(t, "sqrt", engine.UnarySqrt.String())
}
