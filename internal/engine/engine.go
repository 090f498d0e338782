package engine

import (
	"log/slog"
	"math"
	"strings"
)

// Engine accumulates calculator input and evaluates pending operations
type Engine struct {
	current   string
	previous  string
	op        Operator
	resetNext bool // a result is showing; the next digit starts a new operand

	display Display
	logger  *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for debug traces of each operation
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine in the idle state and shows "0" on display.
// A nil display is allowed; the value is still available through Display().
func NewEngine(display Display, opts ...Option) *Engine {
	e := &Engine{
		display: display,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset clears all state and shows "0"
func (e *Engine) Reset() {
	e.current = ""
	e.previous = ""
	e.op = OpNone
	e.resetNext = false
	e.refresh("reset")
}

// InputDigitOrPoint appends a digit or decimal point to the current operand.
// Runes other than 0-9 and '.' are ignored.
func (e *Engine) InputDigitOrPoint(ch rune) {
	if !isDigitOrPoint(ch) {
		return
	}
	if e.resetNext {
		e.current = ""
		e.resetNext = false
	}
	if ch == '.' && strings.ContainsRune(e.current, '.') {
		return
	}
	if e.current == "0" && ch != '.' {
		e.current = string(ch)
	} else {
		e.current += string(ch)
	}
	e.refresh("input " + string(ch))
}

// InputOperator arms a binary operator.
//
// With no operand typed after a pending operator, the pending operator is
// replaced. With both operands present, the pending operation is evaluated
// first and its result becomes the left operand.
func (e *Engine) InputOperator(op Operator) {
	if op == OpNone {
		return
	}
	switch {
	case e.current == "" && e.previous != "":
		e.op = op
	case e.current != "":
		if e.previous != "" {
			e.Evaluate()
		}
		e.previous = e.current
		e.op = op
		e.current = ""
	default:
		return
	}
	e.refresh("operator " + string(op))
}

// ApplyUnary applies square, square root, power or the parenthesis toggle.
func (e *Engine) ApplyUnary(kind Unary) {
	if kind < UnarySquare || kind > UnaryParen {
		return
	}
	borrowed := false
	if e.resetNext && e.previous != "" {
		e.current = e.previous
		e.resetNext = false
		borrowed = true
	}
	if kind != UnaryParen && e.current == "" && e.previous != "" {
		e.current = e.previous
		borrowed = true
	}

	switch kind {
	case UnarySquare:
		x := ParseOperand(e.current)
		e.setResult(x * x)
	case UnarySqrt:
		e.setResult(math.Sqrt(ParseOperand(e.current)))
	case UnaryPower:
		if borrowed {
			// The left operand is already captured; only the operator changes.
			e.current = ""
			e.op = OpPow
			e.refresh("operator ^")
			return
		}
		e.InputOperator(OpPow)
		return
	case UnaryParen:
		e.current = toggleParen(e.current)
	}
	e.refresh(kind.String())
}

// Evaluate folds the pending operation into a result.
// It does nothing unless both operands and an operator are present.
func (e *Engine) Evaluate() {
	if e.previous == "" || e.current == "" || e.op == OpNone {
		return
	}
	result := e.op.Apply(ParseOperand(e.previous), ParseOperand(e.current))
	e.current = FormatNumber(result)
	e.op = OpNone
	e.previous = ""
	e.resetNext = true
	e.refresh("evaluate")
}

// Backspace removes the last character of the current operand.
// When a result is showing it clears everything instead.
func (e *Engine) Backspace() {
	if e.resetNext {
		e.Reset()
		return
	}
	if e.current == "" {
		e.refresh("backspace")
		return
	}
	e.current = e.current[:len(e.current)-1]
	e.refresh("backspace")
}

// Display returns the value currently shown
func (e *Engine) Display() string {
	if e.current == "" {
		return "0"
	}
	return e.current
}

// State derives the state machine position from the fields
func (e *Engine) State() State {
	switch {
	case e.resetNext && e.current != "":
		return StateResultShown
	case e.op != OpNone && e.current == "":
		return StateOperatorPending
	case e.current != "":
		return StateOperandEntered
	}
	return StateIdle
}

// Snapshot returns a copy of the engine's state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Current:   e.current,
		Previous:  e.previous,
		Operator:  e.op,
		ResetNext: e.resetNext,
		State:     e.State(),
	}
}

func (e *Engine) setResult(result float64) {
	e.current = FormatNumber(result)
	e.resetNext = true
}

// refresh pushes the display value and traces the operation
func (e *Engine) refresh(operation string) {
	value := e.Display()
	if e.display != nil {
		e.display.SetValue(value)
	}
	e.logger.Debug("engine "+operation,
		"display", value,
		"previous", e.previous,
		"operator", e.op.String(),
		"state", e.State().String(),
	)
}

// toggleParen cycles "" -> "(" -> "()" -> "" on the operand text
func toggleParen(s string) string {
	hasOpen := strings.Contains(s, "(")
	hasClose := strings.Contains(s, ")")
	switch {
	case hasOpen && !hasClose:
		return s + ")"
	case !hasOpen && !hasClose:
		return "(" + s
	}
	return ""
}

func isDigitOrPoint(ch rune) bool {
	return ch == '.' || (ch >= '0' && ch <= '9')
}
