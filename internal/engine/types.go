package engine

import (
	"math"
)

// Operator is a binary operator that can be pending in the engine
type Operator string

const (
	// OpNone indicates no operator is pending
	OpNone Operator = ""
	// OpAdd adds the operands
	OpAdd Operator = "+"
	// OpSub subtracts the right operand from the left
	OpSub Operator = "-"
	// OpMul multiplies the operands
	OpMul Operator = "*"
	// OpDiv divides the left operand by the right
	OpDiv Operator = "/"
	// OpPow raises the left operand to the power of the right
	OpPow Operator = "^"
)

// ParseOperator maps a symbol to an Operator
func ParseOperator(symbol string) (Operator, bool) {
	switch Operator(symbol) {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return Operator(symbol), true
	}
	return OpNone, false
}

// Apply computes a op b with IEEE-754 double semantics.
// Division by zero yields ±Inf or NaN rather than an error.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return math.Pow(a, b)
	}
	return math.NaN()
}

func (op Operator) String() string {
	if op == OpNone {
		return "none"
	}
	return string(op)
}

// Unary identifies an operation applied through ApplyUnary
type Unary int

const (
	// UnarySquare replaces the operand with its square
	UnarySquare Unary = iota
	// UnarySqrt replaces the operand with its square root
	UnarySqrt
	// UnaryPower arms the ^ operator; the exponent is typed next
	UnaryPower
	// UnaryParen cycles the cosmetic parenthesis markers on the operand
	UnaryParen
)

func (u Unary) String() string {
	switch u {
	case UnarySquare:
		return "square"
	case UnarySqrt:
		return "sqrt"
	case UnaryPower:
		return "power"
	case UnaryParen:
		return "paren"
	}
	return "unknown"
}

// State is the explicit form of the engine's state machine
type State int

const (
	// StateIdle means nothing has been typed and nothing is pending
	StateIdle State = iota
	// StateOperandEntered means an operand is being typed
	StateOperandEntered
	// StateOperatorPending means an operator is armed and waits for its right operand
	StateOperatorPending
	// StateResultShown means a result is on the display; the next digit starts a new operand
	StateResultShown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOperandEntered:
		return "operand"
	case StateOperatorPending:
		return "operator-pending"
	case StateResultShown:
		return "result"
	}
	return "unknown"
}

// Snapshot is a value copy of the engine's fields
type Snapshot struct {
	Current   string
	Previous  string
	Operator  Operator
	ResetNext bool
	State     State
}

// Display is the surface the engine writes its value to
type Display interface {
	SetValue(text string)
}

// DisplayFunc adapts a function to the Display interface
type DisplayFunc func(text string)

// SetValue calls f(text)
func (f DisplayFunc) SetValue(text string) {
	f(text)
}
