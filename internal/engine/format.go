package engine

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Thresholds outside of which results switch to exponent notation
const (
	exponentAbove = 1e21
	exponentBelow = 1e-6
)

// ParseOperand converts operand text to a number.
//
// The cosmetic parenthesis markers are ignored and an empty operand is 0.
// Text that is not a number yields NaN; magnitudes too large for a float64
// yield ±Inf.
func ParseOperand(s string) float64 {
	s = strings.TrimSpace(strings.NewReplacer("(", "", ")", "").Replace(s))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// FormatNumber renders a result the way the display shows it:
// NaN, Infinity and -Infinity for the IEEE sentinels, the shortest
// round-trip decimal otherwise, and exponent form (1e+21, 1e-7) for very
// large or very small magnitudes. Negative zero renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= exponentAbove || abs < exponentBelow {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent turns Go's "1e-07" into "1e-7"
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
