// Package engine implements the calculator engine.
//
// It is the core of zikkycal, responsible for:
//   - Accumulating digit, point and operator events into operands
//   - Holding at most one pending binary operator (+ - * / ^)
//   - Folding chained operators left to right, without precedence
//   - Applying unary operations (square, square root) and the cosmetic parenthesis toggle
//   - Pushing the display value to a Display after every mutating operation
//
// The engine is synchronous and not safe for concurrent use; the TUI and the
// CLI drive it from a single goroutine. Invalid arithmetic never fails: it
// surfaces as NaN or Infinity on the display.
package engine
