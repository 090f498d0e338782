package tui

import (
	"github.com/charmbracelet/lipgloss"

	"zikkycal.dev/zikkycal/internal/engine"
	"zikkycal.dev/zikkycal/internal/tui/style"
)

type buttonKind int

const (
	buttonDigit buttonKind = iota
	buttonOperator
	buttonAction
	buttonEquals
)

// button is one key of the on-screen keypad
type button struct {
	label string
	event engine.Event
	kind  buttonKind
}

func digit(d string) button {
	return button{label: d, event: engine.ValueEvent(d), kind: buttonDigit}
}

func operator(label, symbol string) button {
	return button{label: label, event: engine.ValueEvent(symbol), kind: buttonOperator}
}

func action(label string, a engine.Action) button {
	return button{label: label, event: engine.ActionEvent(a), kind: buttonAction}
}

// keypad is the button layout, row by row
var keypad = [][]button{
	{action("C", engine.ActionClear), action("DEL", engine.ActionDelete), action("( )", engine.ActionParen), operator("÷", "/")},
	{digit("7"), digit("8"), digit("9"), operator("×", "*")},
	{digit("4"), digit("5"), digit("6"), operator("−", "-")},
	{digit("1"), digit("2"), digit("3"), operator("+", "+")},
	{digit("0"), digit("."), {label: "=", event: engine.ActionEvent(engine.ActionEquals), kind: buttonEquals}},
	{action("x²", engine.ActionSquare), action("√", engine.ActionSqrt), action("xʸ", engine.ActionPower)},
}

// gridPos is the focused keypad cell
type gridPos struct {
	row, col int
}

// move shifts the focus, clamping to the keypad edges. Rows have
// different lengths, so the column is clamped after a vertical move.
func (p gridPos) move(dRow, dCol int) gridPos {
	p.row = clamp(p.row+dRow, 0, len(keypad)-1)
	p.col = clamp(p.col+dCol, 0, len(keypad[p.row])-1)
	return p
}

func (p gridPos) button() button {
	return keypad[p.row][p.col]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderKeypad draws the keypad with the focused button highlighted
func renderKeypad(theme style.Theme, focus gridPos) string {
	rows := make([]string, 0, len(keypad))
	for r, row := range keypad {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			st := buttonStyle(theme, b.kind)
			if r == focus.row && c == focus.col {
				st = theme.Focused
			}
			cells = append(cells, st.Render(b.label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func buttonStyle(theme style.Theme, kind buttonKind) lipgloss.Style {
	switch kind {
	case buttonOperator:
		return theme.Operator
	case buttonAction:
		return theme.Action
	case buttonEquals:
		return theme.Equals
	}
	return theme.Digit
}
