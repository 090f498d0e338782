package engine

import (
	"fmt"
	"sort"
	"strings"

	"zikkycal.dev/zikkycal/internal/errors"
	"zikkycal.dev/zikkycal/internal/utils"
)

// Action names an event that is not a literal digit, point or operator
type Action string

const (
	ActionSquare Action = "square"
	ActionSqrt   Action = "sqrt"
	ActionPower  Action = "power"
	ActionParen  Action = "paren"
	ActionEquals Action = "equals"
	ActionClear  Action = "clear"
	ActionDelete Action = "delete"
)

// Event is one button press or key press.
// Exactly one of Value (a digit, "." or an operator symbol) or Action is set.
type Event struct {
	Value  string
	Action Action
}

// ValueEvent builds an event for a literal value
func ValueEvent(value string) Event {
	return Event{Value: value}
}

// ActionEvent builds an event for a named action
func ActionEvent(action Action) Event {
	return Event{Action: action}
}

func (ev Event) String() string {
	if ev.Action != "" {
		return string(ev.Action)
	}
	return ev.Value
}

// Dispatch routes an event to the matching engine operation.
// Events the table does not know return ErrUnknownEvent and leave the engine untouched.
func Dispatch(e *Engine, ev Event) error {
	if ev.Action != "" {
		switch ev.Action {
		case ActionSquare:
			e.ApplyUnary(UnarySquare)
		case ActionSqrt:
			e.ApplyUnary(UnarySqrt)
		case ActionPower:
			e.ApplyUnary(UnaryPower)
		case ActionParen:
			e.ApplyUnary(UnaryParen)
		case ActionEquals:
			e.Evaluate()
		case ActionClear:
			e.Reset()
		case ActionDelete:
			e.Backspace()
		default:
			return fmt.Errorf("%w: action %q", errors.ErrUnknownEvent, ev.Action)
		}
		return nil
	}

	if len(ev.Value) == 1 && isDigitOrPoint(rune(ev.Value[0])) {
		e.InputDigitOrPoint(rune(ev.Value[0]))
		return nil
	}
	if op, ok := ParseOperator(ev.Value); ok {
		e.InputOperator(op)
		return nil
	}
	return fmt.Errorf("%w: value %q", errors.ErrUnknownEvent, ev.Value)
}

// keyEvents maps keyboard key names to events. Both the DOM spellings and
// the bubbletea spellings are listed.
var keyEvents = map[string]Event{
	"+":         ValueEvent("+"),
	"-":         ValueEvent("-"),
	"*":         ValueEvent("*"),
	"/":         ValueEvent("/"),
	"Enter":     ActionEvent(ActionEquals),
	"enter":     ActionEvent(ActionEquals),
	"=":         ActionEvent(ActionEquals),
	"Escape":    ActionEvent(ActionClear),
	"esc":       ActionEvent(ActionClear),
	"Delete":    ActionEvent(ActionClear),
	"delete":    ActionEvent(ActionClear),
	"Backspace": ActionEvent(ActionDelete),
	"backspace": ActionEvent(ActionDelete),
	"^":         ActionEvent(ActionPower),
	"s":         ActionEvent(ActionSquare),
	"r":         ActionEvent(ActionSqrt),
	"(":         ActionEvent(ActionParen),
	")":         ActionEvent(ActionParen),
}

// EventForKey maps a key name to an event
func EventForKey(key string) (Event, bool) {
	if len(key) == 1 && isDigitOrPoint(rune(key[0])) {
		return ValueEvent(key), true
	}
	ev, ok := keyEvents[key]
	return ev, ok
}

// tokenEvents holds the action names accepted on the command line in
// addition to the key names
var tokenEvents = map[string]Event{
	"square": ActionEvent(ActionSquare),
	"sq":     ActionEvent(ActionSquare),
	"x2":     ActionEvent(ActionSquare),
	"sqrt":   ActionEvent(ActionSqrt),
	"power":  ActionEvent(ActionPower),
	"pow":    ActionEvent(ActionPower),
	"paren":  ActionEvent(ActionParen),
	"equals": ActionEvent(ActionEquals),
	"clear":  ActionEvent(ActionClear),
	"C":      ActionEvent(ActionClear),
	"del":    ActionEvent(ActionDelete),
	"DEL":    ActionEvent(ActionDelete),
}

// ParseToken maps a command-line token to an event.
//
// A token is a key name, an action name, or a run of digits and points
// such as "12.5", which expands to one event per character (use
// ParseTokens for that). Unknown tokens return an UnknownTokenError
// carrying the closest known token.
func ParseToken(tok string) (Event, error) {
	if ev, ok := EventForKey(tok); ok {
		return ev, nil
	}
	if ev, ok := tokenEvents[tok]; ok {
		return ev, nil
	}
	return Event{}, errors.NewUnknownTokenError(tok, utils.Suggest(tok, TokenNames()))
}

// ParseTokens maps tokens to events, expanding numeric runs like "12.5"
// into one event per character.
func ParseTokens(tokens []string) ([]Event, error) {
	var events []Event
	for _, tok := range tokens {
		if isNumericRun(tok) {
			for _, ch := range tok {
				events = append(events, ValueEvent(string(ch)))
			}
			continue
		}
		ev, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// TokenNames returns all named tokens accepted by ParseToken, sorted
func TokenNames() []string {
	names := make([]string, 0, len(keyEvents)+len(tokenEvents))
	for name := range keyEvents {
		names = append(names, name)
	}
	for name := range tokenEvents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isNumericRun(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	return strings.IndexFunc(tok, func(r rune) bool { return !isDigitOrPoint(r) }) == -1
}
