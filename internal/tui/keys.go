package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings the calculator screen handles itself.
// Digit, operator and action keys go through engine.EventForKey and are
// listed here for the help footer only.
type keyMap struct {
	Digits   key.Binding
	Ops      key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Delete   key.Binding
	Unary    key.Binding
	Navigate key.Binding
	Press    key.Binding
	Menu     key.Binding
	Theme    key.Binding
	Quit     key.Binding

	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Close  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "digits")),
		Ops:      key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+ - * /", "operator")),
		Equals:   key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter/=", "equals")),
		Clear:    key.NewBinding(key.WithKeys("esc", "delete"), key.WithHelp("esc", "clear")),
		Delete:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Unary:    key.NewBinding(key.WithKeys("s", "r", "^", "(", ")"), key.WithHelp("s r ^ ( )", "x² √ xʸ paren")),
		Navigate: key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↓↑→", "move")),
		Press:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Theme:    key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "theme")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Close:  key.NewBinding(key.WithKeys("esc")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Press, k.Menu, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Ops, k.Equals},
		{k.Clear, k.Delete, k.Unary},
		{k.Navigate, k.Press},
		{k.Menu, k.Theme, k.Quit},
	}
}
