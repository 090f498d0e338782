package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zikkycal.dev/zikkycal/internal/config"
	"zikkycal.dev/zikkycal/internal/engine"
	"zikkycal.dev/zikkycal/internal/tui/style"
	"zikkycal.dev/zikkycal/internal/utils"
)

// CalculatorOptions configures the calculator screen
type CalculatorOptions struct {
	Theme    string
	ShareURL string
	Logger   *slog.Logger

	// SaveTheme persists the theme after a toggle. Nil skips persistence.
	SaveTheme func(theme string) error
	// CopyToClipboard defaults to the system clipboard
	CopyToClipboard func(text string) error
	// OpenURL defaults to the system browser
	OpenURL func(url string) error
}

// screen receives the engine's display updates
type screen struct {
	value string
}

func (s *screen) SetValue(text string) {
	s.value = text
}

// CalculatorModel is the bubbletea model for the calculator screen
type CalculatorModel struct {
	opts   CalculatorOptions
	log    *slog.Logger
	engine *engine.Engine
	screen *screen

	keys  keyMap
	help  help.Model
	focus gridPos

	theme     style.Theme
	themeName string

	menuOpen    bool
	menuCursor  int
	dialog      dialog
	shareCursor int
	liked       bool
	commented   bool

	notice    *notification
	noticeSeq int

	width    int
	quitting bool
}

// NewCalculatorModel creates the calculator screen
func NewCalculatorModel(opts CalculatorOptions) CalculatorModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.CopyToClipboard == nil {
		opts.CopyToClipboard = clipboard.WriteAll
	}
	if opts.OpenURL == nil {
		opts.OpenURL = utils.OpenBrowser
	}

	s := &screen{}
	m := CalculatorModel{
		opts:   opts,
		log:    opts.Logger,
		screen: s,
		keys:   newKeyMap(),
		help:   help.New(),
		focus:  gridPos{row: 1, col: 0},
	}
	m.engine = engine.NewEngine(s, engine.WithLogger(opts.Logger))
	m.setTheme(opts.Theme)
	return m
}

// Display returns the text currently on the calculator screen
func (m CalculatorModel) Display() string {
	return m.screen.value
}

// ThemeName returns the active theme
func (m CalculatorModel) ThemeName() string {
	return m.themeName
}

// Init initializes the model
func (m CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles message updates for the bubbletea model
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case notificationExpiredMsg:
		m.expireNotification(msg)
		return m, nil

	case shareResultMsg:
		return m, m.handleShareResult(msg)

	case tea.KeyMsg:
		// Any key dismisses the notification and is still handled below
		m.notice = nil

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			return m, m.toggleTheme()
		}

		switch {
		case m.dialog != dialogNone:
			return m, m.updateDialog(msg)
		case m.menuOpen:
			return m, m.updateMenu(msg)
		}
		return m, m.updateCalculator(msg)
	}

	return m, nil
}

func (m *CalculatorModel) updateCalculator(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = true
		m.menuCursor = 0
		return nil
	case key.Matches(msg, m.keys.Up):
		m.focus = m.focus.move(-1, 0)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.focus = m.focus.move(1, 0)
		return nil
	case key.Matches(msg, m.keys.Left):
		m.focus = m.focus.move(0, -1)
		return nil
	case key.Matches(msg, m.keys.Right):
		m.focus = m.focus.move(0, 1)
		return nil
	case key.Matches(msg, m.keys.Press):
		m.press(m.focus.button().event)
		return nil
	}

	if ev, ok := engine.EventForKey(msg.String()); ok {
		m.press(ev)
	}
	return nil
}

func (m *CalculatorModel) press(ev engine.Event) {
	if err := engine.Dispatch(m.engine, ev); err != nil {
		m.log.Warn("dispatch failed", "event", ev.String(), "error", err)
	}
}

func (m *CalculatorModel) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.menuOpen = false
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = clamp(m.menuCursor-1, 0, int(menuItemCount)-1)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = clamp(m.menuCursor+1, 0, int(menuItemCount)-1)
	case key.Matches(msg, m.keys.Select):
		return m.selectMenuItem()
	}
	return nil
}

func (m *CalculatorModel) updateDialog(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Close) {
		m.dialog = dialogNone
		return nil
	}
	if m.dialog != dialogShare {
		if key.Matches(msg, m.keys.Select) {
			m.dialog = dialogNone
		}
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.shareCursor = clamp(m.shareCursor-1, 0, len(shareOptions)-1)
	case key.Matches(msg, m.keys.Down):
		m.shareCursor = clamp(m.shareCursor+1, 0, len(shareOptions)-1)
	case key.Matches(msg, m.keys.Select):
		return m.selectShareOption()
	}
	return nil
}

func (m *CalculatorModel) setTheme(name string) {
	m.theme = style.ForName(name)
	m.themeName = m.theme.Name
}

// toggleTheme switches between dark and light and persists the choice
func (m *CalculatorModel) toggleTheme() tea.Cmd {
	next := config.Config{Theme: m.themeName}.ToggledTheme()
	m.setTheme(next)
	m.log.Debug("theme toggled", "theme", next)
	if m.opts.SaveTheme == nil {
		return nil
	}
	if err := m.opts.SaveTheme(next); err != nil {
		m.log.Warn("could not save theme", "error", err)
		return m.notify(fmt.Sprintf("Could not save theme: %v", err))
	}
	return nil
}

// pendingLine describes the operand and operator waiting for the next value
func (m CalculatorModel) pendingLine() string {
	snap := m.engine.Snapshot()
	if snap.Operator == engine.OpNone {
		return ""
	}
	return fmt.Sprintf("%s %s", snap.Previous, snap.Operator)
}

// View renders the TUI
func (m CalculatorModel) View() string {
	if m.quitting {
		return ""
	}

	screenBox := m.theme.Screen.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Pending.Render(m.pendingLine()),
		m.theme.Display.Render(m.Display()),
	))

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("ZikkyCal"))
	b.WriteString("\n")
	b.WriteString(screenBox)
	b.WriteString("\n")

	switch {
	case m.dialog != dialogNone:
		b.WriteString(m.renderDialog())
	case m.menuOpen:
		b.WriteString(m.renderMenu())
	default:
		b.WriteString(renderKeypad(m.theme, m.focus))
	}
	b.WriteString("\n")

	if m.notice != nil {
		b.WriteString(m.theme.Notification.Render(m.notice.text))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return m.theme.App.Render(b.String())
}

// RunCalculator runs the calculator until the user quits
func RunCalculator(opts CalculatorOptions) error {
	m := NewCalculatorModel(opts)
	program := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
