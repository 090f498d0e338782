// Package tui provides the terminal user interface for zikkycal.
//
// It handles:
//   - The interactive calculator screen with its menu, dialogs and notifications (bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and themes (lipgloss)
//   - Selection prompts used by the configuration editor
package tui
