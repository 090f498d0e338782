// Package style holds the color palettes and lipgloss styles used by the TUI and the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark) and Latte (light) palettes
// https://catppuccin.com/palette
const (
	mochaText     lipgloss.Color = "#cdd6f4"
	mochaSubtext  lipgloss.Color = "#a6adc8"
	mochaOverlay  lipgloss.Color = "#6c7086"
	mochaSurface  lipgloss.Color = "#313244"
	mochaBase     lipgloss.Color = "#1e1e2e"
	mochaPink     lipgloss.Color = "#f5c2e7"
	mochaMauve    lipgloss.Color = "#cba6f7"
	mochaPeach    lipgloss.Color = "#fab387"
	mochaGreen    lipgloss.Color = "#a6e3a1"
	mochaLavender lipgloss.Color = "#b4befe"

	latteText     lipgloss.Color = "#4c4f69"
	latteSubtext  lipgloss.Color = "#6c6f85"
	latteOverlay  lipgloss.Color = "#9ca0b0"
	latteSurface  lipgloss.Color = "#ccd0da"
	latteBase     lipgloss.Color = "#eff1f5"
	lattePink     lipgloss.Color = "#ea76cb"
	latteMauve    lipgloss.Color = "#8839ef"
	lattePeach    lipgloss.Color = "#fe640b"
	latteGreen    lipgloss.Color = "#40a02b"
	latteLavender lipgloss.Color = "#7287fd"
)

type palette struct {
	text, subtext, overlay, surface, base       lipgloss.Color
	accent, operator, action, equals, highlight lipgloss.Color
}

var (
	darkPalette = palette{
		text: mochaText, subtext: mochaSubtext, overlay: mochaOverlay, surface: mochaSurface, base: mochaBase,
		accent: mochaPink, operator: mochaMauve, action: mochaPeach, equals: mochaGreen, highlight: mochaLavender,
	}
	lightPalette = palette{
		text: latteText, subtext: latteSubtext, overlay: latteOverlay, surface: latteSurface, base: latteBase,
		accent: lattePink, operator: latteMauve, action: lattePeach, equals: latteGreen, highlight: latteLavender,
	}
)

// Theme is the set of styles for one color scheme
type Theme struct {
	Name string

	App          lipgloss.Style
	Title        lipgloss.Style
	Screen       lipgloss.Style
	Pending      lipgloss.Style
	Display      lipgloss.Style
	Digit        lipgloss.Style
	Operator     lipgloss.Style
	Action       lipgloss.Style
	Equals       lipgloss.Style
	Focused      lipgloss.Style
	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Notification lipgloss.Style
	Help         lipgloss.Style
}

// ForName returns the theme for "dark" or "light"; anything else is dark
func ForName(name string) Theme {
	if name == "light" {
		return newTheme("light", lightPalette)
	}
	return newTheme("dark", darkPalette)
}

func newTheme(name string, p palette) Theme {
	button := lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(p.text)
	return Theme{
		Name:         name,
		App:          lipgloss.NewStyle().Padding(1, 2),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Screen:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.overlay).Padding(0, 1).Width(23),
		Pending:      lipgloss.NewStyle().Foreground(p.subtext).Width(21).Align(lipgloss.Right),
		Display:      lipgloss.NewStyle().Bold(true).Foreground(p.text).Width(21).Align(lipgloss.Right),
		Digit:        button,
		Operator:     button.Foreground(p.operator),
		Action:       button.Foreground(p.action),
		Equals:       button.Foreground(p.equals).Bold(true),
		Focused:      button.Foreground(p.base).Background(p.highlight).Bold(true),
		Panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		PanelTitle:   lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		Item:         lipgloss.NewStyle().Foreground(p.text),
		SelectedItem: lipgloss.NewStyle().Foreground(p.highlight).Bold(true),
		Notification: lipgloss.NewStyle().Foreground(p.base).Background(p.accent).Bold(true).Padding(0, 2),
		Help:         lipgloss.NewStyle().Foreground(p.overlay),
	}
}
