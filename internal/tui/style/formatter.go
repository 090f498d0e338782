package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorResult renders a calculator value for CLI output.
// NaN and Infinity are shown in red so they stand out from real results.
func ColorResult(value string) string {
	switch value {
	case "NaN", "Infinity", "-Infinity":
		return ColorRed(value)
	}
	return lipgloss.NewStyle().Bold(true).Render(value)
}
