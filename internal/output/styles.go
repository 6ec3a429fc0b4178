package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: plugin names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the styles used by the renderers.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
	Noun  lipgloss.Style
	Check lipgloss.Style
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetStyles returns colored styles on a terminal and plain styles otherwise,
// so redirected output stays free of escape codes.
func GetStyles() *Styles {
	if stdout != os.Stdout || !IsTTY() {
		return plainStyles()
	}
	return &Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
		Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
		Check: lipgloss.NewStyle().Foreground(ColorGreenCheck),
	}
}

func plainStyles() *Styles {
	return &Styles{
		Bold:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Noun:  lipgloss.NewStyle(),
		Check: lipgloss.NewStyle(),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	return GetStyles().Check.Render("✔") + " " + msg
}

// FormatNoun renders an identifiable noun such as a plugin name or a path.
func FormatNoun(s string) string {
	return GetStyles().Noun.Render(s)
}
