// Package tui provides terminal output for hyprws.
//
// Styling uses Lip Gloss with AdaptiveColor for light/dark terminal support.
// Styles are bound to a renderer for the destination writer, so output that
// is not a color terminal (pipes, files, buffers) stays plain text. Colors are
// also disabled when NO_COLOR is set or TERM=dumb.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling
var (
	// ColorPrimary is blue, used for headings.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for confirmations.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorError is red, used for diagnostics.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds the styles used by TextOutput.
type OutputStyles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewOutputStyles creates styles rendered for w.
func NewOutputStyles(w io.Writer) *OutputStyles {
	r := lipgloss.NewRenderer(w)
	if !HasColorSupport() {
		r.SetColorProfile(termenv.Ascii)
	}

	return &OutputStyles{
		Header: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Success: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(ColorMuted),
	}
}

// HasColorSupport returns false if NO_COLOR is set (any value, including
// empty) or TERM=dumb. See https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
